package wgsl

import (
	"math"
	"strconv"
	"strings"
)

// Type identifies a WGSL scalar or vector type.
type Type uint8

const (
	// F32 is the 32-bit float scalar type.
	F32 Type = iota

	// Vec2 is vec2<f32>.
	Vec2

	// Vec3 is vec3<f32>.
	Vec3

	// Vec4 is vec4<f32>.
	Vec4
)

// String returns the WGSL spelling of the type.
func (t Type) String() string {
	switch t {
	case F32:
		return "f32"
	case Vec2:
		return "vec2<f32>"
	case Vec3:
		return "vec3<f32>"
	case Vec4:
		return "vec4<f32>"
	}
	return "f32"
}

// Components returns the number of scalar components of the type.
func (t Type) Components() int {
	switch t {
	case Vec2:
		return 2
	case Vec3:
		return 3
	case Vec4:
		return 4
	}
	return 1
}

// vecType returns the vector (or scalar) type with n components.
func vecType(n int) Type {
	switch n {
	case 2:
		return Vec2
	case 3:
		return Vec3
	case 4:
		return Vec4
	}
	return F32
}

// Expr is a WGSL expression tree node.
//
// Expressions are immutable values; sharing subtrees between expressions
// is safe.
type Expr interface {
	// Type returns the WGSL type the expression evaluates to.
	Type() Type

	write(b *strings.Builder)
	helpers(set map[string]bool)
}

// Lit is a float literal.
type Lit struct {
	V float32
}

func (Lit) Type() Type                 { return F32 }
func (l Lit) write(b *strings.Builder) { b.WriteString(formatLit(l.V)) }
func (Lit) helpers(map[string]bool)    {}

// formatLit renders a float32 as a WGSL literal. WGSL rejects bare
// integers where a float is expected, so a fraction is always spelled out.
// WGSL has no non-finite literals: NaN renders as 0.0 and infinities
// clamp to the largest finite f32.
func formatLit(v float32) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "0.0"
	case math.IsInf(f, 1):
		return "3.4028235e38"
	case math.IsInf(f, -1):
		return "-3.4028235e38"
	}
	s := strconv.FormatFloat(f, 'g', -1, 32)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Local references a let-binding created by [Module.Let].
type Local struct {
	Name string
	T    Type
}

func (l Local) Type() Type               { return l.T }
func (l Local) write(b *strings.Builder) { b.WriteString(l.Name) }
func (Local) helpers(map[string]bool)    {}

// UV references the interpolated fragment coordinate, a vec2<f32> in
// [0,1] on both axes.
type UV struct{}

func (UV) Type() Type               { return Vec2 }
func (UV) write(b *strings.Builder) { b.WriteString("uv") }
func (UV) helpers(map[string]bool)  {}

// Vec constructs a vector from component expressions. A single scalar
// argument produces a splat.
type Vec struct {
	T    Type
	Args []Expr
}

func (v Vec) Type() Type { return v.T }

func (v Vec) write(b *strings.Builder) {
	b.WriteString(v.T.String())
	b.WriteByte('(')
	for i, a := range v.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		a.write(b)
	}
	b.WriteByte(')')
}

func (v Vec) helpers(set map[string]bool) {
	for _, a := range v.Args {
		a.helpers(set)
	}
}

// Swizzle selects components from a vector expression, e.g. "x" or "xyz".
type Swizzle struct {
	E   Expr
	Sel string
}

func (s Swizzle) Type() Type { return vecType(len(s.Sel)) }

func (s Swizzle) write(b *strings.Builder) {
	s.E.write(b)
	b.WriteByte('.')
	b.WriteString(s.Sel)
}

func (s Swizzle) helpers(set map[string]bool) { s.E.helpers(set) }

// Bin is a binary arithmetic expression. Operands are parenthesized
// unconditionally so the rendered source never depends on WGSL
// precedence rules.
type Bin struct {
	Op   string // "+", "-", "*", "/"
	L, R Expr
}

// Type returns the wider of the operand types (scalar * vector promotes
// to the vector type, matching WGSL).
func (b Bin) Type() Type {
	if b.L.Type().Components() >= b.R.Type().Components() {
		return b.L.Type()
	}
	return b.R.Type()
}

func (b Bin) write(sb *strings.Builder) {
	sb.WriteByte('(')
	b.L.write(sb)
	sb.WriteByte(' ')
	sb.WriteString(b.Op)
	sb.WriteByte(' ')
	b.R.write(sb)
	sb.WriteByte(')')
}

func (b Bin) helpers(set map[string]bool) {
	b.L.helpers(set)
	b.R.helpers(set)
}

// Call invokes a WGSL builtin or a helper function from this package's
// helper library. Helper is empty for builtins; otherwise it names the
// helper whose definition must be included in the module.
type Call struct {
	Fn     string
	Args   []Expr
	Ret    Type
	Helper string
}

func (c Call) Type() Type { return c.Ret }

func (c Call) write(b *strings.Builder) {
	b.WriteString(c.Fn)
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		a.write(b)
	}
	b.WriteByte(')')
}

func (c Call) helpers(set map[string]bool) {
	if c.Helper != "" {
		set[c.Helper] = true
	}
	for _, a := range c.Args {
		a.helpers(set)
	}
}

// Render returns the expression as WGSL source text.
func Render(e Expr) string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}
