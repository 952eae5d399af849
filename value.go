package vortex

import "github.com/gogpu/vortex/wgsl"

// DataType identifies the type carried by an operator port.
type DataType uint8

const (
	// TypeFloat is a single 32-bit float scalar.
	TypeFloat DataType = iota

	// TypeVec2 is a 2-component float vector.
	TypeVec2

	// TypeVec3 is a 3-component float vector.
	TypeVec3

	// TypeVec4 is a 4-component float vector.
	TypeVec4

	// TypeColor is a linear-light RGBA color. It is carried as a
	// vec4<f32> in generated shaders but kept distinct so editors can
	// present color pickers instead of spinboxes.
	TypeColor
)

// String returns the port-type name used in graph documents.
func (t DataType) String() string {
	switch t {
	case TypeFloat:
		return "float"
	case TypeVec2:
		return "vec2"
	case TypeVec3:
		return "vec3"
	case TypeVec4:
		return "vec4"
	case TypeColor:
		return "color"
	}
	return "float"
}

// Components returns the number of scalar components of the type.
func (t DataType) Components() int {
	switch t {
	case TypeVec2:
		return 2
	case TypeVec3:
		return 3
	case TypeVec4, TypeColor:
		return 4
	}
	return 1
}

// WGSL returns the corresponding shader type.
func (t DataType) WGSL() wgsl.Type {
	switch t {
	case TypeVec2:
		return wgsl.Vec2
	case TypeVec3:
		return wgsl.Vec3
	case TypeVec4, TypeColor:
		return wgsl.Vec4
	}
	return wgsl.F32
}

// Value is a runtime value flowing between nodes during host-side graph
// evaluation. Unused trailing components are zero.
type Value struct {
	Type DataType
	V    [4]float32
}

// Float returns a scalar value.
func Float(v float32) Value {
	return Value{Type: TypeFloat, V: [4]float32{v}}
}

// Vec2Value returns a 2-component vector value.
func Vec2Value(x, y float32) Value {
	return Value{Type: TypeVec2, V: [4]float32{x, y}}
}

// Vec3Value returns a 3-component vector value.
func Vec3Value(x, y, z float32) Value {
	return Value{Type: TypeVec3, V: [4]float32{x, y, z}}
}

// Vec4Value returns a 4-component vector value.
func Vec4Value(x, y, z, w float32) Value {
	return Value{Type: TypeVec4, V: [4]float32{x, y, z, w}}
}

// Color returns a linear RGBA color value.
func Color(r, g, b, a float32) Value {
	return Value{Type: TypeColor, V: [4]float32{r, g, b, a}}
}

// X returns the first component, which for scalars is the value itself.
func (v Value) X() float32 { return v.V[0] }

// Convert coerces a value to the wanted type using shader promotion
// rules: scalars splat to vectors, wider vectors truncate, narrower
// vectors extend with zeros (alpha extends with one for colors).
func (v Value) Convert(want DataType) Value {
	if v.Type == want {
		return v
	}
	out := Value{Type: want}
	if v.Type == TypeFloat {
		for i := 0; i < want.Components(); i++ {
			out.V[i] = v.V[0]
		}
		if want == TypeColor {
			out.V[3] = 1
		}
		return out
	}
	n := v.Type.Components()
	if m := want.Components(); m < n {
		n = m
	}
	copy(out.V[:n], v.V[:n])
	if want == TypeColor && v.Type.Components() < 4 {
		out.V[3] = 1
	}
	return out
}

// convertExpr coerces a shader expression to the wanted type with the
// same promotion rules as [Value.Convert].
func convertExpr(e wgsl.Expr, want DataType) wgsl.Expr {
	wt := want.WGSL()
	if e.Type() == wt {
		return e
	}
	if e.Type() == wgsl.F32 {
		if want == TypeColor {
			// Splat into rgb only; alpha is 1, as in [Value.Convert].
			return wgsl.Vec{T: wt, Args: []wgsl.Expr{
				wgsl.Vec{T: wgsl.Vec3, Args: []wgsl.Expr{e}},
				wgsl.Lit{V: 1},
			}}
		}
		return wgsl.Vec{T: wt, Args: []wgsl.Expr{e}}
	}
	have := e.Type().Components()
	need := wt.Components()
	if need == 1 {
		return wgsl.Swizzle{E: e, Sel: "x"}
	}
	if need < have {
		return wgsl.Swizzle{E: e, Sel: "xyzw"[:need]}
	}
	// Extend: pad with zeros, alpha with one for colors.
	args := []wgsl.Expr{wgsl.Swizzle{E: e, Sel: "xyzw"[:have]}}
	for i := have; i < need; i++ {
		if i == 3 && want == TypeColor {
			args = append(args, wgsl.Lit{V: 1})
		} else {
			args = append(args, wgsl.Lit{V: 0})
		}
	}
	return wgsl.Vec{T: wt, Args: args}
}
