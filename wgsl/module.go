package wgsl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotColor is returned by [Module.Source] when the final expression is
// not a vec4<f32>.
var ErrNotColor = errors.New("wgsl: shader result must be vec4<f32>")

// vertexStage is the fixed full-screen triangle vertex shader emitted with
// every module. It exists so generated modules validate and run standalone;
// the fragment stage is where graph output lands.
const vertexStage = `struct VSOut {
    @builtin(position) pos: vec4<f32>,
    @location(0) uv: vec2<f32>,
};

@vertex
fn vs_main(@builtin(vertex_index) vi: u32) -> VSOut {
    var out: VSOut;
    let x = f32(i32(vi & 1u) * 4 - 1);
    let y = f32(i32(vi & 2u) * 2 - 1);
    out.pos = vec4<f32>(x, y, 0.0, 1.0);
    out.uv = vec2<f32>(x, y) * 0.5 + vec2<f32>(0.5, 0.5);
    return out;
}`

// Module accumulates let-bindings for a shader fragment stage. The graph
// compiler creates one binding per node so generated source stays readable
// and each node's value is computed once.
type Module struct {
	bindings []binding
	required map[string]bool
}

type binding struct {
	name string
	expr Expr
}

// NewModule returns an empty module builder.
func NewModule() *Module {
	return &Module{required: map[string]bool{}}
}

// Let records a new binding and returns a [Local] referencing it.
// Names must be valid WGSL identifiers and unique within the module;
// the graph compiler derives them from node ids.
func (m *Module) Let(name string, e Expr) Local {
	m.bindings = append(m.bindings, binding{name: name, expr: e})
	e.helpers(m.required)
	return Local{Name: name, T: e.Type()}
}

// Source renders the complete WGSL module. result is the fragment stage's
// return value and must be a vec4<f32> color.
func (m *Module) Source(result Expr) (string, error) {
	if result.Type() != Vec4 {
		return "", fmt.Errorf("%w (got %s)", ErrNotColor, result.Type())
	}
	result.helpers(m.required)

	var b strings.Builder
	b.WriteString("// Generated by vortex.\n\n")
	b.WriteString(vertexStage)
	b.WriteString("\n\n")

	for _, h := range resolveHelpers(m.required) {
		b.WriteString(h)
		b.WriteString("\n\n")
	}

	b.WriteString("@fragment\nfn fs_main(in: VSOut) -> @location(0) vec4<f32> {\n")
	b.WriteString("    let uv = in.uv;\n")
	for _, bd := range m.bindings {
		fmt.Fprintf(&b, "    let %s: %s = ", bd.name, bd.expr.Type())
		bd.expr.write(&b)
		b.WriteString(";\n")
	}
	b.WriteString("    return ")
	result.write(&b)
	b.WriteString(";\n}\n")

	return b.String(), nil
}
