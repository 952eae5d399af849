package vortex

import "github.com/gogpu/vortex/wgsl"

func init() {
	mustRegister(outputOp{})
}

// outputOp terminates a graph: whatever arrives at its color input
// becomes the fragment color of the generated shader.
type outputOp struct{}

func (outputOp) Name() string       { return "output" }
func (outputOp) Category() Category { return CategoryOutput }

func (outputOp) Description() string {
	return "Displays the output of the shader."
}

func (outputOp) Inputs() []Port {
	return []Port{{
		Name:        "color",
		DisplayName: "Color",
		Type:        TypeColor,
		Default:     Color(0, 0, 0, 1),
	}}
}

func (outputOp) Outputs() []Port { return nil }

func (outputOp) Gen(args []wgsl.Expr) wgsl.Expr { return args[0] }

func (outputOp) Eval(_ *FragContext, args []Value) Value { return args[0] }
