package vortex

import "github.com/gogpu/vortex/wgsl"

func init() {
	mustRegister(mixOp{})
}

// mixOp blends two colors by a scalar factor, typically driven by an
// easing node.
type mixOp struct{}

func (mixOp) Name() string       { return "mix" }
func (mixOp) Category() Category { return CategoryFilter }

func (mixOp) Description() string {
	return "Linearly interpolates between two colors."
}

func (mixOp) Inputs() []Port {
	return []Port{
		{Name: "a", DisplayName: "A", Type: TypeColor, Default: Color(0, 0, 0, 1)},
		{Name: "b", DisplayName: "B", Type: TypeColor, Default: Color(1, 1, 1, 1)},
		{Name: "t", DisplayName: "Factor", Type: TypeFloat, Default: Float(0.5)},
	}
}

func (mixOp) Outputs() []Port {
	return []Port{{Name: "out", DisplayName: "Color", Type: TypeColor}}
}

func (mixOp) Gen(args []wgsl.Expr) wgsl.Expr {
	return wgsl.Call{Fn: "mix", Args: args, Ret: wgsl.Vec4}
}

func (mixOp) Eval(_ *FragContext, args []Value) Value {
	t := args[2].X()
	out := Value{Type: TypeColor}
	for i := 0; i < 4; i++ {
		out.V[i] = lerp(t, args[0].V[i], args[1].V[i])
	}
	return out
}
