package vortex

import "github.com/gogpu/vortex/wgsl"

func init() {
	mustRegister(smootherStepOp{})
	mustRegister(smoothStepOp{})
}

// smootherStepOp is the quintic easing node. Its generated WGSL helper and
// host evaluation both run [SmootherStep], so the two paths agree exactly.
type smootherStepOp struct{}

func (smootherStepOp) Name() string       { return "smootherstep" }
func (smootherStepOp) Category() Category { return CategoryCurve }

func (smootherStepOp) Description() string {
	return "Performs a smooth Hermite interpolation between two values, " +
		"with first and second derivatives of zero at both endpoints."
}

func (smootherStepOp) Inputs() []Port {
	return []Port{
		{Name: "low", DisplayName: "Low", Type: TypeFloat, Default: Float(0)},
		{Name: "high", DisplayName: "High", Type: TypeFloat, Default: Float(1)},
		{Name: "t", DisplayName: "T", Type: TypeFloat, Default: Float(0)},
	}
}

func (smootherStepOp) Outputs() []Port {
	return []Port{{Name: "out", DisplayName: "Result", Type: TypeFloat}}
}

func (smootherStepOp) Gen(args []wgsl.Expr) wgsl.Expr {
	return wgsl.Call{
		Fn:     wgsl.HelperSmootherStep,
		Args:   args,
		Ret:    wgsl.F32,
		Helper: wgsl.HelperSmootherStep,
	}
}

func (smootherStepOp) Eval(_ *FragContext, args []Value) Value {
	return Float(SmootherStep(args[0].X(), args[1].X(), args[2].X()))
}

// smoothStepOp is the classic cubic easing node, mapped to the WGSL
// smoothstep builtin.
type smoothStepOp struct{}

func (smoothStepOp) Name() string       { return "smoothstep" }
func (smoothStepOp) Category() Category { return CategoryCurve }

func (smoothStepOp) Description() string {
	return "Performs a smooth Hermite interpolation between two values."
}

func (smoothStepOp) Inputs() []Port {
	return []Port{
		{Name: "low", DisplayName: "Low", Type: TypeFloat, Default: Float(0)},
		{Name: "high", DisplayName: "High", Type: TypeFloat, Default: Float(1)},
		{Name: "t", DisplayName: "T", Type: TypeFloat, Default: Float(0)},
	}
}

func (smoothStepOp) Outputs() []Port {
	return []Port{{Name: "out", DisplayName: "Result", Type: TypeFloat}}
}

func (smoothStepOp) Gen(args []wgsl.Expr) wgsl.Expr {
	return wgsl.Call{Fn: "smoothstep", Args: args, Ret: wgsl.F32}
}

func (smoothStepOp) Eval(_ *FragContext, args []Value) Value {
	return Float(SmoothStep(args[0].X(), args[1].X(), args[2].X()))
}
