package vortex

import "github.com/gogpu/vortex/wgsl"

func init() {
	mustRegister(uvOp{})
	mustRegister(constFloatOp{})
	mustRegister(constColorOp{})
}

// uvOp exposes the normalized fragment coordinate.
type uvOp struct{}

func (uvOp) Name() string       { return "uv" }
func (uvOp) Category() Category { return CategoryInput }

func (uvOp) Description() string {
	return "The normalized fragment coordinate, (0, 0) at the bottom-left and (1, 1) at the top-right."
}

func (uvOp) Inputs() []Port { return nil }

func (uvOp) Outputs() []Port {
	return []Port{{Name: "out", DisplayName: "UV", Type: TypeVec2}}
}

func (uvOp) Gen([]wgsl.Expr) wgsl.Expr { return wgsl.UV{} }

func (uvOp) Eval(fc *FragContext, _ []Value) Value {
	return Vec2Value(fc.U, fc.V)
}

// constFloatOp emits a constant scalar.
type constFloatOp struct{}

func (constFloatOp) Name() string       { return "const_float" }
func (constFloatOp) Category() Category { return CategoryInput }

func (constFloatOp) Description() string {
	return "A constant scalar value."
}

func (constFloatOp) Inputs() []Port {
	return []Port{{
		Name:         "value",
		DisplayName:  "Value",
		Type:         TypeFloat,
		Default:      Float(0),
		ConstantOnly: true,
	}}
}

func (constFloatOp) Outputs() []Port {
	return []Port{{Name: "out", DisplayName: "Value", Type: TypeFloat}}
}

func (constFloatOp) Gen(args []wgsl.Expr) wgsl.Expr { return args[0] }

func (constFloatOp) Eval(_ *FragContext, args []Value) Value { return args[0] }

// constColorOp emits a constant linear RGBA color.
type constColorOp struct{}

func (constColorOp) Name() string       { return "const_color" }
func (constColorOp) Category() Category { return CategoryInput }

func (constColorOp) Description() string {
	return "A constant linear RGBA color."
}

func (constColorOp) Inputs() []Port {
	return []Port{{
		Name:         "value",
		DisplayName:  "Color",
		Type:         TypeColor,
		Default:      Color(1, 1, 1, 1),
		ConstantOnly: true,
	}}
}

func (constColorOp) Outputs() []Port {
	return []Port{{Name: "out", DisplayName: "Color", Type: TypeColor}}
}

func (constColorOp) Gen(args []wgsl.Expr) wgsl.Expr { return args[0] }

func (constColorOp) Eval(_ *FragContext, args []Value) Value { return args[0] }
