package vortex

import "github.com/gogpu/vortex/wgsl"

// Category groups operators for catalog and palette display.
type Category uint8

const (
	// CategoryInput produces values from the fragment environment or
	// from constants.
	CategoryInput Category = iota

	// CategoryGenerator synthesizes patterns (noise and friends).
	CategoryGenerator

	// CategoryCurve reshapes scalars through easing curves.
	CategoryCurve

	// CategoryFilter combines or transforms upstream values.
	CategoryFilter

	// CategoryOutput terminates a graph.
	CategoryOutput
)

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case CategoryInput:
		return "Input"
	case CategoryGenerator:
		return "Generator"
	case CategoryCurve:
		return "Curve"
	case CategoryFilter:
		return "Filter"
	case CategoryOutput:
		return "Output"
	}
	return "Input"
}

// Port describes one input or output of an operator.
type Port struct {
	// Name is the port identifier used in connections and graph
	// documents.
	Name string

	// DisplayName is the label an editor shows next to the port.
	DisplayName string

	// Type is the data type carried by the port.
	Type DataType

	// Default is the value used when an input port has neither a
	// connection nor a node parameter.
	Default Value

	// ConstantOnly marks inputs that are edited as fields and never
	// accept connections (seeds, octave counts).
	ConstantOnly bool
}

// FragContext carries the per-fragment environment for host-side
// evaluation. U and V are the normalized fragment coordinates in [0, 1].
type FragContext struct {
	U, V float32
}

// Operator is one node implementation in the shader-graph catalog.
//
// Operators are stateless: per-node configuration lives on the
// [Node] as parameter values, and both Gen and Eval receive fully
// resolved inputs in the order reported by Inputs. Implementations must
// be safe for concurrent use.
type Operator interface {
	// Name returns the registry identifier, e.g. "smootherstep".
	Name() string

	// Category returns the catalog grouping.
	Category() Category

	// Description returns a one-paragraph description for the catalog.
	Description() string

	// Inputs returns the input port descriptors, in argument order.
	Inputs() []Port

	// Outputs returns the output ports. Every built-in operator has
	// exactly one output except "output", which has none.
	Outputs() []Port

	// Gen returns the WGSL expression computing this node from the
	// given input expressions.
	Gen(args []wgsl.Expr) wgsl.Expr

	// Eval computes the node on the host for preview and testing.
	Eval(fc *FragContext, args []Value) Value
}
