package vortex

import (
	"github.com/gogpu/vortex/internal/noise"
	"github.com/gogpu/vortex/wgsl"
)

func init() {
	mustRegister(noiseOp{})
}

const maxNoiseOctaves = 8

// noiseOp samples 2D gradient noise. The octave count is a constant-only
// input: the shader emitter unrolls one noise tap per octave, and the
// host path runs the identical formula, so CPU previews and generated
// shaders agree.
type noiseOp struct{}

func (noiseOp) Name() string       { return "noise" }
func (noiseOp) Category() Category { return CategoryGenerator }

func (noiseOp) Description() string {
	return "Generates 2D gradient noise in the range 0 to 1."
}

func (noiseOp) Inputs() []Port {
	return []Port{
		{Name: "uv", DisplayName: "UV", Type: TypeVec2, Default: Vec2Value(0, 0)},
		{Name: "scale", DisplayName: "Scale", Type: TypeFloat, Default: Float(8)},
		{
			Name:         "octaves",
			DisplayName:  "Octaves",
			Type:         TypeFloat,
			Default:      Float(1),
			ConstantOnly: true,
		},
	}
}

func (noiseOp) Outputs() []Port {
	return []Port{{Name: "out", DisplayName: "Value", Type: TypeFloat}}
}

func (noiseOp) Gen(args []wgsl.Expr) wgsl.Expr {
	p := wgsl.Bin{Op: "*", L: args[0], R: args[1]}
	oct := octaveCount(args[2])

	tap := func(freq float32) wgsl.Expr {
		arg := wgsl.Expr(p)
		if freq != 1 {
			arg = wgsl.Bin{Op: "*", L: p, R: wgsl.Lit{V: freq}}
		}
		return wgsl.Call{Fn: wgsl.HelperPerlin2, Args: []wgsl.Expr{arg}, Ret: wgsl.F32, Helper: wgsl.HelperPerlin2}
	}

	if oct == 1 {
		return tap(1)
	}

	// Unroll: sum of signed octaves with persistence 0.5, renormalized
	// to [0, 1]. Mirrors noise.Octaves.
	var sum wgsl.Expr
	var amp, freq, norm float32 = 1, 1, 0
	for i := 0; i < oct; i++ {
		signed := wgsl.Bin{
			Op: "-",
			L:  wgsl.Bin{Op: "*", L: tap(freq), R: wgsl.Lit{V: 2}},
			R:  wgsl.Lit{V: 1},
		}
		term := wgsl.Expr(wgsl.Bin{Op: "*", L: signed, R: wgsl.Lit{V: amp}})
		if sum == nil {
			sum = term
		} else {
			sum = wgsl.Bin{Op: "+", L: sum, R: term}
		}
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	scaled := wgsl.Bin{Op: "/", L: sum, R: wgsl.Lit{V: norm}}
	return wgsl.Bin{
		Op: "+",
		L:  wgsl.Bin{Op: "*", L: scaled, R: wgsl.Lit{V: 0.5}},
		R:  wgsl.Lit{V: 0.5},
	}
}

func (noiseOp) Eval(_ *FragContext, args []Value) Value {
	scale := args[1].X()
	x := args[0].V[0] * scale
	y := args[0].V[1] * scale
	oct := int(args[2].X())
	if oct < 1 {
		oct = 1
	}
	if oct > maxNoiseOctaves {
		oct = maxNoiseOctaves
	}
	return Float(noise.Octaves(x, y, oct))
}

// octaveCount reads the unrolled octave count from the constant-only
// octaves input. A non-literal expression falls back to one octave.
func octaveCount(e wgsl.Expr) int {
	l, ok := e.(wgsl.Lit)
	if !ok {
		return 1
	}
	oct := int(l.V)
	if oct < 1 {
		return 1
	}
	if oct > maxNoiseOctaves {
		return maxNoiseOctaves
	}
	return oct
}
