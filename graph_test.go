package vortex

import (
	"errors"
	"strings"
	"testing"
)

// rampGraph builds uv.x -> smootherstep -> mix -> output, the canonical
// horizontal-gradient graph used throughout these tests.
func rampGraph(t *testing.T, low, high float32) *Graph {
	t.Helper()
	g := NewGraph()
	mustAdd := func(id, op string) {
		t.Helper()
		if _, err := g.AddNode(id, op); err != nil {
			t.Fatalf("AddNode(%q, %q): %v", id, op, err)
		}
	}
	mustAdd("coords", "uv")
	mustAdd("edge", "smootherstep")
	mustAdd("blend", "mix")
	mustAdd("screen", "output")

	if err := g.SetParam("edge", "low", Float(low)); err != nil {
		t.Fatal(err)
	}
	if err := g.SetParam("edge", "high", Float(high)); err != nil {
		t.Fatal(err)
	}
	if err := g.SetParam("blend", "a", Color(0, 0, 0, 1)); err != nil {
		t.Fatal(err)
	}
	if err := g.SetParam("blend", "b", Color(1, 1, 1, 1)); err != nil {
		t.Fatal(err)
	}

	mustConnect := func(fn, fp, tn, tp string) {
		t.Helper()
		if err := g.Connect(fn, fp, tn, tp); err != nil {
			t.Fatalf("Connect(%s.%s -> %s.%s): %v", fn, fp, tn, tp, err)
		}
	}
	mustConnect("coords", "out", "edge", "t")
	mustConnect("edge", "out", "blend", "t")
	mustConnect("blend", "out", "screen", "color")
	return g
}

func TestGraphEvalRamp(t *testing.T) {
	g := rampGraph(t, 0, 1)

	tests := []struct {
		name string
		u    float32
		want float32
	}{
		{"left edge", 0, 0},
		{"midpoint", 0.5, 0.5},
		{"right edge", 1, 1},
		{"quarter", 0.25, 0.103515625},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, err := g.Eval(tt.u, 0.5)
			if err != nil {
				t.Fatal(err)
			}
			if val.Type != TypeColor {
				t.Fatalf("result type = %v, want color", val.Type)
			}
			// uv.x feeds t; smootherstep drives a black-to-white mix,
			// so every channel equals the curve value.
			if got := val.V[0]; got != tt.want {
				t.Errorf("Eval(%v).r = %v, want %v", tt.u, got, tt.want)
			}
			if val.V[3] != 1 {
				t.Errorf("alpha = %v, want 1", val.V[3])
			}
		})
	}
}

func TestGraphEvalMatchesFunction(t *testing.T) {
	// The graph path and the bare function must agree exactly; the
	// node is just a carrier for the scalar contract.
	g := rampGraph(t, 0.2, 0.8)
	for i := 0; i <= 50; i++ {
		u := float32(i) / 50
		val, err := g.Eval(u, 0)
		if err != nil {
			t.Fatal(err)
		}
		want := SmootherStep(0.2, 0.8, u)
		if val.V[0] != want {
			t.Fatalf("Eval(%v) = %v, want SmootherStep = %v", u, val.V[0], want)
		}
	}
}

func TestGraphDefaultsAndParams(t *testing.T) {
	g := NewGraph()
	if _, err := g.AddNode("edge", "smootherstep"); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddNode("screen", "output"); err != nil {
		t.Fatal(err)
	}
	if err := g.Connect("edge", "out", "screen", "color"); err != nil {
		t.Fatal(err)
	}

	// All inputs at defaults: low=0, high=1, t=0 -> 0.
	val, err := g.Eval(0.5, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if val.V[0] != 0 {
		t.Errorf("default eval = %v, want 0", val.V[0])
	}

	// A t parameter overrides the port default.
	if err := g.SetParam("edge", "t", Float(0.5)); err != nil {
		t.Fatal(err)
	}
	val, err = g.Eval(0.5, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if val.V[0] != 0.5 {
		t.Errorf("param eval = %v, want 0.5", val.V[0])
	}
}

func TestConnectErrors(t *testing.T) {
	g := rampGraph(t, 0, 1)
	if _, err := g.AddNode("n2", "noise"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name             string
		from, fp, to, tp string
		want             error
	}{
		{"unknown source node", "ghost", "out", "edge", "low", ErrUnknownNode},
		{"unknown target node", "coords", "out", "ghost", "t", ErrUnknownNode},
		{"unknown source port", "coords", "nope", "edge", "low", ErrUnknownPort},
		{"unknown target port", "coords", "out", "edge", "nope", ErrUnknownPort},
		{"constant-only input", "coords", "out", "n2", "octaves", ErrPortConstant},
		{"already connected", "coords", "out", "edge", "t", ErrInputConnected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Connect(tt.from, tt.fp, tt.to, tt.tp)
			if !errors.Is(err, tt.want) {
				t.Errorf("Connect error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGraphCycle(t *testing.T) {
	g := NewGraph()
	for _, id := range []string{"m1", "m2"} {
		if _, err := g.AddNode(id, "mix"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := g.AddNode("screen", "output"); err != nil {
		t.Fatal(err)
	}
	if err := g.Connect("m1", "out", "m2", "a"); err != nil {
		t.Fatal(err)
	}
	if err := g.Connect("m2", "out", "m1", "a"); err != nil {
		t.Fatal(err)
	}
	if err := g.Connect("m2", "out", "screen", "color"); err != nil {
		t.Fatal(err)
	}

	if err := g.Validate(); !errors.Is(err, ErrCycle) {
		t.Errorf("Validate = %v, want ErrCycle", err)
	}
	if _, err := g.Eval(0, 0); !errors.Is(err, ErrCycle) {
		t.Errorf("Eval = %v, want ErrCycle", err)
	}
	if _, err := g.WGSL(); !errors.Is(err, ErrCycle) {
		t.Errorf("WGSL = %v, want ErrCycle", err)
	}
}

func TestGraphOutputNodeErrors(t *testing.T) {
	g := NewGraph()
	if _, err := g.AddNode("coords", "uv"); err != nil {
		t.Fatal(err)
	}
	if err := g.Validate(); !errors.Is(err, ErrNoOutput) {
		t.Errorf("Validate = %v, want ErrNoOutput", err)
	}

	for _, id := range []string{"s1", "s2"} {
		if _, err := g.AddNode(id, "output"); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.Validate(); err == nil {
		t.Error("Validate should reject two output nodes")
	}
}

func TestGraphWGSL(t *testing.T) {
	g := rampGraph(t, 0.2, 0.8)
	source, err := g.WGSL()
	if err != nil {
		t.Fatal(err)
	}

	required := []string{
		"@vertex",
		"@fragment",
		"fn vs_main",
		"fn fs_main",
		"fn smootherstep_f32",
		"e * e * e * (e * (e * 6.0 - 15.0) + 10.0)",
		"smootherstep_f32(0.2, 0.8, ",
		"mix(",
		"let uv = in.uv;",
	}
	for _, req := range required {
		if !strings.Contains(source, req) {
			t.Errorf("generated WGSL missing %q:\n%s", req, source)
		}
	}

	// The noise helper must not be included when no noise node exists.
	if strings.Contains(source, "perlin2") {
		t.Errorf("generated WGSL includes unused noise helper:\n%s", source)
	}
}

func TestGraphScalarToColorAgreement(t *testing.T) {
	// A scalar wired straight into the output's color port must promote
	// identically on both paths: opaque alpha in Eval and in the shader.
	g := NewGraph()
	for id, op := range map[string]string{"coords": "uv", "edge": "smootherstep", "screen": "output"} {
		if _, err := g.AddNode(id, op); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.Connect("coords", "out", "edge", "t"); err != nil {
		t.Fatal(err)
	}
	if err := g.Connect("edge", "out", "screen", "color"); err != nil {
		t.Fatal(err)
	}

	val, err := g.Eval(0.5, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if val.V[3] != 1 {
		t.Errorf("Eval alpha = %v, want 1", val.V[3])
	}

	source, err := g.WGSL()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(source, "vec4<f32>(vec3<f32>(n_edge), 1.0)") {
		t.Errorf("shader splats the scalar into alpha:\n%s", source)
	}
}

func TestGraphWGSLDeterministic(t *testing.T) {
	g := rampGraph(t, 0, 1)
	first, err := g.WGSL()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := g.WGSL()
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatal("WGSL output varies between runs")
		}
	}
}

func TestGraphEvalConcurrent(t *testing.T) {
	g := rampGraph(t, 0, 1)
	done := make(chan error, 8)
	for w := 0; w < 8; w++ {
		go func() {
			for i := 0; i <= 100; i++ {
				u := float32(i) / 100
				val, err := g.Eval(u, u)
				if err != nil {
					done <- err
					return
				}
				if val.V[0] != SmootherStep(0, 1, u) {
					done <- errors.New("concurrent eval mismatch")
					return
				}
			}
			done <- nil
		}()
	}
	for w := 0; w < 8; w++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}
