package wgsl

// Helper function names usable in [Call.Helper].
const (
	// HelperSmootherStep is the quintic smootherstep helper,
	// fn smootherstep_f32(low: f32, high: f32, t: f32) -> f32.
	HelperSmootherStep = "smootherstep_f32"

	// HelperPerlin2 is the 2D gradient-noise helper,
	// fn perlin2(p: vec2<f32>) -> f32, returning values in [0, 1].
	HelperPerlin2 = "perlin2"

	helperHash2 = "hash2"
	helperGrad2 = "grad2"
	helperFade  = "fade"
)

type helperFn struct {
	source string
	deps   []string
}

// helperLib holds every helper the emitter can include. Sources are kept
// as literal text; the smootherstep body must not be reformulated, since
// its branch order and arithmetic are part of the node's numeric contract.
var helperLib = map[string]helperFn{
	HelperSmootherStep: {
		source: `fn smootherstep_f32(low: f32, high: f32, t: f32) -> f32 {
    if (t <= low) {
        return 0.0;
    }
    if (t >= high) {
        return 1.0;
    }
    let e = (t - low) / (high - low);
    return e * e * e * (e * (e * 6.0 - 15.0) + 10.0);
}`,
	},

	helperHash2: {
		source: `fn hash2(p: vec2<i32>) -> u32 {
    var h: u32 = bitcast<u32>(p.x) * 1664525u + bitcast<u32>(p.y) * 1013904223u;
    h = (h ^ (h >> 16u)) * 2246822519u;
    return h ^ (h >> 13u);
}`,
	},

	helperGrad2: {
		source: `fn grad2(h: u32, d: vec2<f32>) -> f32 {
    var g = array<vec2<f32>, 8>(
        vec2<f32>(1.0, 0.0), vec2<f32>(-1.0, 0.0),
        vec2<f32>(0.0, 1.0), vec2<f32>(0.0, -1.0),
        vec2<f32>(0.7071068, 0.7071068), vec2<f32>(-0.7071068, 0.7071068),
        vec2<f32>(0.7071068, -0.7071068), vec2<f32>(-0.7071068, -0.7071068)
    );
    let v = g[h & 7u];
    return v.x * d.x + v.y * d.y;
}`,
	},

	helperFade: {
		source: `fn fade(t: f32) -> f32 {
    return t * t * t * (t * (t * 6.0 - 15.0) + 10.0);
}`,
	},

	HelperPerlin2: {
		deps: []string{helperHash2, helperGrad2, helperFade},
		source: `fn perlin2(p: vec2<f32>) -> f32 {
    let pf = floor(p);
    let pi = vec2<i32>(pf);
    let f = p - pf;
    let a = grad2(hash2(pi), f);
    let b = grad2(hash2(pi + vec2<i32>(1, 0)), f - vec2<f32>(1.0, 0.0));
    let c = grad2(hash2(pi + vec2<i32>(0, 1)), f - vec2<f32>(0.0, 1.0));
    let d = grad2(hash2(pi + vec2<i32>(1, 1)), f - vec2<f32>(1.0, 1.0));
    let u = fade(f.x);
    let v = fade(f.y);
    return mix(mix(a, b, u), mix(c, d, u), v) * 0.5 + 0.5;
}`,
	},
}

// resolveHelpers expands the requested helper set with transitive
// dependencies and returns the definitions in a stable emit order.
func resolveHelpers(requested map[string]bool) []string {
	seen := map[string]bool{}
	var out []string

	var visit func(name string)
	visit = func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		h, ok := helperLib[name]
		if !ok {
			return
		}
		for _, d := range h.deps {
			visit(d)
		}
		out = append(out, h.source)
	}

	// Stable order: walk the library's declaration order, not map order.
	for _, name := range []string{helperHash2, helperGrad2, helperFade, HelperPerlin2, HelperSmootherStep} {
		if requested[name] {
			visit(name)
		}
	}
	return out
}
