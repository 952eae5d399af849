// Package noise implements 2D gradient noise for host-side graph
// evaluation. The hash, gradient table, and quintic fade mirror the
// generated WGSL helpers so a CPU preview agrees with the GPU shader.
package noise

import "math"

// grad2 holds the eight lattice gradient directions, matching the table
// in the WGSL grad2 helper.
var grad2 = [8][2]float32{
	{1, 0}, {-1, 0},
	{0, 1}, {0, -1},
	{0.7071068, 0.7071068}, {-0.7071068, 0.7071068},
	{0.7071068, -0.7071068}, {-0.7071068, -0.7071068},
}

// hash2 mixes lattice coordinates into a gradient selector. Constants
// match the WGSL hash2 helper (LCG multipliers, xorshift finalizer).
func hash2(x, y int32) uint32 {
	h := uint32(x)*1664525 + uint32(y)*1013904223
	h = (h ^ (h >> 16)) * 2246822519
	return h ^ (h >> 13)
}

// fade is the quintic interpolation curve 6t^5 - 15t^4 + 10t^3. It has
// zero first and second derivatives at t=0 and t=1, which removes the
// lattice artifacts a cubic fade leaves behind.
func fade(t float32) float32 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}

func lerp(t, a, b float32) float32 {
	return a + t*(b-a)
}

func dotGrad(h uint32, dx, dy float32) float32 {
	g := grad2[h&7]
	return g[0]*dx + g[1]*dy
}

// Sample2 evaluates gradient noise at (x, y) and returns a value in
// [0, 1]. The function is deterministic and safe for concurrent use.
func Sample2(x, y float32) float32 {
	fx := float32(math.Floor(float64(x)))
	fy := float32(math.Floor(float64(y)))
	ix := int32(fx)
	iy := int32(fy)
	dx := x - fx
	dy := y - fy

	a := dotGrad(hash2(ix, iy), dx, dy)
	b := dotGrad(hash2(ix+1, iy), dx-1, dy)
	c := dotGrad(hash2(ix, iy+1), dx, dy-1)
	d := dotGrad(hash2(ix+1, iy+1), dx-1, dy-1)

	u := fade(dx)
	v := fade(dy)
	return lerp(v, lerp(u, a, b), lerp(u, c, d))*0.5 + 0.5
}

// Octaves sums n octaves of Sample2 with persistence 0.5, normalized back
// to [0, 1]. n < 1 is treated as 1.
func Octaves(x, y float32, n int) float32 {
	if n <= 1 {
		return Sample2(x, y)
	}
	var sum, amp, norm float32
	amp = 1
	freq := float32(1)
	for i := 0; i < n; i++ {
		sum += (Sample2(x*freq, y*freq)*2 - 1) * amp
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	return sum/norm*0.5 + 0.5
}
