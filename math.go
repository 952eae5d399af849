package vortex

// SmootherStep maps t through a quintic easing curve between the low and
// high thresholds, returning a value in [0, 1].
//
// The function clamps: t <= low returns exactly 0.0 and t >= high returns
// exactly 1.0. Between the thresholds the normalized position
// e = (t - low) / (high - low) is shaped by the degree-5 polynomial
// 6e^5 - 15e^4 + 10e^3, which has zero first and second derivatives at
// both endpoints. That is the property that distinguishes it from the
// cubic [SmoothStep]: transitions ease in and out with no visible crease
// in the derivative.
//
// SmootherStep performs no validation. When high == low the interior
// branch divides by zero and ordinary IEEE-754 semantics govern the
// result (infinity or NaN flowing through the polynomial); NaN inputs
// propagate. It never fails, allocates, or touches shared state, so it is
// safe to call from any number of goroutines.
func SmootherStep(low, high, t float32) float32 {
	if t <= low {
		return 0.0
	}
	if t >= high {
		return 1.0
	}
	e := (t - low) / (high - low)
	return e * e * e * (e*(e*6.0-15.0) + 10.0)
}

// SmoothStep is the classic cubic Hermite easing curve 3e^2 - 2e^3 over
// the same clamped thresholds as [SmootherStep]. Its first derivative is
// continuous at the endpoints; its second is not.
func SmoothStep(low, high, t float32) float32 {
	if t <= low {
		return 0.0
	}
	if t >= high {
		return 1.0
	}
	e := (t - low) / (high - low)
	return e * e * (3.0 - 2.0*e)
}

// lerp linearly interpolates from a to b by t.
func lerp(t, a, b float32) float32 {
	return a + t*(b-a)
}
