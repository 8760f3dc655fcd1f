// Package motion interpolates numeric values over time on a frame.Scheduler.
package motion

import "math"

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(float64) float64

// Linear applies no easing.
func Linear(t float64) float64 {
	return clampUnit(t)
}

var (
	// Ease matches CSS ease.
	Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)
	// EaseInOut matches CSS ease-in-out as used by Material motion.
	EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)
	// EaseInOutCirc is the circular in-out curve used by highlight rings.
	EaseInOutCirc = CubicBezier(0.85, 0.0, 0.15, 1.0)
)

// CubicBezier returns an easing curve equivalent to CSS cubic-bezier().
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Newton failed to converge; bisect.
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 20 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
		}
		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
