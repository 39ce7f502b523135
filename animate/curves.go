package animate

import "math"

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 {
	return t
}

// EaseInOut starts and ends slowly. Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)

// EaseOut decelerates toward the end. Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.58, 1.0)

// CubicBezier returns the easing curve through control points (x1, y1) and
// (x2, y2), matching CSS cubic-bezier().
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Solve x(u) = t for u with Newton-Raphson, falling back to bisection.
		u := t
		for i := 0; i < 8; i++ {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezier(y1, y2, clamp01(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		lo, hi := 0.0, 1.0
		u = clamp01(u)
		for i := 0; i < 16; i++ {
			x := bezier(x1, x2, u) - t
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
		return bezier(y1, y2, u)
	}
}

func bezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
