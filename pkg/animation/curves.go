package animation

import "math"

// Curve transforms linear animation progress (t in [0, 1]) into eased
// progress. Set a [ProgressController]'s curves to apply easing.
//
// Standard curves: [Linear], [Ease], [EaseIn], [EaseOut], [EaseInOut].
// Use [CubicBezier] to create custom curves matching CSS cubic-bezier().
type Curve func(t float64) float64

// Linear returns linear progress (no easing).
func Linear(t float64) float64 {
	return t
}

// Ease is a standard cubic bezier curve for general-purpose easing.
// Equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates. Use for elements exiting the screen.
// Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Use for elements entering the screen.
// Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
// This is the default drawer curve. Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns an easing curve matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2); the
// curve runs from (0,0) to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		u := solveBezierParam(x1, x2, t)
		return bezierComponent(y1, y2, u)
	}
}

// bezierComponent evaluates one coordinate of the bezier at parameter u,
// with implicit anchors at 0 and 1.
func bezierComponent(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*p1 + 3*inv*u*u*p2 + u*u*u
}

func bezierDerivative(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*p1 + 6*inv*u*(p2-p1) + 3*u*u*(1-p2)
}

// solveBezierParam finds u such that the bezier's x component equals t.
// Newton-Raphson converges quickly for well-behaved control points; a
// bisection fallback guarantees a stable solution in [0, 1].
func solveBezierParam(x1, x2, t float64) float64 {
	const epsilon = 1e-7

	u := t
	for range 8 {
		diff := bezierComponent(x1, x2, u) - t
		if math.Abs(diff) < epsilon {
			return clamp01(u)
		}
		slope := bezierDerivative(x1, x2, u)
		if math.Abs(slope) < epsilon {
			break
		}
		u -= diff / slope
	}

	lo, hi := 0.0, 1.0
	u = clamp01(u)
	for range 12 {
		diff := bezierComponent(x1, x2, u) - t
		if math.Abs(diff) < epsilon {
			break
		}
		if diff > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) * 0.5
	}
	return u
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
