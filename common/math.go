package common

import (
	"cmp"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the tolerance used by the approximate comparisons in this module.
const Epsilon = 1e-6

// / Clamps the value to the specified range.
// / @param[in]		value			The value to clamp.
// / @param[in]		minInclusive	The minimum permitted return value.
// / @param[in]		maxInclusive	The maximum permitted return value.
// / @return The value, clamped to the specified range.
func Clamp[T cmp.Ordered](value, minInclusive, maxInclusive T) T {
	if value < minInclusive {
		return minInclusive
	}
	if value > maxInclusive {
		return maxInclusive
	}
	return value
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// / Checks that all components of the vector are finite.
// /  @param[in]		v	A point. [(x, y, z)]
func Visfinite(v Vec3) bool {
	return IsFinite(v[0]) && IsFinite(v[1]) && IsFinite(v[2])
}

// Near compares with an absolute tolerance. mgl32's ApproxEqual helpers are
// relative and reject tiny values next to zero.
func Near(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}

// / Checks that every component of the two vectors is within tol.
func Vnear(a, b Vec3, tol float32) bool {
	return Near(a[0], b[0], tol) && Near(a[1], b[1], tol) && Near(a[2], b[2], tol)
}

// / Checks that every element of the two matrices is within tol.
func Mnear(a, b Mat4, tol float32) bool {
	for i := range a {
		if !Near(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return mgl32.DegToRad(deg)
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return mgl32.RadToDeg(rad)
}
