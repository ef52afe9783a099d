package math

import "golang.org/x/exp/constraints"

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// NearlyEqual reports whether a and b differ by at most tolerance.
func NearlyEqual[T constraints.Float](a, b, tolerance T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

// ClampAxis wraps an angle in degrees into [0, 360).
func ClampAxis(angle float32) float32 {
	angle = kmod(angle, 360.0)
	if angle < 0.0 {
		angle += 360.0
	}
	return angle
}

// NormalizeAxis wraps an angle in degrees into (-180, 180].
func NormalizeAxis(angle float32) float32 {
	angle = ClampAxis(angle)
	if angle > 180.0 {
		angle -= 360.0
	}
	return angle
}
