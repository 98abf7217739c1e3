// Package vmath provides the float math helpers shared by the animation
// and rendering code: clamping, interpolation, smoothstep and coherent noise.
package vmath

// Clamp constrains v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 constrains v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates linearly from a to b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Mix is Lerp with GLSL argument naming, t unclamped
func Mix(a, b, t float64) float64 {
	return Lerp(a, b, t)
}

// Smoothstep returns the Hermite interpolant for x across [edge0, edge1]
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}
