package vmath

import "math"

// Hash-based value noise on an integer lattice with smoothstep blending.
// Deterministic for equal coordinates, output in [-1, 1].

// hash2 maps lattice coordinates to a pseudo-random value in [0, 1)
func hash2(ix, iy int64) float64 {
	h := uint64(ix)*0x9E3779B97F4A7C15 ^ uint64(iy)*0xBF58476D1CE4E5B9
	h ^= h >> 31
	h *= 0x94D049BB133111EB
	h ^= h >> 29
	return float64(h&0xFFFFFF) / float64(0x1000000)
}

// Noise2 samples smooth value noise at (x, y), returning [-1, 1]
func Noise2(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	ix := int64(fx)
	iy := int64(fy)

	tx := x - fx
	ty := y - fy
	sx := tx * tx * (3 - 2*tx)
	sy := ty * ty * (3 - 2*ty)

	n00 := hash2(ix, iy)
	n10 := hash2(ix+1, iy)
	n01 := hash2(ix, iy+1)
	n11 := hash2(ix+1, iy+1)

	nx0 := Lerp(n00, n10, sx)
	nx1 := Lerp(n01, n11, sx)
	return Lerp(nx0, nx1, sy)*2 - 1
}

// Fbm sums octaves of Noise2 with halving amplitude and doubling frequency.
// Result stays in [-1, 1] through amplitude normalization
func Fbm(x, y float64, octaves int) float64 {
	if octaves < 1 {
		octaves = 1
	}
	sum := 0.0
	amp := 1.0
	total := 0.0
	for i := 0; i < octaves; i++ {
		sum += Noise2(x, y) * amp
		total += amp
		amp *= 0.5
		x *= 2
		y *= 2
	}
	return sum / total
}
