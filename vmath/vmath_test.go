package vmath

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"Below range", -1, 0, 1, 0},
		{"Above range", 2, 0, 1, 1},
		{"Inside range", 0.5, 0, 1, 0.5},
		{"At lower bound", 0, 0, 1, 0},
		{"At upper bound", 1, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"Start", 0, 10, 0, 0},
		{"End", 0, 10, 1, 10},
		{"Midpoint", 0, 10, 0.5, 5},
		{"Negative range", 10, -10, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestSmoothstepBounds(t *testing.T) {
	if got := Smoothstep(0, 1, -0.5); got != 0 {
		t.Errorf("Smoothstep below edge0 = %v, want 0", got)
	}
	if got := Smoothstep(0, 1, 1.5); got != 1 {
		t.Errorf("Smoothstep above edge1 = %v, want 1", got)
	}
	if got := Smoothstep(0, 1, 0.5); got != 0.5 {
		t.Errorf("Smoothstep at midpoint = %v, want 0.5", got)
	}
}

func TestSmoothstepMonotonic(t *testing.T) {
	prev := Smoothstep(0, 1, 0)
	for i := 1; i <= 100; i++ {
		x := float64(i) / 100
		cur := Smoothstep(0, 1, x)
		if cur < prev {
			t.Fatalf("Smoothstep not monotonic at x=%v: %v < %v", x, cur, prev)
		}
		prev = cur
	}
}

func TestNoise2Deterministic(t *testing.T) {
	coords := [][2]float64{{0, 0}, {1.5, 2.7}, {-3.2, 8.9}, {100.1, -50.5}}
	for _, c := range coords {
		a := Noise2(c[0], c[1])
		b := Noise2(c[0], c[1])
		if a != b {
			t.Errorf("Noise2(%v, %v) not deterministic: %v != %v", c[0], c[1], a, b)
		}
	}
}

func TestNoise2Bounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := float64(i)*0.137 - 50
		y := float64(i)*0.291 + 13
		v := Noise2(x, y)
		if v < -1 || v > 1 {
			t.Fatalf("Noise2(%v, %v) = %v out of [-1, 1]", x, y, v)
		}
	}
}

func TestFbmBounds(t *testing.T) {
	for oct := 1; oct <= 5; oct++ {
		for i := 0; i < 200; i++ {
			x := float64(i) * 0.173
			y := float64(i) * 0.311
			v := Fbm(x, y, oct)
			if v < -1 || v > 1 {
				t.Fatalf("Fbm(%v, %v, %d) = %v out of [-1, 1]", x, y, oct, v)
			}
		}
	}
}

func TestFbmSingleOctaveMatchesNoise(t *testing.T) {
	if a, b := Fbm(3.7, -2.1, 1), Noise2(3.7, -2.1); a != b {
		t.Errorf("Fbm with 1 octave = %v, want Noise2 value %v", a, b)
	}
}
