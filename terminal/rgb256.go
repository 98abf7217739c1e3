package terminal

// Color cube values for the 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

// Index256 finds the nearest xterm-256 palette index for an RGB value
func Index256(c RGB) uint8 {
	// Grayscale ramp is a better match when channels are close
	avg := (int(c.R) + int(c.G) + int(c.B)) / 3
	if isNearGray(c) && avg >= 4 && avg <= 247 {
		gi := (avg - 8) / 10
		if gi < 0 {
			gi = 0
		}
		if gi > 23 {
			gi = 23
		}
		return uint8(grayscaleStart + gi)
	}

	r := nearestCube(c.R)
	g := nearestCube(c.G)
	b := nearestCube(c.B)
	return uint8(16 + 36*r + 6*g + b)
}

func isNearGray(c RGB) bool {
	maxc, minc := c.R, c.R
	for _, v := range [2]uint8{c.G, c.B} {
		if v > maxc {
			maxc = v
		}
		if v < minc {
			minc = v
		}
	}
	return maxc-minc < 12
}

func nearestCube(v uint8) int {
	best := 0
	bestDist := absInt(int(v) - int(cubeValues[0]))
	for i := 1; i < 6; i++ {
		d := absInt(int(v) - int(cubeValues[i]))
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
