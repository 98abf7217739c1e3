package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Common colors
var (
	Black     = RGB{0, 0, 0}
	White     = RGB{255, 255, 255}
	DimGray   = RGB{105, 105, 105}
	SlateGray = RGB{112, 128, 144}
)

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Scale multiplies each channel by f, clamping to 255
func (c RGB) Scale(f float64) RGB {
	if f <= 0 {
		return Black
	}
	return RGB{clampChan(float64(c.R) * f), clampChan(float64(c.G) * f), clampChan(float64(c.B) * f)}
}

// Add sums two colors channel-wise, clamping to 255
func (c RGB) Add(other RGB) RGB {
	return RGB{
		clampChan(float64(c.R) + float64(other.R)),
		clampChan(float64(c.G) + float64(other.G)),
		clampChan(float64(c.B) + float64(other.B)),
	}
}

func clampChan(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// DetectColorMode inspects the environment for truecolor support
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}
	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") || strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}
	return ColorMode256
}
