// Package visual holds the avatar color tables.
package visual

import "github.com/lixenwraith/familiar/terminal"

// PaletteSlots is the slot count of every state palette
const PaletteSlots = 6

// Palette is a 6-slot color ramp, ordered core to rim
type Palette [PaletteSlots]terminal.RGB

// State palettes, blended slot-wise by the four state weights.
// Idle: cool night blues. Think: violets. Talk: warm amber. Listen: greens.
var (
	PaletteIdle = Palette{
		{R: 26, G: 35, B: 66},    // deep navy core shadow
		{R: 42, G: 58, B: 110},   // navy
		{R: 61, G: 90, B: 158},   // slate blue
		{R: 88, G: 132, B: 196},  // steel blue
		{R: 126, G: 178, B: 222}, // sky
		{R: 180, G: 220, B: 240}, // pale rim
	}

	PaletteThink = Palette{
		{R: 40, G: 24, B: 66},    // deep violet
		{R: 68, G: 40, B: 110},   // dark purple
		{R: 104, G: 62, B: 160},  // violet
		{R: 140, G: 92, B: 200},  // amethyst
		{R: 178, G: 134, B: 226}, // lavender
		{R: 222, G: 190, B: 246}, // pale lilac rim
	}

	PaletteTalk = Palette{
		{R: 72, G: 34, B: 16},    // umber
		{R: 122, G: 58, B: 20},   // burnt orange
		{R: 180, G: 92, B: 26},   // amber
		{R: 226, G: 134, B: 38},  // bright amber
		{R: 246, G: 178, B: 74},  // gold
		{R: 252, G: 222, B: 150}, // pale gold rim
	}

	PaletteListen = Palette{
		{R: 16, G: 52, B: 36},    // deep pine
		{R: 26, G: 86, B: 54},    // forest
		{R: 40, G: 128, B: 76},   // emerald
		{R: 66, G: 170, B: 102},  // jade
		{R: 112, G: 208, B: 142}, // mint
		{R: 178, G: 238, B: 196}, // pale mint rim
	}
)

// Nudge and drag accents
var (
	// RgbNudgeWarm is mixed over the orb in proportion to notification
	RgbNudgeWarm = terminal.RGB{R: 255, G: 120, B: 40}

	// RgbDropCool rings the rim while a drag hovers the avatar
	RgbDropCool = terminal.RGB{R: 80, G: 200, B: 255}
)

// Figure accents
var (
	RgbFigureEye   = terminal.RGB{R: 240, G: 244, B: 255}
	RgbFigurePupil = terminal.RGB{R: 20, G: 24, B: 40}
	RgbFigureClaw  = terminal.RGB{R: 200, G: 170, B: 110}
)
