package renderer

import (
	"math"

	"github.com/lixenwraith/familiar/avatar"
	"github.com/lixenwraith/familiar/parameter"
	"github.com/lixenwraith/familiar/parameter/visual"
	"github.com/lixenwraith/familiar/render"
	"github.com/lixenwraith/familiar/terminal"
	"github.com/lixenwraith/familiar/vmath"
)

// Figure kinematics tuning
const (
	figSwayFreqCalm = 1.0
	figSwayFreqBusy = 2.4
	figSwayAmpCalm  = 0.8
	figSwayAmpBusy  = 2.2

	figBobFreq    = 1.1
	figBounceFreq = 8.0
	figBounceAmp  = 1.8
	figSleepSink  = 1.6

	figTiltIdle   = 0.06
	figTiltLean   = 0.14
	figTiltWobble = 0.30

	figGaitPhaseStep = 0.7
)

// FigurePainter renders the articulated eight-legged figure: body ellipse,
// traveling-wave leg gait, claws and blinking eyes, all computed from the
// same current vector the orb consumes
type FigurePainter struct {
	tick float64
}

// NewFigurePainter creates a figure backend with a zeroed gait clock
func NewFigurePainter() *FigurePainter {
	return &FigurePainter{}
}

func (p *FigurePainter) Init() error { return nil }

func (p *FigurePainter) Teardown() {}

// Render paints one figure frame
func (p *FigurePainter) Render(cur avatar.Vector, ctx render.Context, frame *render.Frame) {
	if ctx.Width < 7 || ctx.Height < 5 {
		return
	}

	// Locomotion runs on its own clock, independent of the orb's
	// speed-scaled animation time
	p.tick += ctx.Delta
	t := p.tick

	bucket := avatar.StateBucket(cur.State)
	thinking := bucket == avatar.BucketThinking
	toolUse := bucket == avatar.BucketToolUse
	streaming := bucket == avatar.BucketStreaming
	sleeping := avatar.Sleeping(cur.Presence)
	nudged := avatar.Nudged(cur.Notification)

	// Sideways scuttle intensifies while thinking or streaming
	swayFreq, swayAmp := figSwayFreqCalm, figSwayAmpCalm
	if thinking || streaming {
		swayFreq, swayAmp = figSwayFreqBusy, figSwayAmpBusy
	}
	sway := math.Sin(t*swayFreq) * swayAmp

	// Vertical bob: sharp bounce on nudge, sink when asleep
	var bob float64
	switch {
	case nudged:
		bob = -math.Abs(math.Sin(t*figBounceFreq)) * figBounceAmp
	case sleeping:
		bob = figSleepSink
	default:
		bob = math.Sin(t*figBobFreq) * 0.5
	}

	// Tilt: wobble on nudge, forward lean during tool use, subtle idle sway
	var tilt float64
	switch {
	case nudged:
		tilt = math.Sin(t*6.5) * figTiltWobble
	case toolUse:
		tilt = figTiltLean + math.Sin(t*0.9)*0.04
	default:
		tilt = math.Sin(t*0.6) * figTiltIdle
	}

	w := avatar.StateWeights(cur.State)
	palette := blendPalettes(w)
	dim := vmath.Mix(0.25, 1.0, cur.Presence)

	cx := float64(ctx.Width)/2 + sway
	cy := float64(ctx.Height)/2 + bob

	// Body half-extents in cell coordinates, capped for small frames
	bw := math.Min(float64(ctx.Width)*0.28, 9)
	bh := math.Max(math.Min(float64(ctx.Height)*0.22, 3.2), 1.6)

	p.drawLegs(frame, cur, cx, cy, bw, bh, t, sleeping, dim, palette)
	p.drawBody(frame, cx, cy, bw, bh, tilt, dim, palette)
	p.drawClaws(frame, cx, cy, bw, t, toolUse, nudged, dim)
	p.drawEyes(frame, cx, cy, bh, t, sleeping, dim)
}

// drawLegs paints eight two-cell legs with a traveling-wave gait: phase
// offset grows with limb index, amplitude collapses to zero in sleep
func (p *FigurePainter) drawLegs(frame *render.Frame, cur avatar.Vector, cx, cy, bw, bh float64, t float64, sleeping bool, dim float64, palette visual.Palette) {
	gaitAmp := 1.0
	if sleeping {
		gaitAmp = 0
	}
	gaitFreq := 2.0 + 3.0*cur.Speed
	legColor := palette[3].Scale(dim)

	perSide := parameter.FigureLegCount / 2
	for i := 0; i < parameter.FigureLegCount; i++ {
		side := -1.0
		idx := i
		if i >= perSide {
			side = 1.0
			idx = i - perSide
		}

		phase := t*gaitFreq + float64(i)*figGaitPhaseStep
		lift := math.Sin(phase) * gaitAmp

		ax := cx + side*(bw*0.35+float64(idx)*bw*0.2)
		ay := cy + bh*0.6

		kneeX := int(math.Round(ax + side))
		kneeY := int(math.Round(ay))
		footX := int(math.Round(ax + side*2))
		footY := int(math.Round(ay + 1.2 - math.Max(0, lift)))

		kneeRune := '\\'
		if side < 0 {
			kneeRune = '/'
		}
		footRune := '_'
		if lift > 0.3 {
			footRune = '-'
		}

		frame.SetRune(kneeX, kneeY, kneeRune, legColor, terminal.AttrNone)
		frame.SetRune(footX, footY, footRune, legColor, terminal.AttrDim)
	}
}

// drawBody fills a tilted ellipse with palette shades, core to rim
func (p *FigurePainter) drawBody(frame *render.Frame, cx, cy, bw, bh, tilt, dim float64, palette visual.Palette) {
	sinT, cosT := math.Sincos(tilt)

	minX := int(cx - bw - 2)
	maxX := int(cx + bw + 2)
	minY := int(cy - bh - 2)
	maxY := int(cy + bh + 2)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			ux := float64(x) + 0.5 - cx
			// Double the vertical distance to compensate cell aspect
			uy := (float64(y) + 0.5 - cy) * 2

			rx := ux*cosT - uy*sinT
			ry := ux*sinT + uy*cosT

			d := math.Sqrt(sq(rx/bw) + sq(ry/(bh*2)))
			if d > 1 {
				continue
			}

			slot := int(d * float64(visual.PaletteSlots))
			if slot >= visual.PaletteSlots {
				slot = visual.PaletteSlots - 1
			}

			shade := '░'
			switch {
			case d < 0.45:
				shade = '▓'
			case d < 0.8:
				shade = '▒'
			}

			frame.SetRune(x, y, shade, palette[slot].Scale(dim), terminal.AttrNone)
		}
	}
}

// drawClaws paints the two front appendages, opening with tool-use or nudge
func (p *FigurePainter) drawClaws(frame *render.Frame, cx, cy, bw float64, t float64, toolUse, nudged bool, dim float64) {
	drive := 0.15
	switch {
	case toolUse:
		drive = 0.5 + 0.5*math.Sin(t*3.2)
	case nudged:
		drive = 0.5 + 0.5*math.Sin(t*7.0)
	}

	open := drive > 0.5
	leftRune, rightRune := '(', ')'
	if open {
		leftRune, rightRune = '{', '}'
	}

	color := visual.RgbFigureClaw.Scale(dim)
	y := int(math.Round(cy - 1))
	frame.SetRune(int(math.Round(cx-bw-1)), y, leftRune, color, terminal.AttrBold)
	frame.SetRune(int(math.Round(cx+bw+1)), y, rightRune, color, terminal.AttrBold)
}

// drawEyes paints the eye pair. The blink timer runs on a fixed period
// regardless of activity; sleep keeps the eyes shut
func (p *FigurePainter) drawEyes(frame *render.Frame, cx, cy, bh float64, t float64, sleeping bool, dim float64) {
	closed := sleeping || math.Mod(t, parameter.BlinkPeriod) < parameter.BlinkDuration

	eyeRune := 'O'
	attrs := terminal.AttrBold
	color := visual.RgbFigureEye.Scale(dim)
	if closed {
		eyeRune = '-'
		attrs = terminal.AttrDim
	}

	y := int(math.Round(cy - bh*0.5))
	frame.SetRune(int(math.Round(cx-2)), y, eyeRune, color, attrs)
	frame.SetRune(int(math.Round(cx+2)), y, eyeRune, color, attrs)
}

// BlinkClosed reports whether the blink window is active at gait time t.
// Exposed for cross-backend behavior checks
func BlinkClosed(t float64) bool {
	return math.Mod(t, parameter.BlinkPeriod) < parameter.BlinkDuration
}
