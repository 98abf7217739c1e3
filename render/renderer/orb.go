// Package renderer provides the two avatar painters: the procedural glowing
// orb and the articulated figure. Both consume the same current vector and
// keep independent animation clocks so face switches never reset motion.
package renderer

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/familiar/avatar"
	"github.com/lixenwraith/familiar/parameter/visual"
	"github.com/lixenwraith/familiar/render"
	"github.com/lixenwraith/familiar/terminal"
	"github.com/lixenwraith/familiar/vmath"
)

// Orb shape tuning
const (
	orbBaseRadius  = 0.62 // silhouette radius in normalized distance space
	orbEdgeFeather = 0.16 // smoothstep half-width around the silhouette
	orbInnerStart  = 0.35 // inner mask falloff start
	orbBandSharp   = 2.2  // Gaussian band sharpness
	orbGlowSharp   = 3.5  // core glow falloff
	orbBloomSharp  = 6.0  // edge bloom ring sharpness
)

// OrbPainter renders the soft-edged glowing orb from layered noise fields
// and state-blended palettes
type OrbPainter struct {
	clock float64
}

// NewOrbPainter creates an orb backend with a zeroed animation clock
func NewOrbPainter() *OrbPainter {
	return &OrbPainter{}
}

func (p *OrbPainter) Init() error { return nil }

func (p *OrbPainter) Teardown() {}

// Render paints one orb frame. Pixels outside the silhouette receive only a
// radially decaying outer glow; there is no hard cutout
func (p *OrbPainter) Render(cur avatar.Vector, ctx render.Context, frame *render.Frame) {
	if ctx.Width <= 0 || ctx.Height <= 0 {
		return
	}

	// Animation clock scales with activity speed and hover emphasis
	p.clock += ctx.Delta * cur.Speed * cur.HoverBoost
	t := p.clock

	w := avatar.StateWeights(cur.State)
	palette := blendPalettes(w)

	// Breathing dominates at idle, stays subtle otherwise
	breathAmp := 0.02 + 0.05*w.Idle
	breath := breathAmp * math.Sin(t*1.3)

	// Noise amplitude and rate both rise with notification for an excited
	// silhouette
	noiseAmp := 0.05 + 0.10*cur.Notification
	noiseRate := 1.0 + 2.0*cur.Notification

	intensity := 0.55*w.Idle + 0.8*w.Think + 1.0*w.Talk + 0.9*w.Listen
	colorDim := vmath.Mix(0.15, 1.0, cur.Presence)
	alphaDim := vmath.Mix(0.3, 1.0, cur.Presence)

	warmPulse := cur.Notification * (0.55 + 0.45*math.Sin(t*5.0))

	cx := float64(ctx.Width) / 2
	cy := float64(ctx.Height) / 2
	// Half the vertical scale compensates the 2:1 cell aspect
	rx := float64(ctx.Width) * 0.5 * 0.92
	ry := float64(ctx.Height) * 0.5 * 0.92
	if rx <= 0 || ry <= 0 {
		return
	}

	for y := 0; y < ctx.Height; y++ {
		for x := 0; x < ctx.Width; x++ {
			nx := (float64(x) + 0.5 - cx) / rx
			ny := (float64(y) + 0.5 - cy) / ry
			d := math.Sqrt(nx*nx + ny*ny)
			theta := math.Atan2(ny, nx)

			// Silhouette radius perturbed by two noise fields: one in
			// (angle, time), one in (position, time)
			angNoise := vmath.Fbm(math.Cos(theta)*1.5+t*noiseRate*0.6, math.Sin(theta)*1.5+t*noiseRate*0.45, 3)
			posNoise := vmath.Fbm(nx*2.0+t*0.5, ny*2.0-t*0.4, 2)
			radius := orbBaseRadius + breath + noiseAmp*(0.7*angNoise+0.5*posNoise)

			// Feathered edge: outer and inner smoothstep masks blended 0.7/0.3
			outer := 1 - vmath.Smoothstep(radius-orbEdgeFeather, radius+orbEdgeFeather, d)
			inner := 1 - vmath.Smoothstep(radius*orbInnerStart, radius, d)
			alpha := 0.7*outer + 0.3*inner

			var r, g, b float64

			if alpha > 0.004 {
				// Six Gaussian bands, each tinted by one blended palette
				// slot with a slow phase-shifted brightness oscillation
				for i := 0; i < visual.PaletteSlots; i++ {
					offset := -0.8 + float64(i)*0.32
					band := math.Exp(-sq((ny - offset) * orbBandSharp))
					osc := 0.75 + 0.25*math.Sin(t*0.4+float64(i)*1.1)
					c := palette[i]
					gain := band * osc * 0.55
					r += float64(c.R) / 255 * gain
					g += float64(c.G) / 255 * gain
					b += float64(c.B) / 255 * gain
				}

				// Core glow and inner luminance
				glow := math.Exp(-d * d * orbGlowSharp)
				core := palette[4]
				r += float64(core.R) / 255 * glow * 0.45
				g += float64(core.G) / 255 * glow * 0.45
				b += float64(core.B) / 255 * glow * 0.45
				lum := glow * 0.18
				r += lum
				g += lum
				b += lum

				// Edge bloom ring blending the two rim palette slots
				ring := math.Exp(-sq((d - radius) * orbBloomSharp))
				bloom := blendRGB(palette[4], palette[5], 0.5+0.5*math.Sin(t*0.9))
				r += float64(bloom.R) / 255 * ring * 0.35
				g += float64(bloom.G) / 255 * ring * 0.35
				b += float64(bloom.B) / 255 * ring * 0.35

				// Warm override proportional to notification, with its own pulse
				if warmPulse > 0 {
					warm := visual.RgbNudgeWarm
					r = vmath.Lerp(r, float64(warm.R)/255, vmath.Clamp01(warmPulse*0.6))
					g = vmath.Lerp(g, float64(warm.G)/255, vmath.Clamp01(warmPulse*0.6))
					b = vmath.Lerp(b, float64(warm.B)/255, vmath.Clamp01(warmPulse*0.6))
				}

				// Drop affordance: cool highlight ring at the rim
				if cur.DropHighlight > 0 {
					dropRing := math.Exp(-sq((d-radius)*orbBloomSharp)) * cur.DropHighlight
					cool := visual.RgbDropCool
					r += float64(cool.R) / 255 * dropRing * 0.5
					g += float64(cool.G) / 255 * dropRing * 0.5
					b += float64(cool.B) / 255 * dropRing * 0.5
				}

				r *= intensity
				g *= intensity
				b *= intensity
			} else {
				// Outside the shape only a radially decaying outer glow
				fall := math.Exp(-(d - radius) * 2.5)
				if fall > 1 {
					fall = 1
				}
				halo := palette[2]
				r = float64(halo.R) / 255 * fall * 0.10
				g = float64(halo.G) / 255 * fall * 0.10
				b = float64(halo.B) / 255 * fall * 0.10
				alpha = fall * 0.3
			}

			// Presence dimming scales both color and alpha; output is
			// premultiplied against the black backdrop
			a := vmath.Clamp01(alpha * alphaDim)
			r = vmath.Clamp01(r*colorDim) * a
			g = vmath.Clamp01(g*colorDim) * a
			b = vmath.Clamp01(b*colorDim) * a

			frame.Set(x, y, terminal.Cell{
				Rune: ' ',
				Bg: terminal.RGB{
					R: uint8(r*255 + 0.5),
					G: uint8(g*255 + 0.5),
					B: uint8(b*255 + 0.5),
				},
			})
		}
	}
}

func sq(v float64) float64 { return v * v }

// blendPalettes mixes the four state palettes slot-wise by the state
// weights, in linear RGB so cross-fades hold perceived brightness
func blendPalettes(w avatar.Weights) visual.Palette {
	var out visual.Palette
	for slot := 0; slot < visual.PaletteSlots; slot++ {
		var lr, lg, lb float64
		accum := func(c terminal.RGB, wt float64) {
			if wt <= 0 {
				return
			}
			r, g, b := toColorful(c).LinearRgb()
			lr += r * wt
			lg += g * wt
			lb += b * wt
		}
		accum(visual.PaletteIdle[slot], w.Idle)
		accum(visual.PaletteThink[slot], w.Think)
		accum(visual.PaletteTalk[slot], w.Talk)
		accum(visual.PaletteListen[slot], w.Listen)

		out[slot] = fromColorful(colorful.LinearRgb(lr, lg, lb).Clamped())
	}
	return out
}

// blendRGB interpolates two colors through HCL space for a hue-true blend
func blendRGB(a, b terminal.RGB, t float64) terminal.RGB {
	return fromColorful(toColorful(a).BlendHcl(toColorful(b), vmath.Clamp01(t)).Clamped())
}

func toColorful(c terminal.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) terminal.RGB {
	return terminal.RGB{
		R: uint8(vmath.Clamp01(c.R)*255 + 0.5),
		G: uint8(vmath.Clamp01(c.G)*255 + 0.5),
		B: uint8(vmath.Clamp01(c.B)*255 + 0.5),
	}
}
