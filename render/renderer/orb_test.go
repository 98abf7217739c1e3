package renderer

import (
	"testing"

	"github.com/lixenwraith/familiar/avatar"
	"github.com/lixenwraith/familiar/parameter/visual"
	"github.com/lixenwraith/familiar/render"
	"github.com/lixenwraith/familiar/terminal"
)

func orbContext(w, h int) render.Context {
	return render.Context{Width: w, Height: h, Delta: 1.0 / 60.0}
}

func TestOrbZeroSizeDegradesToNothing(t *testing.T) {
	p := NewOrbPainter()
	if err := p.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	frame := render.NewFrame(0, 0)
	// Must not panic or block with no surface to paint
	p.Render(avatar.Default(), orbContext(0, 0), frame)
}

func TestOrbPaintsWithinBounds(t *testing.T) {
	p := NewOrbPainter()
	frame := render.NewFrame(40, 20)
	cur := avatar.Vector{Speed: 0.6, State: 1.5, HoverBoost: 1.2, Presence: 1, Notification: 0.5}
	for i := 0; i < 10; i++ {
		p.Render(cur, orbContext(40, 20), frame)
	}
	// Every cell holds a valid premultiplied color; spot the orb painted
	// something non-black near center
	center := frame.At(20, 10)
	if center.Bg.Equal(terminal.Black) {
		t.Error("center cell still black after 10 orb frames")
	}
}

func TestOrbPresenceDimming(t *testing.T) {
	bright := NewOrbPainter()
	dim := NewOrbPainter()
	w, h := 30, 16

	full := avatar.Vector{Speed: 0.15, HoverBoost: 1, Presence: 1.0}
	faded := avatar.Vector{Speed: 0.15, HoverBoost: 1, Presence: 0.1}

	bframe := render.NewFrame(w, h)
	dframe := render.NewFrame(w, h)
	bright.Render(full, orbContext(w, h), bframe)
	dim.Render(faded, orbContext(w, h), dframe)

	if sumBrightness(bframe, w, h) <= sumBrightness(dframe, w, h) {
		t.Error("presence dimming did not reduce total frame brightness")
	}
}

func TestOrbNotificationWarms(t *testing.T) {
	calm := NewOrbPainter()
	hot := NewOrbPainter()
	w, h := 30, 16

	base := avatar.Vector{Speed: 0.15, HoverBoost: 1, Presence: 1}
	nudged := base
	nudged.Notification = 1

	cframe := render.NewFrame(w, h)
	hframe := render.NewFrame(w, h)
	calm.Render(base, orbContext(w, h), cframe)
	hot.Render(nudged, orbContext(w, h), hframe)

	var calmRed, hotRed int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			calmRed += int(cframe.At(x, y).Bg.R)
			hotRed += int(hframe.At(x, y).Bg.R)
		}
	}
	if hotRed <= calmRed {
		t.Errorf("notification warm override: hot red %d <= calm red %d", hotRed, calmRed)
	}
}

func TestBlendPalettesAtPeaks(t *testing.T) {
	tests := []struct {
		name  string
		state float64
		want  visual.Palette
	}{
		{"Idle peak", 0, visual.PaletteIdle},
		{"Think peak", 1, visual.PaletteThink},
		{"Talk peak", 2, visual.PaletteTalk},
		{"Listen full", 3, visual.PaletteListen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := blendPalettes(avatar.StateWeights(tt.state))
			for slot := 0; slot < visual.PaletteSlots; slot++ {
				if !within(got[slot].R, tt.want[slot].R, 2) ||
					!within(got[slot].G, tt.want[slot].G, 2) ||
					!within(got[slot].B, tt.want[slot].B, 2) {
					t.Errorf("slot %d = %+v, want ~%+v", slot, got[slot], tt.want[slot])
				}
			}
		})
	}
}

func within(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func sumBrightness(f *render.Frame, w, h int) int {
	total := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := f.At(x, y).Bg
			total += int(c.R) + int(c.G) + int(c.B)
		}
	}
	return total
}
