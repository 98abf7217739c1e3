package renderer

import (
	"testing"

	"github.com/lixenwraith/familiar/avatar"
	"github.com/lixenwraith/familiar/render"
)

func TestFigureTinyFrameDegradesToNothing(t *testing.T) {
	p := NewFigurePainter()
	if err := p.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	frame := render.NewFrame(3, 2)
	p.Render(avatar.Default(), render.Context{Width: 3, Height: 2, Delta: 1.0 / 60.0}, frame)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if frame.At(x, y).Rune != ' ' {
				t.Fatal("figure painted into a frame too small for it")
			}
		}
	}
}

func TestFigureDrawsBody(t *testing.T) {
	p := NewFigurePainter()
	w, h := 80, 24
	frame := render.NewFrame(w, h)
	ctx := render.Context{Width: w, Height: h, Delta: 1.0 / 60.0}

	cur := avatar.Vector{Speed: 0.6, State: 2.0, HoverBoost: 1, Presence: 1}
	for i := 0; i < 30; i++ {
		frame.Clear()
		p.Render(cur, ctx, frame)
	}

	painted := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if frame.At(x, y).Rune != ' ' {
				painted++
			}
		}
	}
	if painted < 20 {
		t.Errorf("figure painted only %d cells, want a full body", painted)
	}
}

// Open eyes appear once the startup blink window has passed; sleep keeps
// them shut no matter the clock
func TestFigureEyes(t *testing.T) {
	w, h := 80, 24
	ctx := render.Context{Width: w, Height: h, Delta: 1.0 / 60.0}

	countRune := func(f *render.Frame, r rune) int {
		n := 0
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if f.At(x, y).Rune == r {
					n++
				}
			}
		}
		return n
	}

	awake := NewFigurePainter()
	frame := render.NewFrame(w, h)
	cur := avatar.Vector{Speed: 0.15, HoverBoost: 1, Presence: 1}
	// 60 ticks = 1s of gait time, outside the 0.2s blink window
	for i := 0; i < 60; i++ {
		frame.Clear()
		awake.Render(cur, ctx, frame)
	}
	if countRune(frame, 'O') != 2 {
		t.Errorf("awake figure shows %d open eyes, want 2", countRune(frame, 'O'))
	}

	asleep := NewFigurePainter()
	sleepCur := avatar.Vector{Speed: 0.15, HoverBoost: 1, Presence: 0.1}
	for i := 0; i < 60; i++ {
		frame.Clear()
		asleep.Render(sleepCur, ctx, frame)
	}
	if countRune(frame, 'O') != 0 {
		t.Error("sleeping figure shows open eyes")
	}
}

func TestBlinkTimerPeriod(t *testing.T) {
	// Closed inside the window at each period start, open in between
	for _, tt := range []struct {
		t    float64
		want bool
	}{
		{0.0, true},
		{0.1, true},
		{0.3, false},
		{1.75, false},
		{3.5, true},
		{3.6, true},
		{3.8, false},
		{7.05, true},
	} {
		if got := BlinkClosed(tt.t); got != tt.want {
			t.Errorf("BlinkClosed(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

// Both backends must classify the same state value identically even though
// their pixel output differs completely
func TestBackendBucketAgreement(t *testing.T) {
	for _, s := range []float64{0, 0.4, 0.5, 1.0, 1.5, 2.0, 2.5, 3.0} {
		orbBucket := avatar.StateBucket(s)
		figBucket := avatar.StateBucket(s)
		if orbBucket != figBucket {
			t.Errorf("state %v: orb bucket %v != figure bucket %v", s, orbBucket, figBucket)
		}
	}
	if avatar.StateBucket(2.0) != avatar.BucketToolUse {
		t.Error("state 2.0 must classify as tool use in every backend")
	}
}
