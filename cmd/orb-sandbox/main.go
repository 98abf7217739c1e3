// Isolated harness for the orb renderer: drive each vector field from the
// keyboard and watch the output without the mapper or drivers in the way.
package main

import (
	"fmt"
	"time"

	"github.com/lixenwraith/familiar/avatar"
	"github.com/lixenwraith/familiar/parameter"
	"github.com/lixenwraith/familiar/render"
	"github.com/lixenwraith/familiar/render/renderer"
	"github.com/lixenwraith/familiar/terminal"
)

func main() {
	term := terminal.New(terminal.DetectColorMode())
	if err := term.Init(); err != nil {
		panic(err)
	}
	defer term.Fini()

	orb := renderer.NewOrbPainter()
	if err := orb.Init(); err != nil {
		panic(err)
	}
	defer orb.Teardown()

	width, height := term.Size()
	frame := render.NewFrame(width, height)

	target := avatar.Default()
	current := avatar.Default()

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			term.PostEvent(terminal.Event{Type: terminal.EventTick})
		}
	}()

	for {
		ev := term.PollEvent()
		switch ev.Type {
		case terminal.EventClosed, terminal.EventError:
			return

		case terminal.EventKey:
			if ev.Key == terminal.KeyEscape || ev.Key == terminal.KeyCtrlC || ev.Rune == 'q' {
				return
			}
			adjust(&target, ev)

		case terminal.EventResize:
			width, height = ev.Width, ev.Height
			frame.Resize(width, height)
			term.Sync()

		case terminal.EventTick:
			current = avatar.Advance(current, target, parameter.BaseFactor)
			frame.Clear()
			orb.Render(current, render.Context{
				Width:  width,
				Height: height,
				Delta:  parameter.FrameDelta,
			}, frame)
			drawReadout(frame, target, current)
			term.Flush(frame.Cells(), width, height)
		}
	}
}

// adjust maps keys to vector field changes. Arrows sweep speed and state;
// letters toggle the stepped fields
func adjust(target *avatar.Vector, ev terminal.Event) {
	switch ev.Key {
	case terminal.KeyUp:
		target.Speed += 0.1
	case terminal.KeyDown:
		target.Speed -= 0.1
	case terminal.KeyRight:
		target.State += 0.25
	case terminal.KeyLeft:
		target.State -= 0.25
	}

	switch ev.Rune {
	case 'h':
		if target.HoverBoost > parameter.HoverBoostOff {
			target.HoverBoost = parameter.HoverBoostOff
		} else {
			target.HoverBoost = parameter.HoverBoostOn
		}
	case 'd':
		target.DropHighlight = 1 - target.DropHighlight
	case 'p':
		target.Presence -= 0.2
		if target.Presence < 0 {
			target.Presence = 1
		}
	case 'n':
		target.Notification = 1 - target.Notification
	}

	*target = target.Clamp()
}

func drawReadout(frame *render.Frame, target, current avatar.Vector) {
	_, height := frame.Size()
	line := fmt.Sprintf(" speed %.2f/%.2f  state %.2f/%.2f  hover %.2f  presence %.2f  notif %.2f ",
		current.Speed, target.Speed, current.State, target.State,
		current.HoverBoost, current.Presence, current.Notification)
	for i, r := range line {
		frame.SetRune(i, height-1, r, terminal.SlateGray, terminal.AttrDim)
	}
}
