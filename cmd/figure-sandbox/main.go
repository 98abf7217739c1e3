// Isolated harness for the articulated figure renderer: cycles through the
// behavioral poses on a timer so gait, claws, and blink can be eyeballed.
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

// pose is one scripted stop in the showcase cycle
type pose struct {
	name   string
	target avatar.Vector
}

var poses = []pose{
	{"idle", avatar.Vector{Speed: 0.15, State: 0, HoverBoost: 1, Presence: 1}},
	{"thinking", avatar.Vector{Speed: 0.6, State: 1, HoverBoost: 1, Presence: 1}},
	{"tool use", avatar.Vector{Speed: 0.7, State: 2, HoverBoost: 1, Presence: 1}},
	{"streaming", avatar.Vector{Speed: 0.6, State: 2.8, HoverBoost: 1, Presence: 1}},
	{"nudged", avatar.Vector{Speed: 0.5, State: 1, HoverBoost: 1, Presence: 1, Notification: 1}},
	{"sleeping", avatar.Vector{Speed: 0.1, State: 0, HoverBoost: 1, Presence: 0.1}},
}

const poseInterval = 6 * time.Second

func main() {
	term := terminal.New(terminal.DetectColorMode())
	if err := term.Init(); err != nil {
		panic(err)
	}
	defer term.Fini()

	figure := renderer.NewFigurePainter()
	if err := figure.Init(); err != nil {
		panic(err)
	}
	defer figure.Teardown()

	width, height := term.Size()
	frame := render.NewFrame(width, height)

	poseIdx := 0
	current := avatar.Default()
	lastSwitch := time.Now()

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
			// Any other key skips ahead
			poseIdx = (poseIdx + 1) % len(poses)
			lastSwitch = time.Now()

		case terminal.EventResize:
			width, height = ev.Width, ev.Height
			frame.Resize(width, height)
			term.Sync()

		case terminal.EventTick:
			if time.Since(lastSwitch) > poseInterval {
				poseIdx = (poseIdx + 1) % len(poses)
				lastSwitch = time.Now()
			}

			current = avatar.Advance(current, poses[poseIdx].target, parameter.BaseFactor)
			frame.Clear()
			figure.Render(current, render.Context{
				Width:  width,
				Height: height,
				Delta:  parameter.FrameDelta,
			}, frame)

			label := fmt.Sprintf(" pose: %s (any key to skip, q to quit) ", poses[poseIdx].name)
			for i, r := range label {
				frame.SetRune(i, height-1, r, terminal.SlateGray, terminal.AttrDim)
			}
			term.Flush(frame.Cells(), width, height)
		}
	}
}
