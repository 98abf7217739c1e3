package main

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/familiar/audio"
	"github.com/lixenwraith/familiar/avatar"
	"github.com/lixenwraith/familiar/config"
	"github.com/lixenwraith/familiar/parameter"
	"github.com/lixenwraith/familiar/render"
	"github.com/lixenwraith/familiar/sched"
	"github.com/lixenwraith/familiar/terminal"
)

const demoStepInterval = 4 * time.Second

// Keyboard bindings for the self-contained signal drivers
//
//	i       idle            g  working elsewhere
//	j       plain job       v  overridden
//	b r w e bash/read/      n  enqueue nudge
//	a o     write/edit/     space  acknowledge nudge
//	        attach/other    s  toggle screen-asleep
//	f       switch face     t  toggle status line
//	q esc   quit
var activityKeys = map[rune]avatar.ActivitySignal{
	'i': {Kind: avatar.ActivityIdle},
	'j': {Kind: avatar.ActivityWorkingMain, Tool: avatar.ToolNone},
	'b': {Kind: avatar.ActivityWorkingMain, Tool: avatar.ToolBash},
	'r': {Kind: avatar.ActivityWorkingMain, Tool: avatar.ToolRead},
	'w': {Kind: avatar.ActivityWorkingMain, Tool: avatar.ToolWrite},
	'e': {Kind: avatar.ActivityWorkingMain, Tool: avatar.ToolEdit},
	'a': {Kind: avatar.ActivityWorkingMain, Tool: avatar.ToolAttach},
	'o': {Kind: avatar.ActivityWorkingMain, Tool: avatar.ToolOther},
	'g': {Kind: avatar.ActivityWorkingOther},
	'v': {Kind: avatar.ActivityOverridden},
}

// drivers feeds the target store from keyboard, mouse, and timers. Every
// write to the store funnels through publishLocked so the mapper always
// sees a consistent snapshot of all signals
type drivers struct {
	store   *avatar.Store
	chime   *audio.Engine
	host    *render.Host
	cfgPath string

	mu         sync.Mutex
	cfg        config.Config
	in         avatar.Inputs
	lastInput  time.Time
	width      int
	height     int
	status     bool
	nudgeToken *sched.Token

	presence *sched.Repeater
	demo     *sched.Repeater
	demoStep int
}

func newDrivers(store *avatar.Store, chime *audio.Engine, host *render.Host, cfgPath string, cfg config.Config) *drivers {
	d := &drivers{
		store:     store,
		chime:     chime,
		host:      host,
		cfgPath:   cfgPath,
		cfg:       cfg,
		lastInput: time.Now(),
		status:    true,
	}
	d.publish()
	return d
}

func (d *drivers) start(demo bool) {
	d.presence = sched.NewRepeater(parameter.PresencePollInterval, d.samplePresence)
	d.presence.Start()

	if demo {
		d.demo = sched.NewRepeater(demoStepInterval, d.demoTick)
		d.demo.Start()
	}
}

func (d *drivers) stop() {
	if d.presence != nil {
		d.presence.Stop()
	}
	if d.demo != nil {
		d.demo.Stop()
	}
	d.mu.Lock()
	if d.nudgeToken != nil {
		d.nudgeToken.Cancel()
	}
	d.mu.Unlock()
}

// handleEvent processes one terminal event. Returns false to quit
func (d *drivers) handleEvent(ev terminal.Event) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch ev.Type {
	case terminal.EventKey:
		d.touchLocked()
		return d.handleKeyLocked(ev)

	case terminal.EventMouse:
		d.touchLocked()
		d.handleMouseLocked(ev)

	case terminal.EventResize:
		d.width, d.height = ev.Width, ev.Height
	}
	return true
}

func (d *drivers) handleKeyLocked(ev terminal.Event) bool {
	switch ev.Key {
	case terminal.KeyEscape, terminal.KeyCtrlC:
		return false

	case terminal.KeySpace:
		d.acknowledgeLocked()
		return true

	case terminal.KeyRune:
		// handled below

	default:
		return true
	}

	if sig, ok := activityKeys[ev.Rune]; ok {
		if d.in.Activity != sig {
			d.in.Activity = sig
			d.publishLocked()
		}
		return true
	}

	switch ev.Rune {
	case 'q':
		return false
	case 'n':
		d.nudgeLocked()
	case 's':
		d.in.Presence.Asleep = !d.in.Presence.Asleep
		d.publishLocked()
	case 'f':
		d.toggleFaceLocked()
	case 't':
		d.status = !d.status
	}
	return true
}

// handleMouseLocked derives hover and drag-hover from pointer position.
// The hover region is the central block the avatar occupies
func (d *drivers) handleMouseLocked(ev terminal.Event) {
	hovered := d.overAvatarLocked(ev.MouseX, ev.MouseY)
	dragging := hovered && ev.Button != terminal.MouseBtnNone

	if hovered != d.in.Hovered || dragging != d.in.DragOver {
		d.in.Hovered = hovered
		d.in.DragOver = dragging
		d.publishLocked()
	}
}

func (d *drivers) overAvatarLocked(x, y int) bool {
	if d.width < 1 || d.height < 1 {
		return false
	}
	nx := (float64(x)/float64(d.width) - 0.5) * 2
	ny := (float64(y)/float64(d.height) - 0.5) * 2
	return nx*nx+ny*ny < 1
}

// nudgeLocked enqueues a notification: full intensity now, residual after
// the hold so the signal never fades out before acknowledgement
func (d *drivers) nudgeLocked() {
	d.in.Nudge.Counter++
	d.in.Nudge.Pending = true
	d.in.Nudge.Level = 1.0
	d.publishLocked()
	d.chime.PlayNudge()

	if d.nudgeToken != nil {
		d.nudgeToken.Cancel()
	}
	seq := d.in.Nudge.Counter
	d.nudgeToken = sched.After(parameter.NudgeHold, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.in.Nudge.Pending && d.in.Nudge.Counter == seq {
			d.in.Nudge.Level = parameter.NudgeResidual
			d.publishLocked()
		}
	})
}

func (d *drivers) acknowledgeLocked() {
	if !d.in.Nudge.Pending {
		return
	}
	d.in.Nudge.Pending = false
	d.in.Nudge.Level = 0
	if d.nudgeToken != nil {
		d.nudgeToken.Cancel()
		d.nudgeToken = nil
	}
	d.publishLocked()
}

func (d *drivers) toggleFaceLocked() {
	next := render.FaceFigure
	if d.host.Face() == render.FaceFigure {
		next = render.FaceOrb
	}
	if err := d.host.SetFace(next); err != nil {
		log.Printf("face switch: %v", err)
	}

	d.cfg.Face = d.host.Face().String()
	if d.cfgPath != "" {
		if err := config.Save(d.cfgPath, d.cfg); err != nil {
			log.Printf("config save: %v", err)
		}
	}
}

// samplePresence runs on the presence repeater. Publishing every sample
// keeps the idle-duration thresholds current without an input event
func (d *drivers) samplePresence() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.in.Presence.IdleFor = time.Since(d.lastInput)
	d.publishLocked()
}

// touchLocked records user input for presence tracking
func (d *drivers) touchLocked() {
	d.lastInput = time.Now()
	if d.in.Presence.IdleFor != 0 {
		d.in.Presence.IdleFor = 0
		d.publishLocked()
	}
}

var demoScript = []avatar.ActivitySignal{
	{Kind: avatar.ActivityIdle},
	{Kind: avatar.ActivityWorkingMain, Tool: avatar.ToolNone},
	{Kind: avatar.ActivityWorkingMain, Tool: avatar.ToolRead},
	{Kind: avatar.ActivityWorkingMain, Tool: avatar.ToolBash},
	{Kind: avatar.ActivityWorkingMain, Tool: avatar.ToolEdit},
	{Kind: avatar.ActivityWorkingMain, Tool: avatar.ToolWrite},
	{Kind: avatar.ActivityWorkingOther},
	{Kind: avatar.ActivityOverridden},
	{Kind: avatar.ActivityIdle},
}

// demoTick advances the scripted showcase. One nudge fires per cycle so
// the notification path gets exercised too
func (d *drivers) demoTick() {
	d.mu.Lock()
	defer d.mu.Unlock()

	step := d.demoStep % len(demoScript)
	d.demoStep++

	d.in.Activity = demoScript[step]
	if step == len(demoScript)-1 {
		d.nudgeLocked()
		return
	}
	if step == 0 {
		d.acknowledgeLocked()
	}
	d.publishLocked()
}

func (d *drivers) publish() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.publishLocked()
}

func (d *drivers) publishLocked() {
	d.store.Publish(avatar.Map(d.in))
}

func (d *drivers) statusVisible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// drawStatus paints one summary line along the bottom edge
func (d *drivers) drawStatus(frame *render.Frame, current avatar.Vector) {
	d.mu.Lock()
	in := d.in
	d.mu.Unlock()

	width, height := frame.Size()
	if width < 1 || height < 1 {
		return
	}

	activity := in.Activity.Kind.String()
	if in.Activity.Kind == avatar.ActivityWorkingMain {
		activity = in.Activity.Tool.String()
	}

	nudge := ""
	if in.Nudge.Pending {
		nudge = "  [nudge]"
	}
	text := fmt.Sprintf(" %s | %s | presence %.1f | speed %.2f%s ",
		d.host.Face(), activity, current.Presence, current.Speed, nudge)

	y := height - 1
	for i, r := range text {
		if i >= width {
			break
		}
		frame.SetRune(i, y, r, terminal.SlateGray, terminal.AttrDim)
	}
}
