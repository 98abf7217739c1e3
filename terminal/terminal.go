package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << 0
	AttrDim  Attr = 1 << 1
)

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Terminal provides low-level screen access for cell-buffer rendering
type Terminal interface {
	// Init enters the alternate screen, hides the cursor, enables mouse reporting
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// ColorMode returns the color capability in effect
	ColorMode() ColorMode

	// Flush writes a row-major cell buffer (cells[y*width+x]) to the screen
	Flush(cells []Cell, width, height int)

	// Sync forces a full redraw
	Sync()

	// PollEvent blocks until the next input or synthetic event
	PollEvent() Event

	// PostEvent injects a synthetic event, dropped if the queue is full
	PostEvent(Event)
}

// New creates a tcell-backed terminal with the given color mode
func New(mode ColorMode) Terminal {
	return &tcellTerm{
		mode:        mode,
		syntheticCh: make(chan Event, 64),
		screenCh:    make(chan Event, 64),
	}
}

type tcellTerm struct {
	screen tcell.Screen
	mode   ColorMode

	syntheticCh chan Event
	screenCh    chan Event
	stopCh      chan struct{}

	mu        sync.Mutex
	finalized bool
}

func (t *tcellTerm) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal screen unavailable: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init failed: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	t.screen = screen
	t.stopCh = make(chan struct{})
	go t.pumpEvents()
	return nil
}

func (t *tcellTerm) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finalized || t.screen == nil {
		return
	}
	t.finalized = true
	close(t.stopCh)
	t.screen.Fini()
}

func (t *tcellTerm) Size() (int, int) {
	if t.screen == nil {
		return 0, 0
	}
	return t.screen.Size()
}

func (t *tcellTerm) ColorMode() ColorMode { return t.mode }

func (t *tcellTerm) Flush(cells []Cell, width, height int) {
	if t.screen == nil {
		return
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := cells[y*width+x]
			style := tcell.StyleDefault.
				Foreground(t.color(c.Fg)).
				Background(t.color(c.Bg))
			if c.Attrs&AttrBold != 0 {
				style = style.Bold(true)
			}
			if c.Attrs&AttrDim != 0 {
				style = style.Dim(true)
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, style)
		}
	}
	t.screen.Show()
}

// color maps RGB through the active color mode
func (t *tcellTerm) color(c RGB) tcell.Color {
	if t.mode == ColorMode256 {
		return tcell.PaletteColor(int(Index256(c)))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *tcellTerm) Sync() {
	if t.screen != nil {
		t.screen.Sync()
	}
}

// pumpEvents forwards tcell events into the merged event channel
func (t *tcellTerm) pumpEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			select {
			case t.screenCh <- Event{Type: EventClosed}:
			case <-t.stopCh:
			}
			return
		}
		select {
		case t.screenCh <- translate(ev):
		case <-t.stopCh:
			return
		}
	}
}

func (t *tcellTerm) PollEvent() Event {
	select {
	case ev := <-t.syntheticCh:
		return ev
	case ev := <-t.screenCh:
		return ev
	}
}

func (t *tcellTerm) PostEvent(ev Event) {
	select {
	case t.syntheticCh <- ev:
	default:
	}
}

// translate converts a tcell event to the package event type
func translate(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		out := Event{Type: EventKey}
		switch e.Key() {
		case tcell.KeyRune:
			out.Key = KeyRune
			out.Rune = e.Rune()
			if out.Rune == ' ' {
				out.Key = KeySpace
			}
		case tcell.KeyEscape:
			out.Key = KeyEscape
		case tcell.KeyEnter:
			out.Key = KeyEnter
		case tcell.KeyTab:
			out.Key = KeyTab
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			out.Key = KeyBackspace
		case tcell.KeyUp:
			out.Key = KeyUp
		case tcell.KeyDown:
			out.Key = KeyDown
		case tcell.KeyLeft:
			out.Key = KeyLeft
		case tcell.KeyRight:
			out.Key = KeyRight
		case tcell.KeyCtrlC:
			out.Key = KeyCtrlC
		case tcell.KeyCtrlL:
			out.Key = KeyCtrlL
		default:
			out.Key = KeyNone
		}
		return out
	case *tcell.EventMouse:
		x, y := e.Position()
		out := Event{Type: EventMouse, MouseX: x, MouseY: y}
		switch {
		case e.Buttons()&tcell.Button1 != 0:
			out.Button = MouseBtnLeft
		case e.Buttons()&tcell.Button2 != 0:
			out.Button = MouseBtnMiddle
		case e.Buttons()&tcell.Button3 != 0:
			out.Button = MouseBtnRight
		}
		return out
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventError:
		return Event{Type: EventError, Err: e}
	default:
		return Event{Type: EventNone}
	}
}

// EmergencyReset writes raw escape sequences to restore a sane terminal after
// a crash, bypassing any screen state
func EmergencyReset(w io.Writer) {
	// Show cursor, reset attributes, leave alternate screen, disable mouse
	fmt.Fprint(w, "\x1b[?25h\x1b[0m\x1b[?1049l\x1b[?1003l\x1b[?1006l")
}
