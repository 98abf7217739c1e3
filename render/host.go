package render

import (
	"fmt"

	"github.com/lixenwraith/familiar/avatar"
	"github.com/lixenwraith/familiar/parameter"
)

// Host owns the current vector and the active backend. Once per display
// tick it reads the latest target snapshot, advances the current vector,
// and dispatches rendering. Only the render loop calls into it
type Host struct {
	store    *avatar.Store
	current  avatar.Vector
	backends [2]Backend
	ready    [2]bool
	active   Face
	enabled  bool
}

// NewHost wires the target store to the two backends. Neither backend is
// initialized yet; SetFace performs initialization
func NewHost(store *avatar.Store, orb, figure Backend) *Host {
	return &Host{
		store:    store,
		current:  avatar.Default(),
		backends: [2]Backend{FaceOrb: orb, FaceFigure: figure},
	}
}

// SetFace activates a backend, initializing it on first use. On init
// failure it falls back to the alternate backend; if both fail the host
// renders transparent frames. A failed backend stays disabled until
// explicitly reselected
func (h *Host) SetFace(face Face) error {
	if err := h.activate(face); err == nil {
		return nil
	} else if fallbackErr := h.activate(face.other()); fallbackErr != nil {
		h.enabled = false
		return fmt.Errorf("backend %s unavailable: %w (fallback %s also failed: %v)",
			face, err, face.other(), fallbackErr)
	} else {
		return fmt.Errorf("backend %s unavailable, using %s: %w", face, face.other(), err)
	}
}

func (h *Host) activate(face Face) error {
	b := h.backends[face]
	if b == nil {
		return fmt.Errorf("no %s backend registered", face)
	}
	if !h.ready[face] {
		if err := b.Init(); err != nil {
			return err
		}
		h.ready[face] = true
	}
	h.active = face
	h.enabled = true
	return nil
}

// Face returns the active backend identity
func (h *Host) Face() Face {
	return h.active
}

// Current returns the smoothed vector as of the last tick
func (h *Host) Current() avatar.Vector {
	return h.current
}

// Tick advances the current vector toward the latest target and renders one
// frame. Never blocks; with no usable backend the frame stays transparent
func (h *Host) Tick(ctx Context, frame *Frame) {
	h.current = avatar.Advance(h.current, h.store.Target(), parameter.BaseFactor)

	frame.Clear()
	if !h.enabled || !h.ready[h.active] {
		return
	}
	h.backends[h.active].Render(h.current, ctx, frame)
}

// Teardown releases every initialized backend
func (h *Host) Teardown() {
	for face, b := range h.backends {
		if b != nil && h.ready[face] {
			b.Teardown()
			h.ready[face] = false
		}
	}
	h.enabled = false
}

func (f Face) other() Face {
	if f == FaceOrb {
		return FaceFigure
	}
	return FaceOrb
}
