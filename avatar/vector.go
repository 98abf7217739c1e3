package avatar

import (
	"sync/atomic"

	"github.com/lixenwraith/familiar/vmath"
)

// Vector is the full animation parameter set. Two instances exist: the
// target (published wholesale by the signal mapper's caller) and the
// current (advanced toward the target once per render tick).
type Vector struct {
	Speed         float64 // animation clock multiplier, >= 0
	State         float64 // activity axis position, [0, 3]
	HoverBoost    float64 // pointer-hover emphasis, [1, 1.5]
	DropHighlight float64 // drag affordance intensity, [0, 1]
	Presence      float64 // attentiveness brightness, [0, 1]
	Notification  float64 // pending-nudge intensity, [0, 1]
}

// Default returns the vector both instances start from at window creation
func Default() Vector {
	return Vector{
		Speed:         0,
		State:         0,
		HoverBoost:    1,
		DropHighlight: 0,
		Presence:      1,
		Notification:  0,
	}
}

// Clamp snaps every field to its valid bounds
func (v Vector) Clamp() Vector {
	if v.Speed < 0 {
		v.Speed = 0
	}
	v.State = vmath.Clamp(v.State, 0, 3)
	v.HoverBoost = vmath.Clamp(v.HoverBoost, 1, 1.5)
	v.DropHighlight = vmath.Clamp01(v.DropHighlight)
	v.Presence = vmath.Clamp01(v.Presence)
	v.Notification = vmath.Clamp01(v.Notification)
	return v
}

// Store publishes target vectors with whole-struct atomic replacement so the
// render loop never observes a torn vector. Signal producers are the only
// writers; the render loop is the only reader.
type Store struct {
	target atomic.Pointer[Vector]
}

// NewStore creates a store holding the default vector
func NewStore() *Store {
	s := &Store{}
	v := Default()
	s.target.Store(&v)
	return s
}

// Publish replaces the target vector, clamping fields to their bounds
func (s *Store) Publish(v Vector) {
	v = v.Clamp()
	s.target.Store(&v)
}

// Target returns the latest published snapshot by value
func (s *Store) Target() Vector {
	return *s.target.Load()
}
