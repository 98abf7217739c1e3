package render

import (
	"github.com/lixenwraith/familiar/avatar"
)

// Context provides per-frame state to backends, passed by value
type Context struct {
	Width  int
	Height int
	Delta  float64 // seconds per tick, fixed cadence
}

// Face identifies one of the interchangeable avatar renderers
type Face uint8

const (
	FaceOrb Face = iota
	FaceFigure
)

func (f Face) String() string {
	if f == FaceFigure {
		return "figure"
	}
	return "orb"
}

// ParseFace maps a persisted preference string to a Face
func ParseFace(s string) Face {
	if s == "figure" {
		return FaceFigure
	}
	return FaceOrb
}

// Backend is a renderer consuming the current parameter vector. Backends
// keep their own animation clocks so switching faces never resets motion
type Backend interface {
	// Init acquires rendering resources. An error disables the backend
	// until it is explicitly reselected
	Init() error

	// Render paints one frame from the current vector. Must not block;
	// on any internal unavailability it leaves the frame transparent
	Render(current avatar.Vector, ctx Context, frame *Frame)

	// Teardown releases backend resources
	Teardown()
}
