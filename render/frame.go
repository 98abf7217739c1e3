// Package render owns the per-tick frame pipeline: the cell frame buffer,
// the backend contract both avatar renderers implement, and the host that
// smooths the parameter vector and dispatches to the active backend.
package render

import (
	"github.com/lixenwraith/familiar/terminal"
)

// Frame is a row-major cell buffer one backend paints per tick
type Frame struct {
	cells  []terminal.Cell
	width  int
	height int
}

// NewFrame creates a frame with the specified dimensions
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Resize adjusts dimensions, reallocating only when capacity is insufficient
func (f *Frame) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(f.cells) < size {
		f.cells = make([]terminal.Cell, size)
	} else {
		f.cells = f.cells[:size]
	}
	f.width = width
	f.height = height
	f.Clear()
}

// Clear resets every cell to a transparent black cell
func (f *Frame) Clear() {
	if len(f.cells) == 0 {
		return
	}
	f.cells[0] = terminal.Cell{Rune: ' ', Bg: terminal.Black}
	for filled := 1; filled < len(f.cells); filled *= 2 {
		copy(f.cells[filled:], f.cells[:filled])
	}
}

// Size returns frame dimensions
func (f *Frame) Size() (int, int) {
	return f.width, f.height
}

// Cells exposes the raw buffer for flushing to the terminal
func (f *Frame) Cells() []terminal.Cell {
	return f.cells
}

// At returns the cell at (x, y); zero cell out of bounds
func (f *Frame) At(x, y int) terminal.Cell {
	if !f.inBounds(x, y) {
		return terminal.Cell{}
	}
	return f.cells[y*f.width+x]
}

// Set overwrites the cell at (x, y); out of bounds is a no-op
func (f *Frame) Set(x, y int, c terminal.Cell) {
	if !f.inBounds(x, y) {
		return
	}
	f.cells[y*f.width+x] = c
}

// AddBg additively blends a color into the cell background, for glow passes
func (f *Frame) AddBg(x, y int, c terminal.RGB) {
	if !f.inBounds(x, y) {
		return
	}
	idx := y*f.width + x
	f.cells[idx].Bg = f.cells[idx].Bg.Add(c)
}

// SetRune places a glyph with foreground color and attributes, keeping the
// existing background
func (f *Frame) SetRune(x, y int, r rune, fg terminal.RGB, attrs terminal.Attr) {
	if !f.inBounds(x, y) {
		return
	}
	idx := y*f.width + x
	f.cells[idx].Rune = r
	f.cells[idx].Fg = fg
	f.cells[idx].Attrs = attrs
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}
