package render

import (
	"github.com/lixenwraith/mandelbrots-in-heaven/terminal"
)

// Buffer is a frame of terminal cells sized to the screen
// Uses []terminal.Cell directly so Flush hands the slice over without copying
type Buffer struct {
	cells  []terminal.Cell
	width  int
	height int
}

var blankCell = terminal.Cell{Rune: ' ', Fg: terminal.RGBWhite, Bg: terminal.RGBBlack}

// NewBuffer creates a buffer with the specified dimensions
// Non-positive dimensions yield an empty buffer
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = blankCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns width and height in cells
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Cells exposes the row-major backing slice
func (b *Buffer) Cells() []terminal.Cell {
	return b.cells
}

// Cell returns the cell at (x, y); out of bounds returns the zero cell
func (b *Buffer) Cell(x, y int) terminal.Cell {
	if !b.inBounds(x, y) {
		return terminal.Cell{}
	}
	return b.cells[y*b.width+x]
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *Buffer) SetWithBg(x, y int, r rune, fg, bg terminal.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Bg = bg
	dst.Attrs = terminal.AttrNone
}

// SetBgOnly updates the background color while preserving rune and foreground
func (b *Buffer) SetBgOnly(x, y int, bg terminal.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// Flush writes the buffer to the terminal
func (b *Buffer) Flush(term terminal.Terminal) {
	term.Flush(b.cells, b.width, b.height)
}
