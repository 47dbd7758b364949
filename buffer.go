package mosaic

import "github.com/mattn/go-runewidth"

// Buffer is a 2D grid of cells representing a drawable surface. The core
// never writes to the terminal itself: a rendering backend (Screen here, or
// the bubbletea driver's view) diffs and flushes buffers to the device.
type Buffer struct {
	cells  []Cell
	width  int
	height int

	dirtyRows []bool
}

// NewBuffer creates a buffer with the given dimensions, filled with empty cells.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		cells:     make([]Cell, width*height),
		width:     width,
		height:    height,
		dirtyRows: make([]bool, height),
	}
	empty := EmptyCell()
	for i := range b.cells {
		b.cells[i] = empty
	}
	return b
}

// Width returns the buffer width.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height.
func (b *Buffer) Height() int {
	return b.height
}

// InBounds returns true if the given coordinates are within the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) index(x, y int) int {
	return y*b.width + x
}

// Get returns the cell at the given coordinates, or an empty cell when out
// of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[b.index(x, y)]
}

// Set sets the cell at the given coordinates. Out-of-bounds writes are
// dropped. Border characters merge with existing borders so adjacent pane
// edges form junctions.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	idx := b.index(x, y)
	if merged, ok := mergeBorders(b.cells[idx].Rune, c.Rune); ok {
		c.Rune = merged
	}
	b.cells[idx] = c
	b.dirtyRows[y] = true
}

// WriteString writes a string starting at (x, y). Wide runes occupy their
// display width, with a zero-rune placeholder cell in the trailing column.
// Returns the number of columns consumed.
func (b *Buffer) WriteString(x, y int, s string, style Style) int {
	written := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if !b.InBounds(x, y) {
			break
		}
		b.Set(x, y, NewCell(r, style))
		if rw == 2 && b.InBounds(x+1, y) {
			b.Set(x+1, y, Cell{Rune: 0, Style: style})
		}
		x += rw
		written += rw
	}
	return written
}

// Fill fills the entire buffer with the given cell.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
	for y := range b.dirtyRows {
		b.dirtyRows[y] = true
	}
}

// Clear clears the buffer to empty cells with default style.
func (b *Buffer) Clear() {
	b.Fill(EmptyCell())
}

// Resize reallocates the buffer to new dimensions, discarding contents.
func (b *Buffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}
	*b = *NewBuffer(width, height)
	for y := range b.dirtyRows {
		b.dirtyRows[y] = true
	}
}

// RowDirty reports whether the row has been written since ClearDirtyFlags.
func (b *Buffer) RowDirty(y int) bool {
	return y >= 0 && y < len(b.dirtyRows) && b.dirtyRows[y]
}

// ClearDirtyFlags resets dirty row tracking, typically after a flush.
func (b *Buffer) ClearDirtyFlags() {
	for y := range b.dirtyRows {
		b.dirtyRows[y] = false
	}
}

// Region returns a view into the rectangular region of the buffer described
// by rect, clipped to the buffer. The view shares cells with the buffer;
// writes through it are clipped to the region. An overhanging rect is
// intersected with the buffer, never relocated: the part inside keeps its
// position, the part outside is unreachable.
func (b *Buffer) Region(rect Rect) *Region {
	rect = rect.Intersect(Rect{X: 0, Y: 0, W: b.width, H: b.height})
	return &Region{buf: b, rect: rect}
}

// Region is a mutable view into a rectangular part of a Buffer, addressed
// in local coordinates with origin (0,0). It is the surface widgets render
// into: a widget can never write outside the rect the solver assigned it.
type Region struct {
	buf  *Buffer
	rect Rect
}

// Width returns the region width.
func (r *Region) Width() int {
	return r.rect.W
}

// Height returns the region height.
func (r *Region) Height() int {
	return r.rect.H
}

// InBounds returns true if the local coordinates are within the region.
func (r *Region) InBounds(x, y int) bool {
	return x >= 0 && x < r.rect.W && y >= 0 && y < r.rect.H
}

// Get returns the cell at the given local coordinates.
func (r *Region) Get(x, y int) Cell {
	if !r.InBounds(x, y) {
		return EmptyCell()
	}
	return r.buf.Get(r.rect.X+x, r.rect.Y+y)
}

// Set sets the cell at the given local coordinates.
func (r *Region) Set(x, y int, c Cell) {
	if !r.InBounds(x, y) {
		return
	}
	r.buf.Set(r.rect.X+x, r.rect.Y+y, c)
}

// Fill fills the region with the given cell.
func (r *Region) Fill(c Cell) {
	for y := 0; y < r.rect.H; y++ {
		for x := 0; x < r.rect.W; x++ {
			r.Set(x, y, c)
		}
	}
}

// Clear clears the region to empty cells.
func (r *Region) Clear() {
	r.Fill(EmptyCell())
}

// WriteString writes a string at the given local coordinates, clipped to
// the region. Returns the number of columns consumed.
func (r *Region) WriteString(x, y int, s string, style Style) int {
	written := 0
	for _, ch := range s {
		rw := runewidth.RuneWidth(ch)
		if rw == 0 {
			continue
		}
		if !r.InBounds(x, y) {
			break
		}
		r.Set(x, y, NewCell(ch, style))
		if rw == 2 && r.InBounds(x+1, y) {
			r.Set(x+1, y, Cell{Rune: 0, Style: style})
		}
		x += rw
		written += rw
	}
	return written
}

// DrawBorder draws a border around the region's edge.
func (r *Region) DrawBorder(border BorderStyle, style Style) {
	w, h := r.rect.W, r.rect.H
	if w < 2 || h < 2 {
		return
	}
	r.Set(0, 0, NewCell(border.TopLeft, style))
	r.Set(w-1, 0, NewCell(border.TopRight, style))
	r.Set(0, h-1, NewCell(border.BottomLeft, style))
	r.Set(w-1, h-1, NewCell(border.BottomRight, style))
	for i := 1; i < w-1; i++ {
		r.Set(i, 0, NewCell(border.Horizontal, style))
		r.Set(i, h-1, NewCell(border.Horizontal, style))
	}
	for i := 1; i < h-1; i++ {
		r.Set(0, i, NewCell(border.Vertical, style))
		r.Set(w-1, i, NewCell(border.Vertical, style))
	}
}

// Box drawing characters for borders.
const (
	BoxHorizontal         = '─'
	BoxVertical           = '│'
	BoxTopLeft            = '┌'
	BoxTopRight           = '┐'
	BoxBottomLeft         = '└'
	BoxBottomRight        = '┘'
	BoxRoundedTopLeft     = '╭'
	BoxRoundedTopRight    = '╮'
	BoxRoundedBottomLeft  = '╰'
	BoxRoundedBottomRight = '╯'
	BoxTeeDown            = '┬'
	BoxTeeUp              = '┴'
	BoxTeeRight           = '├'
	BoxTeeLeft            = '┤'
	BoxCross              = '┼'
)

// borderEdges maps border runes to which edges they connect.
// Bits: 1=top, 2=right, 4=bottom, 8=left.
var borderEdges = map[rune]uint8{
	BoxHorizontal:         0b1010,
	BoxVertical:           0b0101,
	BoxTopLeft:            0b0110,
	BoxTopRight:           0b1100,
	BoxBottomLeft:         0b0011,
	BoxBottomRight:        0b1001,
	BoxTeeDown:            0b1110,
	BoxTeeUp:              0b1011,
	BoxTeeRight:           0b0111,
	BoxTeeLeft:            0b1101,
	BoxCross:              0b1111,
	BoxRoundedTopLeft:     0b0110,
	BoxRoundedTopRight:    0b1100,
	BoxRoundedBottomLeft:  0b0011,
	BoxRoundedBottomRight: 0b1001,
}

var edgesToBorder = map[uint8]rune{
	0b1010: BoxHorizontal,
	0b0101: BoxVertical,
	0b0110: BoxTopLeft,
	0b1100: BoxTopRight,
	0b0011: BoxBottomLeft,
	0b1001: BoxBottomRight,
	0b1110: BoxTeeDown,
	0b1011: BoxTeeUp,
	0b0111: BoxTeeRight,
	0b1101: BoxTeeLeft,
	0b1111: BoxCross,
}

// mergeBorders combines two border characters into one junction rune.
// Returns the merged rune and true when both were border characters that
// form a known junction.
func mergeBorders(existing, next rune) (rune, bool) {
	existingEdges, ok1 := borderEdges[existing]
	newEdges, ok2 := borderEdges[next]
	if !ok1 || !ok2 {
		return next, false
	}
	if result, ok := edgesToBorder[existingEdges|newEdges]; ok {
		return result, true
	}
	return next, false
}

// BorderStyle defines the characters used for drawing borders.
type BorderStyle struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// Standard border styles.
var (
	BorderSingle = BorderStyle{
		Horizontal:  BoxHorizontal,
		Vertical:    BoxVertical,
		TopLeft:     BoxTopLeft,
		TopRight:    BoxTopRight,
		BottomLeft:  BoxBottomLeft,
		BottomRight: BoxBottomRight,
	}
	BorderRounded = BorderStyle{
		Horizontal:  BoxHorizontal,
		Vertical:    BoxVertical,
		TopLeft:     BoxRoundedTopLeft,
		TopRight:    BoxRoundedTopRight,
		BottomLeft:  BoxRoundedBottomLeft,
		BottomRight: BoxRoundedBottomRight,
	}
)
