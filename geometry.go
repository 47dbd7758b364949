package mosaic

// Rect is an absolute terminal-cell rectangle. Coordinates are cells,
// origin top-left, width and height never negative.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle, clamping negative dimensions to zero.
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Area returns the number of cells the rectangle covers.
func (r Rect) Area() int {
	return r.W * r.H
}

// Center returns the rectangle's center point, rounding down.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersect returns the overlap of the two rectangles. Non-overlapping
// rectangles produce a zero-size result.
func (r Rect) Intersect(o Rect) Rect {
	x := r.X
	if o.X > x {
		x = o.X
	}
	y := r.Y
	if o.Y > y {
		y = o.Y
	}
	x2 := r.X + r.W
	if o.X+o.W < x2 {
		x2 = o.X + o.W
	}
	y2 := r.Y + r.H
	if o.Y+o.H < y2 {
		y2 = o.Y + o.H
	}
	return NewRect(x, y, x2-x, y2-y)
}

// Clamp returns the rectangle constrained to fit inside bounds.
// Position is shifted first, then size is trimmed if it still overflows.
func (r Rect) Clamp(bounds Rect) Rect {
	if r.X < bounds.X {
		r.X = bounds.X
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
	}
	if r.X+r.W > bounds.X+bounds.W {
		r.X = bounds.X + bounds.W - r.W
		if r.X < bounds.X {
			r.X = bounds.X
			r.W = bounds.W
		}
	}
	if r.Y+r.H > bounds.Y+bounds.H {
		r.Y = bounds.Y + bounds.H - r.H
		if r.Y < bounds.Y {
			r.Y = bounds.Y
			r.H = bounds.H
		}
	}
	return r
}

// Point is a position in cells. Absolute or widget-local depending on context.
type Point struct {
	X, Y int
}

// Sub returns the point translated by -origin. Used to convert an absolute
// position into a widget's local coordinate space.
func (p Point) Sub(origin Point) Point {
	return Point{X: p.X - origin.X, Y: p.Y - origin.Y}
}

// Axis is the direction a split divides its space along.
type Axis uint8

const (
	// Horizontal lays children out left to right.
	Horizontal Axis = iota
	// Vertical lays children out top to bottom.
	Vertical
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Direction identifies one of the four movement directions for
// directional focus switching.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "right"
}
