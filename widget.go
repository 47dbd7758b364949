package mosaic

// Widget is the mandatory capability: a unit of content that can paint
// itself into the cell-buffer region it was allotted. Everything else a
// widget can do is expressed through the optional interfaces below,
// discovered by type assertion at dispatch time.
type Widget interface {
	// Render paints the widget into its region. The region's origin is the
	// widget's local (0,0); its size is the rect the solver assigned.
	Render(r *Region)
}

// KeyHandler is implemented by widgets that accept keyboard input while
// focused. Returning true consumes the event and stops propagation.
type KeyHandler interface {
	HandleKey(e KeyEvent) bool
}

// MouseHandler is implemented by widgets that accept mouse input. The
// event's position is already translated into the widget's local coordinate
// space. Returning true consumes the event.
type MouseHandler interface {
	HandleMouse(e MouseEvent) bool
}

// Focusable is implemented by widgets that can hold keyboard focus.
// Widgets that do not implement it (or return false) are skipped by the
// focus manager and rejected by Session.Focus.
type Focusable interface {
	Focusable() bool
}

// CursorProvider is implemented by widgets that want the terminal cursor
// shown while they are focused, typically text editors reporting a caret.
// The position is widget-local; ok=false hides the cursor.
type CursorProvider interface {
	CursorPosition() (p Point, ok bool)
}

// FocusListener receives focus-gained and blur notifications as focus moves.
type FocusListener interface {
	FocusGained()
	FocusLost()
}

// HoverListener receives synthetic enter/leave notifications as the
// hit-tested widget changes between consecutive mouse moves.
type HoverListener interface {
	MouseEnter()
	MouseLeave()
}

// isFocusable reports whether a widget opts into focus.
func isFocusable(w Widget) bool {
	f, ok := w.(Focusable)
	return ok && f.Focusable()
}
