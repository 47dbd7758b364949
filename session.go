package mosaic

// Config holds session behavior toggles.
type Config struct {
	// FocusFollowsHover moves focus to whichever focusable widget the mouse
	// is over, without requiring a click.
	FocusFollowsHover bool
}

// Session is one independent UI instance: it owns the layout tree, the
// widget registry, the layout cache and the focus/hover state, and is the
// single entry point for event dispatch. Sessions are not safe for
// concurrent use; the expected host loop is poll → Dispatch → Render,
// one event at a time.
type Session struct {
	tree     *Tree
	registry *Registry
	cache    Cache
	bounds   Rect
	config   Config

	globals []GlobalHandler

	// FocusState: the focused widget, if any. The zero Handle means none.
	focus Handle

	// HoverState: last hit-tested widget for mouse moves.
	hover      Handle
	hoverLocal Point

	// Click tracking: the widget that received the last MouseDown. Cleared
	// when the hover target changes, so a down and up only form a click
	// when nothing moved off the widget in between.
	pressed Handle
}

// NewSession creates a session whose root splits along axis, laid out
// against a width x height root rectangle.
func NewSession(axis Axis, width, height int, config Config) *Session {
	return &Session{
		tree:     NewTree(axis),
		registry: NewRegistry(),
		bounds:   NewRect(0, 0, width, height),
		config:   config,
	}
}

// Tree returns the layout tree for structural edits. Prefer Session.Remove
// over Tree.Remove so widget handles are released and focus is repaired.
func (s *Session) Tree() *Tree {
	return s.tree
}

// Insert registers a widget and returns its handle.
func (s *Session) Insert(w Widget) Handle {
	return s.registry.Insert(w)
}

// Widget returns the widget behind a handle.
func (s *Session) Widget(h Handle) (Widget, error) {
	return s.registry.Get(h)
}

// Bounds returns the current root rectangle.
func (s *Session) Bounds() Rect {
	return s.bounds
}

// Resize updates the root rectangle. The next layout query re-solves.
func (s *Session) Resize(width, height int) {
	s.bounds = NewRect(0, 0, width, height)
}

// Layout returns the current rectangle for every node, re-solving only when
// the tree generation or root rect changed since the last query.
func (s *Session) Layout() map[NodeID]Rect {
	return s.cache.GetOrSolve(s.tree, s.bounds)
}

// HandleGlobal registers a process-wide handler that sees events before
// focus- or position-based routing, in registration order.
func (s *Session) HandleGlobal(fn GlobalHandler) {
	s.globals = append(s.globals, fn)
}

// Remove detaches a subtree, releases every widget handle it held, and
// repairs focus: if the focused widget was removed, focus advances to the
// next tab-order entry (or none when the tab order is empty).
func (s *Session) Remove(id NodeID) error {
	var orderBefore []Handle
	var focusIdx = -1
	if s.focus.Valid() {
		orderBefore = s.TabOrder()
		for i, h := range orderBefore {
			if h == s.focus {
				focusIdx = i
				break
			}
		}
	}

	released, err := s.tree.Remove(id)
	if err != nil {
		return err
	}

	lostFocus := false
	for _, h := range released {
		if h == s.focus {
			lostFocus = true
			s.focus = Handle{}
		}
		if h == s.hover {
			s.hover = Handle{}
		}
		if h == s.pressed {
			s.pressed = Handle{}
		}
		if err := s.registry.Remove(h); err != nil {
			return err
		}
	}

	if lostFocus && focusIdx >= 0 {
		for i := 1; i <= len(orderBefore); i++ {
			cand := orderBefore[(focusIdx+i)%len(orderBefore)]
			if _, ok := s.tree.FindLeaf(cand); !ok {
				continue
			}
			if _, err := s.registry.Get(cand); err != nil {
				continue
			}
			s.setFocus(cand)
			break
		}
	}
	return nil
}

// Dispatch routes one decoded input event and reports whether anything
// consumed it. Handlers run synchronously; throughput is bounded by handler
// latency. Unconsumed and unrouted events are dropped, not errors.
func (s *Session) Dispatch(e Event) (bool, error) {
	switch ev := e.(type) {
	case ResizeEvent:
		s.Resize(ev.Width, ev.Height)
		return true, nil
	case QuitEvent:
		// An ordinary event: the host loop observes it and stops polling.
		return true, nil
	case KeyEvent:
		return s.dispatchKey(ev), nil
	case MouseEvent:
		return s.dispatchMouse(ev), nil
	}
	return false, nil
}

func (s *Session) dispatchKey(ev KeyEvent) bool {
	for _, g := range s.globals {
		if g(ev) {
			return true
		}
	}
	if !s.focus.Valid() {
		return false
	}
	w, err := s.registry.Get(s.focus)
	if err != nil {
		// Stale focus from an out-of-band removal; drop it.
		s.focus = Handle{}
		return false
	}
	if kh, ok := w.(KeyHandler); ok {
		return kh.HandleKey(ev)
	}
	return false
}

func (s *Session) dispatchMouse(ev MouseEvent) bool {
	for _, g := range s.globals {
		if g(ev) {
			return true
		}
	}

	rects := s.Layout()
	target, rect, hit := s.hitTest(rects, ev.Pos)

	var th Handle
	if hit {
		th, _ = s.tree.Widget(target)
	}

	if ev.Kind == MouseMove {
		s.updateHover(th, ev.Pos.Sub(Point{X: rect.X, Y: rect.Y}))
	}

	if !hit {
		// Clicks and moves outside any widget are dropped silently; a down
		// out in the void also cancels any pending click.
		if ev.Kind == MouseDown || ev.Kind == MouseUp {
			s.pressed = Handle{}
		}
		return false
	}

	w, err := s.registry.Get(th)
	if err != nil {
		return false
	}

	local := ev.Pos.Sub(Point{X: rect.X, Y: rect.Y})
	consumed := false
	if mh, ok := w.(MouseHandler); ok {
		consumed = mh.HandleMouse(MouseEvent{Kind: ev.Kind, Button: ev.Button, Pos: local, Mods: ev.Mods})
	}

	switch ev.Kind {
	case MouseDown:
		s.pressed = th
	case MouseUp:
		if s.pressed == th && th.Valid() {
			if mh, ok := w.(MouseHandler); ok {
				if mh.HandleMouse(MouseEvent{Kind: MouseClick, Button: ev.Button, Pos: local, Mods: ev.Mods}) {
					consumed = true
				}
			}
			// Click-to-focus.
			if isFocusable(w) && th != s.focus {
				s.setFocus(th)
			}
		}
		s.pressed = Handle{}
	case MouseMove:
		if s.config.FocusFollowsHover && th != s.focus && isFocusable(w) {
			s.setFocus(th)
		}
	}
	return consumed
}

// updateHover emits enter/leave notifications when the hit-tested widget
// changes between two consecutive move events.
func (s *Session) updateHover(th Handle, local Point) {
	if th == s.hover {
		s.hoverLocal = local
		return
	}
	if s.hover.Valid() {
		if old, err := s.registry.Get(s.hover); err == nil {
			if hl, ok := old.(HoverListener); ok {
				hl.MouseLeave()
			}
		}
	}
	if th.Valid() {
		if next, err := s.registry.Get(th); err == nil {
			if hl, ok := next.(HoverListener); ok {
				hl.MouseEnter()
			}
		}
	}
	s.hover = th
	s.hoverLocal = local
	// The hit target moved, so a pending down can no longer become a click.
	s.pressed = Handle{}
}

// Hovered returns the currently hovered widget and the last local position
// delivered to it.
func (s *Session) Hovered() (Handle, Point, bool) {
	return s.hover, s.hoverLocal, s.hover.Valid()
}

// hitTest resolves an absolute position to the topmost leaf containing it,
// walking nodes in reverse paint order: floats by descending z first, then
// anchored children. Recursion into the first containing child yields the
// smallest rectangle that contains the position.
func (s *Session) hitTest(rects map[NodeID]Rect, p Point) (NodeID, Rect, bool) {
	return s.hitNode(s.tree.root, rects, p)
}

func (s *Session) hitNode(id NodeID, rects map[NodeID]Rect, p Point) (NodeID, Rect, bool) {
	r, ok := rects[id]
	if !ok || !r.Contains(p) {
		return InvalidNode, Rect{}, false
	}
	n := &s.tree.nodes[id]
	switch n.kind {
	case nodeLeaf:
		return id, r, true
	case nodeFloat:
		if len(n.children) > 0 {
			return s.hitNode(n.children[0], rects, p)
		}
		return InvalidNode, Rect{}, false
	}
	ordered := s.tree.paintOrder(n.children)
	for i := len(ordered) - 1; i >= 0; i-- {
		if id, r, ok := s.hitNode(ordered[i], rects, p); ok {
			return id, r, ok
		}
	}
	return InvalidNode, Rect{}, false
}
