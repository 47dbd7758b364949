package mosaic

import (
	"errors"
	"fmt"
)

// ErrNotFocusable is returned when focus is requested on a widget whose
// capability set excludes focus.
var ErrNotFocusable = errors.New("widget is not focusable")

// TabOrder returns the focusable widgets in depth-first leaf order of the
// current tree. This is the sequence FocusNext and FocusPrev cycle through.
func (s *Session) TabOrder() []Handle {
	var order []Handle
	for _, id := range s.tree.Leaves() {
		h, err := s.tree.Widget(id)
		if err != nil {
			continue
		}
		w, err := s.registry.Get(h)
		if err != nil {
			continue
		}
		if isFocusable(w) {
			order = append(order, h)
		}
	}
	return order
}

// Focused returns the focused widget, if any.
func (s *Session) Focused() (Handle, bool) {
	return s.focus, s.focus.Valid()
}

// Focus sets focus directly. It fails with ErrInvalidHandle for stale
// handles and ErrNotFocusable when the widget does not accept focus.
func (s *Session) Focus(h Handle) error {
	w, err := s.registry.Get(h)
	if err != nil {
		return err
	}
	if !isFocusable(w) {
		return fmt.Errorf("focus rejected: %w", ErrNotFocusable)
	}
	if h != s.focus {
		s.setFocus(h)
	}
	return nil
}

// Blur clears focus, notifying the previously focused widget.
func (s *Session) Blur() {
	s.setFocus(Handle{})
}

// setFocus swaps focus and emits blur / focus-gained notifications.
// h must already be validated (or the zero Handle to clear).
func (s *Session) setFocus(h Handle) {
	if prev := s.focus; prev.Valid() {
		if w, err := s.registry.Get(prev); err == nil {
			if fl, ok := w.(FocusListener); ok {
				fl.FocusLost()
			}
		}
	}
	s.focus = h
	if h.Valid() {
		if w, err := s.registry.Get(h); err == nil {
			if fl, ok := w.(FocusListener); ok {
				fl.FocusGained()
			}
		}
	}
}

// FocusNext cycles focus to the next tab-order entry, wrapping. With no
// current focus it focuses the first entry. No focusable widgets is a no-op.
func (s *Session) FocusNext() {
	s.cycleFocus(1)
}

// FocusPrev cycles focus to the previous tab-order entry, wrapping.
func (s *Session) FocusPrev() {
	s.cycleFocus(-1)
}

func (s *Session) cycleFocus(delta int) {
	order := s.TabOrder()
	if len(order) == 0 {
		return
	}
	idx := -1
	for i, h := range order {
		if h == s.focus {
			idx = i
			break
		}
	}
	var next Handle
	switch {
	case idx >= 0:
		next = order[(idx+delta+len(order))%len(order)]
	case delta > 0:
		next = order[0]
	default:
		next = order[len(order)-1]
	}
	if next != s.focus {
		s.setFocus(next)
	}
}

// FocusDirection moves focus to the nearest focusable widget whose
// rectangle center lies predominantly in the given direction from the
// current widget's center. Primary-axis distance is weighted over
// secondary-axis offset (score = primary + 2*|secondary|, lowest wins) and
// ties break toward the earlier tab-order position. Focus is unchanged when
// nothing qualifies or nothing is focused.
func (s *Session) FocusDirection(dir Direction) {
	if !s.focus.Valid() {
		return
	}
	id, ok := s.tree.FindLeaf(s.focus)
	if !ok {
		return
	}
	rects := s.Layout()
	from, ok := rects[id]
	if !ok {
		return
	}
	origin := from.Center()

	best := Handle{}
	bestScore := 0
	for _, h := range s.TabOrder() {
		if h == s.focus {
			continue
		}
		cid, ok := s.tree.FindLeaf(h)
		if !ok {
			continue
		}
		r, ok := rects[cid]
		if !ok || r.Empty() {
			continue
		}
		c := r.Center()

		var primary, secondary int
		switch dir {
		case Up:
			primary, secondary = origin.Y-c.Y, c.X-origin.X
		case Down:
			primary, secondary = c.Y-origin.Y, c.X-origin.X
		case Left:
			primary, secondary = origin.X-c.X, c.Y-origin.Y
		case Right:
			primary, secondary = c.X-origin.X, c.Y-origin.Y
		}
		if primary <= 0 {
			continue
		}
		if secondary < 0 {
			secondary = -secondary
		}
		score := primary + 2*secondary
		if !best.Valid() || score < bestScore {
			best = h
			bestScore = score
		}
	}
	if best.Valid() {
		s.setFocus(best)
	}
}
