package mosaic

import (
	"errors"
	"testing"
)

// threeFocusable builds a horizontal row of three focusable stubs and
// returns the session plus the widgets and their handles in tab order.
func threeFocusable(t *testing.T) (*Session, []*stubWidget, []Handle) {
	t.Helper()
	s := NewSession(Horizontal, 60, 10, Config{})
	var widgets []*stubWidget
	var handles []Handle
	for i := 0; i < 3; i++ {
		w := &stubWidget{focusable: true}
		h := s.Insert(w)
		if _, err := s.Tree().AddLeaf(s.Tree().Root(), h, Fill(1)); err != nil {
			t.Fatal(err)
		}
		widgets = append(widgets, w)
		handles = append(handles, h)
	}
	return s, widgets, handles
}

func TestFocusNextCyclesAndWraps(t *testing.T) {
	s, _, hs := threeFocusable(t)

	if _, ok := s.Focused(); ok {
		t.Fatal("fresh session has focus")
	}
	s.FocusNext()
	if h, _ := s.Focused(); h != hs[0] {
		t.Errorf("first FocusNext = %v, want first tab entry", h)
	}
	s.FocusNext()
	s.FocusNext()
	if h, _ := s.Focused(); h != hs[2] {
		t.Errorf("third FocusNext = %v, want last tab entry", h)
	}
	s.FocusNext()
	if h, _ := s.Focused(); h != hs[0] {
		t.Errorf("wrap = %v, want first tab entry", h)
	}
}

func TestFocusPrevStartsAtLast(t *testing.T) {
	s, _, hs := threeFocusable(t)

	s.FocusPrev()
	if h, _ := s.Focused(); h != hs[2] {
		t.Errorf("FocusPrev with no focus = %v, want last entry", h)
	}
	s.FocusPrev()
	if h, _ := s.Focused(); h != hs[1] {
		t.Errorf("FocusPrev = %v, want middle entry", h)
	}
}

func TestFocusCycleSkipsUnfocusable(t *testing.T) {
	s := NewSession(Horizontal, 60, 10, Config{})
	a := &stubWidget{focusable: true}
	mid := &stubWidget{} // not focusable
	b := &stubWidget{focusable: true}
	ha := s.Insert(a)
	hm := s.Insert(mid)
	hb := s.Insert(b)
	s.Tree().AddLeaf(s.Tree().Root(), ha, Fill(1))
	s.Tree().AddLeaf(s.Tree().Root(), hm, Fill(1))
	s.Tree().AddLeaf(s.Tree().Root(), hb, Fill(1))

	s.Focus(ha)
	s.FocusNext()
	if h, _ := s.Focused(); h != hb {
		t.Errorf("FocusNext landed on %v, want the focusable neighbor", h)
	}
}

func TestFocusNextWithNoFocusableIsNoop(t *testing.T) {
	s := NewSession(Horizontal, 60, 10, Config{})
	h := s.Insert(&stubWidget{})
	s.Tree().AddLeaf(s.Tree().Root(), h, Fill(1))

	s.FocusNext()
	if _, ok := s.Focused(); ok {
		t.Error("FocusNext focused a non-focusable widget")
	}
}

func TestFocusRejectsUnfocusable(t *testing.T) {
	s := NewSession(Horizontal, 60, 10, Config{})
	h := s.Insert(&stubWidget{})
	s.Tree().AddLeaf(s.Tree().Root(), h, Fill(1))

	if err := s.Focus(h); !errors.Is(err, ErrNotFocusable) {
		t.Errorf("Focus on unfocusable: error = %v, want ErrNotFocusable", err)
	}
	if err := s.Focus(Handle{}); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Focus on zero handle: error = %v, want ErrInvalidHandle", err)
	}
}

func TestFocusNotifications(t *testing.T) {
	s, ws, hs := threeFocusable(t)

	s.Focus(hs[0])
	if ws[0].gained != 1 {
		t.Errorf("gained = %d, want 1", ws[0].gained)
	}

	// Refocusing the same widget emits nothing.
	s.Focus(hs[0])
	if ws[0].gained != 1 || ws[0].lost != 0 {
		t.Errorf("refocus: gained=%d lost=%d", ws[0].gained, ws[0].lost)
	}

	s.Focus(hs[1])
	if ws[0].lost != 1 || ws[1].gained != 1 {
		t.Errorf("handover: lost=%d gained=%d", ws[0].lost, ws[1].gained)
	}

	s.Blur()
	if ws[1].lost != 1 {
		t.Errorf("blur: lost = %d, want 1", ws[1].lost)
	}
	if _, ok := s.Focused(); ok {
		t.Error("focus survives Blur")
	}
}

func TestFocusDirectionDown(t *testing.T) {
	// Vertical stack: A above B.
	s := NewSession(Vertical, 10, 11, Config{})
	a := &stubWidget{focusable: true}
	b := &stubWidget{focusable: true}
	ha := s.Insert(a)
	hb := s.Insert(b)
	s.Tree().AddLeaf(s.Tree().Root(), ha, Fixed(5))
	s.Tree().AddLeaf(s.Tree().Root(), hb, Fill(1))

	s.Focus(ha)
	s.FocusDirection(Down)
	if h, _ := s.Focused(); h != hb {
		t.Errorf("Down from top pane = %v, want bottom pane", h)
	}

	// Nothing below the bottom pane: focus stays put.
	s.FocusDirection(Down)
	if h, _ := s.Focused(); h != hb {
		t.Errorf("Down past the edge moved focus to %v", h)
	}

	s.FocusDirection(Up)
	if h, _ := s.Focused(); h != ha {
		t.Errorf("Up from bottom pane = %v, want top pane", h)
	}
}

func TestFocusDirectionPrefersAlignedNeighbor(t *testing.T) {
	// Left column with two rows, right column spanning the full height.
	// From the top-left pane, Right should pick the right column; Down
	// should pick the pane directly below, not the tall one off-axis.
	s := NewSession(Horizontal, 40, 10, Config{})
	topLeft := &stubWidget{focusable: true}
	bottomLeft := &stubWidget{focusable: true}
	right := &stubWidget{focusable: true}

	col, err := s.Tree().AddSplit(s.Tree().Root(), Vertical, Fixed(20))
	if err != nil {
		t.Fatal(err)
	}
	htl := s.Insert(topLeft)
	hbl := s.Insert(bottomLeft)
	hr := s.Insert(right)
	s.Tree().AddLeaf(col, htl, Fill(1))
	s.Tree().AddLeaf(col, hbl, Fill(1))
	s.Tree().AddLeaf(s.Tree().Root(), hr, Fill(1))

	s.Focus(htl)
	s.FocusDirection(Down)
	if h, _ := s.Focused(); h != hbl {
		t.Errorf("Down = %v, want the pane directly below", h)
	}

	s.Focus(htl)
	s.FocusDirection(Right)
	if h, _ := s.Focused(); h != hr {
		t.Errorf("Right = %v, want the right column", h)
	}
}

func TestFocusDirectionWithoutFocusIsNoop(t *testing.T) {
	s, _, _ := threeFocusable(t)
	s.FocusDirection(Left)
	if _, ok := s.Focused(); ok {
		t.Error("FocusDirection moved focus with nothing focused")
	}
}

func TestTabOrderFollowsLeafOrder(t *testing.T) {
	s := NewSession(Horizontal, 60, 10, Config{})
	a := &stubWidget{focusable: true}
	skip := &stubWidget{}
	b := &stubWidget{focusable: true}
	ha := s.Insert(a)
	hs := s.Insert(skip)
	hb := s.Insert(b)
	s.Tree().AddLeaf(s.Tree().Root(), ha, Fill(1))
	s.Tree().AddLeaf(s.Tree().Root(), hs, Fill(1))
	s.Tree().AddLeaf(s.Tree().Root(), hb, Fill(1))

	order := s.TabOrder()
	if len(order) != 2 || order[0] != ha || order[1] != hb {
		t.Errorf("TabOrder() = %v, want [%v %v]", order, ha, hb)
	}
}
