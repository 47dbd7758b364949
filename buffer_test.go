package mosaic

import "testing"

func TestBufferSetGet(t *testing.T) {
	b := NewBuffer(10, 5)
	c := NewCell('x', DefaultStyle())
	b.Set(3, 2, c)
	if got := b.Get(3, 2); got.Rune != 'x' {
		t.Errorf("Get(3,2).Rune = %q, want 'x'", got.Rune)
	}

	// Out-of-bounds writes are dropped, reads come back empty.
	b.Set(-1, 0, c)
	b.Set(10, 4, c)
	if got := b.Get(10, 4); got.Rune != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got.Rune)
	}
}

func TestBufferDirtyRows(t *testing.T) {
	b := NewBuffer(10, 5)
	b.ClearDirtyFlags()
	b.Set(0, 3, NewCell('x', DefaultStyle()))
	if !b.RowDirty(3) {
		t.Error("written row not dirty")
	}
	if b.RowDirty(0) {
		t.Error("untouched row dirty")
	}
	b.ClearDirtyFlags()
	if b.RowDirty(3) {
		t.Error("dirty flag survives ClearDirtyFlags")
	}
}

func TestBufferWriteStringWideRune(t *testing.T) {
	b := NewBuffer(10, 1)
	n := b.WriteString(0, 0, "a世b", DefaultStyle())
	if n != 4 {
		t.Errorf("columns consumed = %d, want 4", n)
	}
	if b.Get(0, 0).Rune != 'a' || b.Get(1, 0).Rune != '世' || b.Get(3, 0).Rune != 'b' {
		t.Errorf("row = %q %q %q %q", b.Get(0, 0).Rune, b.Get(1, 0).Rune, b.Get(2, 0).Rune, b.Get(3, 0).Rune)
	}
	// The trailing column of a wide rune holds a zero-rune placeholder.
	if b.Get(2, 0).Rune != 0 {
		t.Errorf("placeholder cell = %q, want zero rune", b.Get(2, 0).Rune)
	}
}

func TestRegionClipsWrites(t *testing.T) {
	b := NewBuffer(20, 10)
	r := b.Region(NewRect(5, 2, 6, 3))
	if r.Width() != 6 || r.Height() != 3 {
		t.Fatalf("region size = %dx%d, want 6x3", r.Width(), r.Height())
	}

	r.Set(0, 0, NewCell('a', DefaultStyle()))
	if b.Get(5, 2).Rune != 'a' {
		t.Error("local (0,0) did not land at buffer (5,2)")
	}

	// Writes past the region edge never reach the buffer.
	r.Set(6, 0, NewCell('z', DefaultStyle()))
	r.Set(0, 3, NewCell('z', DefaultStyle()))
	if b.Get(11, 2).Rune == 'z' || b.Get(5, 5).Rune == 'z' {
		t.Error("write escaped the region")
	}

	n := r.WriteString(3, 1, "hello", DefaultStyle())
	if n != 3 {
		t.Errorf("clipped WriteString consumed %d columns, want 3", n)
	}
	if b.Get(10, 3).Rune != 'l' || b.Get(11, 3).Rune == 'l' {
		t.Error("WriteString not clipped at the region edge")
	}
}

func TestRegionClampedToBuffer(t *testing.T) {
	b := NewBuffer(10, 5)
	r := b.Region(NewRect(8, 3, 10, 10))
	if r.Width() != 2 || r.Height() != 2 {
		t.Errorf("clamped region = %dx%d, want 2x2", r.Width(), r.Height())
	}

	// The overhanging rect is trimmed in place, not shifted: local (0,0)
	// still maps to the rect's own origin.
	r.Set(0, 0, NewCell('a', DefaultStyle()))
	if b.Get(8, 3).Rune != 'a' {
		t.Error("clipped region lost its origin")
	}
	if b.Get(0, 0).Rune == 'a' {
		t.Error("clipped region relocated to the buffer origin")
	}
}

func TestRegionNegativeOriginClipped(t *testing.T) {
	b := NewBuffer(10, 5)
	r := b.Region(NewRect(-2, -1, 5, 4))
	if r.Width() != 3 || r.Height() != 3 {
		t.Fatalf("clipped region = %dx%d, want 3x3", r.Width(), r.Height())
	}
	r.Set(0, 0, NewCell('a', DefaultStyle()))
	if b.Get(0, 0).Rune != 'a' {
		t.Error("clipped region does not start at the buffer origin")
	}
}

func TestBorderMergeFormsJunctions(t *testing.T) {
	b := NewBuffer(20, 10)
	// Two side-by-side bordered panes sharing the x=9 column.
	b.Region(NewRect(0, 0, 10, 5)).DrawBorder(BorderSingle, DefaultStyle())
	b.Region(NewRect(9, 0, 10, 5)).DrawBorder(BorderSingle, DefaultStyle())

	if got := b.Get(9, 0).Rune; got != BoxTeeDown {
		t.Errorf("shared top corner = %q, want %q", got, BoxTeeDown)
	}
	if got := b.Get(9, 4).Rune; got != BoxTeeUp {
		t.Errorf("shared bottom corner = %q, want %q", got, BoxTeeUp)
	}
	if got := b.Get(9, 2).Rune; got != BoxVertical {
		t.Errorf("shared edge = %q, want %q", got, BoxVertical)
	}
}

func TestMergeBordersCross(t *testing.T) {
	got, ok := mergeBorders(BoxTeeDown, BoxTeeUp)
	if !ok || got != BoxCross {
		t.Errorf("mergeBorders(┬, ┴) = %q %v, want ┼", got, ok)
	}
	if _, ok := mergeBorders('x', BoxVertical); ok {
		t.Error("non-border rune merged")
	}
}

func TestBufferResize(t *testing.T) {
	b := NewBuffer(10, 5)
	b.Set(0, 0, NewCell('x', DefaultStyle()))
	b.Resize(4, 2)
	if b.Width() != 4 || b.Height() != 2 {
		t.Fatalf("size after resize = %dx%d", b.Width(), b.Height())
	}
	if b.Get(0, 0).Rune != ' ' {
		t.Error("resize kept old contents")
	}
	if !b.RowDirty(0) || !b.RowDirty(1) {
		t.Error("resized rows not marked dirty")
	}
}
