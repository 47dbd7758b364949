package mosaic

import (
	"errors"
	"testing"
)

func TestRegistryInsertGet(t *testing.T) {
	r := NewRegistry()
	label := NewLabel("hello")
	h := r.Insert(label)
	if !h.Valid() {
		t.Fatal("issued handle reported invalid")
	}

	w, err := r.Get(h)
	if err != nil {
		t.Fatal(err)
	}
	if w != Widget(label) {
		t.Error("Get returned a different widget")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistryZeroHandle(t *testing.T) {
	r := NewRegistry()
	r.Insert(NewLabel("a"))

	var zero Handle
	if zero.Valid() {
		t.Error("zero handle reported valid")
	}
	if _, err := r.Get(zero); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Get(zero) error = %v, want ErrInvalidHandle", err)
	}
}

func TestRegistryRemoveInvalidatesEveryCopy(t *testing.T) {
	r := NewRegistry()
	h := r.Insert(NewLabel("a"))
	copied := h

	if err := r.Remove(h); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Get(copied); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Get(copy) after remove: error = %v, want ErrInvalidHandle", err)
	}
	if err := r.Remove(h); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("double remove: error = %v, want ErrInvalidHandle", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestRegistrySlotReuseStalesOldHandle(t *testing.T) {
	r := NewRegistry()
	old := r.Insert(NewLabel("old"))
	if err := r.Remove(old); err != nil {
		t.Fatal(err)
	}

	fresh := r.Insert(NewLabel("new"))
	if fresh == old {
		t.Fatal("reused slot issued an identical handle")
	}
	if _, err := r.Get(old); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("stale handle after reuse: error = %v, want ErrInvalidHandle", err)
	}
	if w, err := r.Get(fresh); err != nil || w == nil {
		t.Errorf("fresh handle: widget %v, error %v", w, err)
	}
}
