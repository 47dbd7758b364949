package mosaic

import (
	"errors"
	"fmt"
)

// ErrInvalidHandle is returned when a handle is stale or was never issued.
var ErrInvalidHandle = errors.New("invalid widget handle")

// Handle is an opaque, generation-checked reference to a registry-owned
// widget. The zero Handle is never valid.
type Handle struct {
	index int32
	gen   uint32
}

// Valid reports whether the handle has been issued by a registry. It does
// not prove the widget is still alive; lookups do that.
func (h Handle) Valid() bool {
	return h.gen != 0
}

type slot struct {
	widget Widget
	gen    uint32
	live   bool
}

// Registry owns every widget instance and hands out generation-checked
// handles. All interaction with a widget goes through its handle; removing
// a widget invalidates every copy of its handle immediately.
type Registry struct {
	slots []slot
	free  []int32
}

// NewRegistry creates an empty widget registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Insert takes exclusive ownership of the widget and returns its handle.
func (r *Registry) Insert(w Widget) Handle {
	if len(r.free) > 0 {
		i := r.free[len(r.free)-1]
		r.free = r.free[:len(r.free)-1]
		s := &r.slots[i]
		s.widget = w
		s.live = true
		return Handle{index: i, gen: s.gen}
	}
	// gen starts at 1 so the zero Handle can never match a slot.
	r.slots = append(r.slots, slot{widget: w, gen: 1, live: true})
	return Handle{index: int32(len(r.slots) - 1), gen: 1}
}

// Get returns the widget behind the handle, or ErrInvalidHandle if the
// handle is stale or unknown.
func (r *Registry) Get(h Handle) (Widget, error) {
	if h.index < 0 || int(h.index) >= len(r.slots) {
		return nil, fmt.Errorf("handle out of range: %w", ErrInvalidHandle)
	}
	s := &r.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, fmt.Errorf("stale handle (slot gen %d, handle gen %d): %w", s.gen, h.gen, ErrInvalidHandle)
	}
	return s.widget, nil
}

// Remove releases the widget behind the handle. The slot's generation is
// bumped so outstanding copies of the handle turn stale.
func (r *Registry) Remove(h Handle) error {
	if _, err := r.Get(h); err != nil {
		return err
	}
	s := &r.slots[h.index]
	s.widget = nil
	s.live = false
	s.gen++
	r.free = append(r.free, h.index)
	return nil
}

// Len returns the number of live widgets.
func (r *Registry) Len() int {
	n := 0
	for i := range r.slots {
		if r.slots[i].live {
			n++
		}
	}
	return n
}
