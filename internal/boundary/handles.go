// Package boundary is the adaptor layer a host (JNI, cgo, or any other
// flat-array caller) talks to: it registers keylayout and gesture values
// and hands back opaque, generation-checked handles so the host can never
// dereference a released layout or gesture state.
package boundary

import (
	"errors"
	"sync"

	"github.com/kittech/kbproximity/internal/gesture"
	"github.com/kittech/kbproximity/internal/keylayout"
)

// ErrUnknownHandle is returned when a handle's slot index has never been issued.
var ErrUnknownHandle = errors.New("boundary: unknown handle")

// ErrStaleHandle is returned when a handle's generation no longer matches
// the slot's current generation, i.e. it was already released (or the slot
// was reused for something else).
var ErrStaleHandle = errors.New("boundary: stale handle")

// LayoutHandle is an opaque reference to a registered *keylayout.Layout.
type LayoutHandle struct {
	index      int
	generation uint64
}

type layoutSlot struct {
	layout     *keylayout.Layout
	generation uint64
	live       bool
}

// LayoutRegistry owns the lifetime of layouts created across the boundary.
// The zero value is ready to use.
type LayoutRegistry struct {
	mu    sync.RWMutex
	slots []layoutSlot
	free  []int
}

// Create registers l and returns a handle for it.
func (r *LayoutRegistry) Create(l *keylayout.Layout) LayoutHandle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		slot := &r.slots[idx]
		slot.layout = l
		slot.live = true
		return LayoutHandle{index: idx, generation: slot.generation}
	}

	r.slots = append(r.slots, layoutSlot{layout: l, live: true})
	return LayoutHandle{index: len(r.slots) - 1, generation: 0}
}

// Get returns the layout referenced by h, or an error if h is unknown or stale.
func (r *LayoutRegistry) Get(h LayoutHandle) (*keylayout.Layout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h.index < 0 || h.index >= len(r.slots) {
		return nil, ErrUnknownHandle
	}
	slot := r.slots[h.index]
	if !slot.live || slot.generation != h.generation {
		return nil, ErrStaleHandle
	}
	return slot.layout, nil
}

// Release invalidates h. A second Release of the same handle returns
// ErrStaleHandle rather than silently succeeding.
func (r *LayoutRegistry) Release(h LayoutHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h.index < 0 || h.index >= len(r.slots) {
		return ErrUnknownHandle
	}
	slot := &r.slots[h.index]
	if !slot.live || slot.generation != h.generation {
		return ErrStaleHandle
	}
	slot.live = false
	slot.layout = nil
	slot.generation++
	r.free = append(r.free, h.index)
	return nil
}

// StateHandle is an opaque reference to a registered *gesture.State.
type StateHandle struct {
	index      int
	generation uint64
}

type stateSlot struct {
	state      *gesture.State
	generation uint64
	live       bool
}

// StateRegistry owns the lifetime of gesture states created across the
// boundary. The zero value is ready to use.
type StateRegistry struct {
	mu    sync.RWMutex
	slots []stateSlot
	free  []int
}

// Create registers a fresh *gesture.State and returns a handle for it.
func (r *StateRegistry) Create() StateHandle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		slot := &r.slots[idx]
		slot.state = &gesture.State{}
		slot.live = true
		return StateHandle{index: idx, generation: slot.generation}
	}

	r.slots = append(r.slots, stateSlot{state: &gesture.State{}, live: true})
	return StateHandle{index: len(r.slots) - 1, generation: 0}
}

// Get returns the state referenced by h, or an error if h is unknown or stale.
func (r *StateRegistry) Get(h StateHandle) (*gesture.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h.index < 0 || h.index >= len(r.slots) {
		return nil, ErrUnknownHandle
	}
	slot := r.slots[h.index]
	if !slot.live || slot.generation != h.generation {
		return nil, ErrStaleHandle
	}
	return slot.state, nil
}

// Release invalidates h.
func (r *StateRegistry) Release(h StateHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h.index < 0 || h.index >= len(r.slots) {
		return ErrUnknownHandle
	}
	slot := &r.slots[h.index]
	if !slot.live || slot.generation != h.generation {
		return ErrStaleHandle
	}
	slot.live = false
	slot.state = nil
	slot.generation++
	r.free = append(r.free, h.index)
	return nil
}
