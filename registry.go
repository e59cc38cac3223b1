// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import (
	"fmt"
	"sync"
)

// Handle is a weak reference to a browser owned by a Runtime. It does not
// keep the browser alive; once the browser is removed every copy of the
// handle stops resolving, even after its slot is reused.
//
// The zero Handle never resolves.
type Handle struct {
	index      uint32
	generation uint32
}

// Valid reports whether h was ever issued. It says nothing about liveness.
func (h Handle) Valid() bool {
	return h.generation != 0
}

func (h Handle) String() string {
	return fmt.Sprintf("%d.%d", h.index, h.generation)
}

type slot struct {
	generation uint32
	core       *WebCore
}

// registry is a generational arena of WebCores.
type registry struct {
	mu    sync.RWMutex
	slots []slot
	free  []uint32
	count int
}

func newRegistry() *registry {
	return &registry{}
}

func (r *registry) insert(wc *WebCore) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, slot{generation: 1})
	}
	s := &r.slots[idx]
	s.core = wc
	r.count++
	return Handle{index: idx, generation: s.generation}
}

func (r *registry) lookup(h Handle) (*WebCore, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !h.Valid() || int(h.index) >= len(r.slots) {
		return nil, false
	}
	s := r.slots[h.index]
	if s.generation != h.generation || s.core == nil {
		return nil, false
	}
	return s.core, true
}

// remove detaches and returns the WebCore behind h. The slot's generation is
// bumped so h and its copies expire.
func (r *registry) remove(h Handle) (*WebCore, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !h.Valid() || int(h.index) >= len(r.slots) {
		return nil, false
	}
	s := &r.slots[h.index]
	if s.generation != h.generation || s.core == nil {
		return nil, false
	}
	wc := s.core
	s.core = nil
	s.generation++
	if s.generation == 0 {
		// Skip the zero generation so a wrapped slot never matches Handle{}.
		s.generation = 1
	}
	r.free = append(r.free, h.index)
	r.count--
	return wc, true
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// handles returns the live handles in slot order.
func (r *registry) handles() []Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Handle, 0, r.count)
	for i, s := range r.slots {
		if s.core != nil {
			out = append(out, Handle{index: uint32(i), generation: s.generation})
		}
	}
	return out
}
