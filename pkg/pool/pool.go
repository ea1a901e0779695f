// Package pool implements a generational arena.
//
// A Pool owns every value stored in it. Callers hold Handles, which are
// (index, generation) pairs. Removing a value bumps the generation of its
// slot, so every handle issued before the removal stops resolving, even
// after the slot is reused by a later Insert.
package pool

import (
	"fmt"
	"iter"
)

// Handle is an opaque reference to a value stored in a Pool[T].
// The zero Handle never resolves.
type Handle[T any] struct {
	index      uint32
	generation uint32
}

// None returns the handle that never resolves.
func None[T any]() Handle[T] {
	return Handle[T]{}
}

// IsNone reports whether h is the zero handle.
func (h Handle[T]) IsNone() bool {
	return h.generation == 0
}

// Index returns the slot index of the handle.
func (h Handle[T]) Index() uint32 {
	return h.index
}

// Generation returns the generation the handle was issued with.
func (h Handle[T]) Generation() uint32 {
	return h.generation
}

func (h Handle[T]) String() string {
	if h.IsNone() {
		return "Handle(none)"
	}
	return fmt.Sprintf("Handle(%d:%d)", h.index, h.generation)
}

type slot[T any] struct {
	value      T
	generation uint32
	occupied   bool
}

// Pool stores values in reusable slots addressed by generational handles.
// A Pool is not safe for concurrent use.
type Pool[T any] struct {
	slots []slot[T]
	free  []uint32
	alive int
}

// New returns a pool with room for capacity values before growing.
func New[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{slots: make([]slot[T], 0, capacity)}
}

// Insert stores v and returns its handle. Freed slots are reused before
// storage grows; a reused slot keeps the generation bumped by Remove.
func (p *Pool[T]) Insert(v T) Handle[T] {
	if n := len(p.free); n > 0 {
		index := p.free[n-1]
		p.free = p.free[:n-1]
		s := &p.slots[index]
		s.value = v
		s.occupied = true
		p.alive++
		return Handle[T]{index: index, generation: s.generation}
	}
	index := uint32(len(p.slots))
	p.slots = append(p.slots, slot[T]{value: v, generation: 1, occupied: true})
	p.alive++
	return Handle[T]{index: index, generation: 1}
}

// lookup returns the slot for h or nil when h does not resolve.
func (p *Pool[T]) lookup(h Handle[T]) *slot[T] {
	if h.IsNone() || int(h.index) >= len(p.slots) {
		return nil
	}
	s := &p.slots[h.index]
	if !s.occupied || s.generation != h.generation {
		return nil
	}
	return s
}

// Get returns the value for h. The second result is false when the index is
// out of range, the slot is vacant, or the generation does not match.
func (p *Pool[T]) Get(h Handle[T]) (T, bool) {
	if s := p.lookup(h); s != nil {
		return s.value, true
	}
	var zero T
	return zero, false
}

// GetMut returns a pointer to the stored value for h, or nil and false when
// h does not resolve. The pointer is only valid until the next Insert.
func (p *Pool[T]) GetMut(h Handle[T]) (*T, bool) {
	if s := p.lookup(h); s != nil {
		return &s.value, true
	}
	return nil, false
}

// Contains reports whether h resolves to a live value.
func (p *Pool[T]) Contains(h Handle[T]) bool {
	return p.lookup(h) != nil
}

// Remove frees the slot for h and returns the value it held. Every handle to
// the slot, including h, stops resolving.
func (p *Pool[T]) Remove(h Handle[T]) (T, bool) {
	s := p.lookup(h)
	if s == nil {
		var zero T
		return zero, false
	}
	v := s.value
	p.release(h.index)
	return v, true
}

func (p *Pool[T]) release(index uint32) {
	s := &p.slots[index]
	var zero T
	s.value = zero
	s.occupied = false
	s.generation++
	if s.generation == 0 {
		// Wrapped: skip the generation reserved for the none handle.
		s.generation = 1
	}
	p.free = append(p.free, index)
	p.alive--
}

// HandleAt returns the live handle for the slot at index, or None when the
// slot is vacant or out of range.
func (p *Pool[T]) HandleAt(index uint32) Handle[T] {
	if int(index) >= len(p.slots) || !p.slots[index].occupied {
		return None[T]()
	}
	return Handle[T]{index: index, generation: p.slots[index].generation}
}

// Len returns the number of live values.
func (p *Pool[T]) Len() int {
	return p.alive
}

// Cap returns the number of slots, live or free.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// All iterates live values in slot order. The pool must not be modified
// during iteration.
func (p *Pool[T]) All() iter.Seq2[Handle[T], T] {
	return func(yield func(Handle[T], T) bool) {
		for i := range p.slots {
			s := &p.slots[i]
			if !s.occupied {
				continue
			}
			if !yield(Handle[T]{index: uint32(i), generation: s.generation}, s.value) {
				return
			}
		}
	}
}

// Clear removes every live value, invalidating all outstanding handles.
func (p *Pool[T]) Clear() {
	for i := range p.slots {
		if p.slots[i].occupied {
			p.release(uint32(i))
		}
	}
}
