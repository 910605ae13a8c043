// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pool provides a generational slot arena whose handles act as
// safe weak references: a handle to a removed slot simply stops
// resolving instead of dangling.
package pool

import "iter"

// Handle is a generation-checked index into a [Pool]. The zero value is
// the nil handle, which never resolves. Handles are small value types
// and are compared with ==.
type Handle struct {
	// Index is the slot index. Do not set directly.
	Index uint32

	// Generation is the slot generation this handle was issued for.
	// Do not set directly; the zero generation marks the nil handle.
	Generation uint32
}

// IsNil returns whether this is the nil (never valid) handle.
func (h Handle) IsNil() bool {
	return h.Generation == 0
}

// IsSome returns whether this handle refers to a slot that was live
// at some point. It does not imply the slot is still live; use
// [Pool.Alive] for that.
func (h Handle) IsSome() bool {
	return h.Generation != 0
}

type slot[T any] struct {
	value      T
	generation uint32
	occupied   bool
}

// Pool is a slot arena of values of type T. Adding a value returns a
// [Handle]; removing a slot bumps its generation so that all handles
// issued for the old occupant fail to resolve. The zero value is an
// empty pool ready for use.
type Pool[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// Add places the given value in a free slot and returns its handle.
func (p *Pool[T]) Add(value T) Handle {
	p.count++
	if n := len(p.free); n > 0 {
		index := p.free[n-1]
		p.free = p.free[:n-1]
		s := &p.slots[index]
		s.value = value
		s.occupied = true
		return Handle{Index: index, Generation: s.generation}
	}
	p.slots = append(p.slots, slot[T]{value: value, generation: 1, occupied: true})
	return Handle{Index: uint32(len(p.slots) - 1), Generation: 1}
}

// Get returns the value referred to by the given handle, and whether
// the handle is still live.
func (p *Pool[T]) Get(h Handle) (T, bool) {
	if s := p.slot(h); s != nil {
		return s.value, true
	}
	var zero T
	return zero, false
}

// Alive returns whether the given handle still refers to a live slot.
func (p *Pool[T]) Alive(h Handle) bool {
	return p.slot(h) != nil
}

// Remove frees the slot referred to by the given handle and returns the
// removed value. Removing an already-removed or nil handle is a no-op
// that reports false.
func (p *Pool[T]) Remove(h Handle) (T, bool) {
	var zero T
	s := p.slot(h)
	if s == nil {
		return zero, false
	}
	value := s.value
	s.value = zero
	s.occupied = false
	s.generation++
	p.free = append(p.free, h.Index)
	p.count--
	return value, true
}

// Len returns the number of live slots.
func (p *Pool[T]) Len() int {
	return p.count
}

// All returns an iterator over all live handles and their values,
// in slot order.
func (p *Pool[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for i := range p.slots {
			s := &p.slots[i]
			if !s.occupied {
				continue
			}
			if !yield(Handle{Index: uint32(i), Generation: s.generation}, s.value) {
				return
			}
		}
	}
}

func (p *Pool[T]) slot(h Handle) *slot[T] {
	if h.IsNil() || int(h.Index) >= len(p.slots) {
		return nil
	}
	s := &p.slots[h.Index]
	if !s.occupied || s.generation != h.Generation {
		return nil
	}
	return s
}
