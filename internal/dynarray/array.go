// SPDX-License-Identifier: MIT

// Package dynarray implements a generic amortized-growth sequence. Growth
// piggybacks on the Go slice's own append-doubling instead of hand-rolled
// capacity bookkeeping.
package dynarray

import "sort"

// Array is an owned, growable sequence of T.
type Array[T any] struct {
	items []T
}

// New returns an empty Array.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// Push appends v to the array.
func (a *Array[T]) Push(v T) {
	a.items = append(a.items, v)
}

// Get returns the i-th element. It panics if i is out of range, the same
// contract as indexing a slice directly.
func (a *Array[T]) Get(i int) T {
	return a.items[i]
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Empty reports whether the array has no elements.
func (a *Array[T]) Empty() bool {
	return len(a.items) == 0
}

// Sort sorts the array in place using less as the ordering predicate.
func (a *Array[T]) Sort(less func(x, y T) bool) {
	sort.SliceStable(a.items, func(i, j int) bool {
		return less(a.items[i], a.items[j])
	})
}

// Slice returns the backing elements. Callers must not retain it across a
// further mutation of the Array.
func (a *Array[T]) Slice() []T {
	return a.items
}

// Reset drops all elements. There is nothing to manually free, but the
// backing array is released for GC.
func (a *Array[T]) Reset() {
	a.items = nil
}
