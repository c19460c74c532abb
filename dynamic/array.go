// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynamic provides the two growable containers the benchmark
// kernels are built on. Both carry an explicit capacity counter that
// doubles once the logical length exceeds it. The counter replicates
// the growth schedule of the other language editions of this suite;
// it is an accounting value only and never sizes the underlying
// storage.
package dynamic

// An Array is an append-only sequence of values.
type Array[T any] struct {
	data     []T
	capacity int
}

// NewArray returns an empty Array whose capacity counter starts at
// initialCapacity.
func NewArray[T any](initialCapacity int) *Array[T] {
	return &Array[T]{capacity: initialCapacity}
}

// Push appends v, then doubles the capacity counter if the length now
// exceeds it.
func (a *Array[T]) Push(v T) {
	a.data = append(a.data, v)
	if len(a.data) > a.capacity {
		a.capacity *= 2
	}
}

// Len returns the number of values pushed.
func (a *Array[T]) Len() int { return len(a.data) }

// Cap returns the capacity counter. It never decreases.
func (a *Array[T]) Cap() int { return a.capacity }

// At returns the value at index i. An out-of-range index panics.
func (a *Array[T]) At(i int) T { return a.data[i] }

// Set replaces the value at index i. An out-of-range index panics.
func (a *Array[T]) Set(i int, v T) { a.data[i] = v }
