// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

// A String is an append-only text buffer. Append rebuilds the whole
// buffer by concatenation, so each call costs O(current length). That
// cost is the workload being measured; replacing it with a
// strings.Builder would change the algorithm and break comparability
// with the other language editions.
type String struct {
	data     string
	capacity int
}

// NewString returns an empty String whose capacity counter starts at
// initialCapacity.
func NewString(initialCapacity int) *String {
	return &String{capacity: initialCapacity}
}

// Append concatenates fragment onto the buffer, then doubles the
// capacity counter if the length now exceeds it.
func (s *String) Append(fragment string) {
	s.data = s.data + fragment
	if len(s.data) > s.capacity {
		s.capacity *= 2
	}
}

// Len returns the accumulated length in bytes.
func (s *String) Len() int { return len(s.data) }

// Cap returns the capacity counter. It never decreases.
func (s *String) Cap() int { return s.capacity }

// String returns the accumulated content.
func (s *String) String() string { return s.data }
