// Copyright 2025 go-simdvec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simdvec

import (
	"math"
	"unsafe"
)

// Vector is a fixed-capacity container of scalar elements whose storage is
// aligned to the lane width and sized to a whole number of lanes.
//
// The logical range is [0, Len()); elements in [Len(), Cap()) exist in memory
// but are outside the logical range. Storage is allocated once and its
// address never changes for the lifetime of the Vector. Iterators are
// non-owning views; they remain valid as long as the Vector is reachable.
//
// A Vector is not safe for concurrent mutation; callers needing concurrent
// access must synchronize around it.
type Vector[T Lanes] struct {
	// raw is the owning allocation. It is over-sized by up to one lane of
	// alignment slack plus one whole slack lane past Cap(), so that a masked
	// lane load at a lane-aligned end offset stays in bounds.
	raw []byte

	// base is the first aligned element.
	base *T

	size      int // requested element count
	rounded   int // size rounded up to a multiple of laneCount
	laneCount int // elements per lane
	laneBytes int // lane width in bytes
}

// New constructs a Vector holding size elements, aligned to the lane width
// selected by the runtime dispatch (see DefaultLaneBytes).
func New[T Lanes](size int) (*Vector[T], error) {
	return NewWith[T](size, DefaultLaneBytes())
}

// NewWith constructs a Vector holding size elements, aligned to an explicit
// lane width in bytes. laneBytes must be a power of two and an exact multiple
// of the element size; violations are rejected with *ConfigError before any
// storage is allocated. Allocation failures surface as *AlignmentError with
// no partial state retained.
func NewWith[T Lanes](size, laneBytes int) (*Vector[T], error) {
	var dummy T
	elem := int(unsafe.Sizeof(dummy))

	if size < 0 {
		return nil, &ConfigError{ElemSize: elem, LaneBytes: laneBytes, Size: size,
			Reason: "negative element count"}
	}
	if laneBytes <= 0 || laneBytes&(laneBytes-1) != 0 {
		return nil, &ConfigError{ElemSize: elem, LaneBytes: laneBytes, Size: size,
			Reason: "lane width must be a positive power of two"}
	}
	if laneBytes%elem != 0 {
		return nil, &ConfigError{ElemSize: elem, LaneBytes: laneBytes, Size: size,
			Reason: "lane width must be a multiple of the element size"}
	}

	k := laneBytes / elem

	// Guard before rounding: rounding adds at most k elements, and the
	// allocation needs 2*laneBytes of slack on top, so the rounding
	// arithmetic itself must not be allowed to wrap.
	if size > (math.MaxInt-2*laneBytes)/elem-k {
		return nil, &AlignmentError{Size: size, Align: laneBytes, cause: ErrSizeOverflow}
	}

	// Round up so every lane touching the logical range is fully addressable.
	rounded := size
	if size%k != 0 {
		rounded = (size/k + 1) * k
	}

	// Over-allocate, then align: up to laneBytes-1 bytes of leading slack,
	// plus one trailing slack lane past the rounded capacity. The aligned
	// window always fits: off < laneBytes and total-off >= rounded*elem+laneBytes.
	total := rounded*elem + 2*laneBytes
	raw := make([]byte, total)

	addr := uintptr(unsafe.Pointer(&raw[0]))
	off := int((uintptr(laneBytes) - addr&uintptr(laneBytes-1)) & uintptr(laneBytes-1))

	return &Vector[T]{
		raw:       raw,
		base:      (*T)(unsafe.Pointer(&raw[off])),
		size:      size,
		rounded:   rounded,
		laneCount: k,
		laneBytes: laneBytes,
	}, nil
}

// Begin returns an element iterator at offset 0.
func (v *Vector[T]) Begin() Iter[T] {
	return Iter[T]{base: v.base, off: 0, k: v.laneCount}
}

// End returns an element iterator one past the last logical element.
func (v *Vector[T]) End() Iter[T] {
	return Iter[T]{base: v.base, off: v.size, k: v.laneCount}
}

// Len returns the logical element count requested at construction.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the allocated element capacity: the smallest multiple of
// LaneCount that is >= Len.
func (v *Vector[T]) Cap() int {
	return v.rounded
}

// LaneBytes returns the lane width in bytes.
func (v *Vector[T]) LaneBytes() int {
	return v.laneBytes
}

// LaneCount returns the number of elements per lane.
func (v *Vector[T]) LaneCount() int {
	return v.laneCount
}

// Slice returns the logical range as a slice aliasing the vector's storage.
func (v *Vector[T]) Slice() []T {
	return unsafe.Slice(v.base, v.size)
}

// Aligned reports whether the storage base satisfies the lane alignment.
// It always returns true for a successfully constructed Vector; it exists
// for tests and debug assertions.
func (v *Vector[T]) Aligned() bool {
	return uintptr(unsafe.Pointer(v.base))&uintptr(v.laneBytes-1) == 0
}
