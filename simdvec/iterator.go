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

import "unsafe"

// Iter is a random-access cursor over individual elements of a Vector.
//
// Iter is a value type: Next, Prev, Add and Sub return displaced copies and
// never mutate the receiver. Two iterators are equal iff they share the same
// base and offset; ordering compares the addressed position, never the
// pointed-to value. The zero Iter is valid for comparison but must not be
// dereferenced or projected onto lanes.
//
// No bounds checking is performed: dereferencing outside the vector's
// allocated range is the caller's responsibility.
type Iter[T Lanes] struct {
	base *T
	off  int
	k    int // elements per lane, for lane projections
}

func (it Iter[T]) ptr() *T {
	return (*T)(unsafe.Add(unsafe.Pointer(it.base), it.off*int(unsafe.Sizeof(*it.base))))
}

// Value returns the element at the cursor.
func (it Iter[T]) Value() T {
	return *it.ptr()
}

// SetValue stores v at the cursor.
func (it Iter[T]) SetValue(v T) {
	*it.ptr() = v
}

// At returns the element n positions past the cursor.
func (it Iter[T]) At(n int) T {
	return *it.Add(n).ptr()
}

// SetAt stores v at the element n positions past the cursor.
func (it Iter[T]) SetAt(n int, v T) {
	*it.Add(n).ptr() = v
}

// Next returns the iterator advanced by one element.
func (it Iter[T]) Next() Iter[T] {
	it.off++
	return it
}

// Prev returns the iterator moved back by one element.
func (it Iter[T]) Prev() Iter[T] {
	it.off--
	return it
}

// Add returns the iterator displaced by n elements.
func (it Iter[T]) Add(n int) Iter[T] {
	it.off += n
	return it
}

// Sub returns the iterator displaced by -n elements.
func (it Iter[T]) Sub(n int) Iter[T] {
	it.off -= n
	return it
}

// Diff returns the signed element distance it - o.
func (it Iter[T]) Diff(o Iter[T]) int {
	return it.off - o.off
}

// Equal reports whether both iterators address the same base and offset.
func (it Iter[T]) Equal(o Iter[T]) bool {
	return it.base == o.base && it.off == o.off
}

// Less reports whether it addresses a position strictly before o.
func (it Iter[T]) Less(o Iter[T]) bool {
	return uintptr(unsafe.Pointer(it.ptr())) < uintptr(unsafe.Pointer(o.ptr()))
}

// Leq reports whether it addresses a position at or before o.
func (it Iter[T]) Leq(o Iter[T]) bool {
	return uintptr(unsafe.Pointer(it.ptr())) <= uintptr(unsafe.Pointer(o.ptr()))
}

// LowerBlock returns a lane iterator at the lane containing (or, for a
// lane-aligned offset, starting at) the cursor's element: floor(off / k).
func (it Iter[T]) LowerBlock() LaneIter[T] {
	return LaneIter[T]{base: it.base, off: it.off / it.k, k: it.k}
}

// UpperBlock returns a lane iterator one lane past LowerBlock.
func (it Iter[T]) UpperBlock() LaneIter[T] {
	return LaneIter[T]{base: it.base, off: it.off/it.k + 1, k: it.k}
}

// LowerOffset returns off mod k: how many scalar slots into its lane the
// cursor sits. Zero means the cursor is aligned to the lane start.
func (it Iter[T]) LowerOffset() int {
	return it.off % it.k
}

// UpperOffset returns (off mod k) - (k - 1), a non-positive count of slots
// before the lane's last slot. Zero means the cursor sits on the last slot.
func (it Iter[T]) UpperOffset() int {
	return it.off%it.k - (it.k - 1)
}

// LaneIter is a random-access cursor over whole lanes of a Vector's storage,
// reinterpreted at the lane width. It shares the element iterator's operation
// set but strides by LaneCount elements. No separate allocation backs it.
type LaneIter[T Lanes] struct {
	base *T
	off  int // lane offset
	k    int // elements per lane
}

func (it LaneIter[T]) lanePtr() *T {
	return (*T)(unsafe.Add(unsafe.Pointer(it.base), it.off*it.k*int(unsafe.Sizeof(*it.base))))
}

// Load returns the lane at the cursor as a zero-copy view of the storage.
func (it LaneIter[T]) Load() Lane[T] {
	return Lane[T]{data: unsafe.Slice(it.lanePtr(), it.k)}
}

// Store writes a lane's elements to the cursor's position.
func (it LaneIter[T]) Store(l Lane[T]) {
	copy(unsafe.Slice(it.lanePtr(), it.k), l.data)
}

// At returns the lane n whole lanes past the cursor.
func (it LaneIter[T]) At(n int) Lane[T] {
	return it.Add(n).Load()
}

// Next returns the iterator advanced by one lane.
func (it LaneIter[T]) Next() LaneIter[T] {
	it.off++
	return it
}

// Prev returns the iterator moved back by one lane.
func (it LaneIter[T]) Prev() LaneIter[T] {
	it.off--
	return it
}

// Add returns the iterator displaced by n lanes.
func (it LaneIter[T]) Add(n int) LaneIter[T] {
	it.off += n
	return it
}

// Sub returns the iterator displaced by -n lanes.
func (it LaneIter[T]) Sub(n int) LaneIter[T] {
	it.off -= n
	return it
}

// Diff returns the signed lane distance it - o.
func (it LaneIter[T]) Diff(o LaneIter[T]) int {
	return it.off - o.off
}

// Equal reports whether both iterators address the same base and lane offset.
func (it LaneIter[T]) Equal(o LaneIter[T]) bool {
	return it.base == o.base && it.off == o.off
}

// Less reports whether it addresses a lane strictly before o.
func (it LaneIter[T]) Less(o LaneIter[T]) bool {
	return uintptr(unsafe.Pointer(it.lanePtr())) < uintptr(unsafe.Pointer(o.lanePtr()))
}

// Leq reports whether it addresses a lane at or before o.
func (it LaneIter[T]) Leq(o LaneIter[T]) bool {
	return uintptr(unsafe.Pointer(it.lanePtr())) <= uintptr(unsafe.Pointer(o.lanePtr()))
}

// LaneCount returns the number of elements per lane.
func (it LaneIter[T]) LaneCount() int {
	return it.k
}

// Element returns an element iterator at the first scalar of the cursor's lane.
func (it LaneIter[T]) Element() Iter[T] {
	return Iter[T]{base: it.base, off: it.off * it.k, k: it.k}
}
