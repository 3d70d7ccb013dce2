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

// Ops is the lane-wide operation set a lane-width-specific backend must
// supply. The reduction algorithms are generic over it and call nothing else.
//
// Gap arguments follow the iterator projection conventions:
//
//   - lgap is Iter.LowerOffset() of a range's begin: the number of leading
//     slots of the first lane that fall before the range. Domain [0, k).
//   - ugap is Iter.UpperOffset() of a range's end: the non-positive distance
//     from the lane's last slot to the slot holding the first excluded
//     element. Domain (-k, 0]. MaskUpper keeps the leading k-1+ugap slots and
//     zeroes the rest, so ugap == -(k-1) zeroes the whole lane and
//     ugap == 0 zeroes only the last slot.
//
// The reduction algorithms guarantee these domains by construction;
// implementations may assume them and need not defend against out-of-range
// gaps. Masked-out slots must carry the additive identity so that a
// horizontal sum over a masked lane is exact.
//
// Implementations must not mutate their input lanes.
type Ops[T Lanes] interface {
	// Zero returns a lane with all slots set to the additive identity.
	Zero() Lane[T]

	// Broadcast returns a lane with all slots set to x.
	Broadcast(x T) Lane[T]

	// Add performs slot-wise addition.
	Add(a, b Lane[T]) Lane[T]

	// Sub performs slot-wise subtraction.
	Sub(a, b Lane[T]) Lane[T]

	// Mul performs slot-wise multiplication.
	Mul(a, b Lane[T]) Lane[T]

	// Sum reduces all slots of a lane to a single scalar (horizontal sum).
	Sum(a Lane[T]) T

	// MaskLower zeroes the first lgap slots.
	MaskLower(a Lane[T], lgap int) Lane[T]

	// MaskUpper zeroes every slot from k-1+ugap onward.
	MaskUpper(a Lane[T], ugap int) Lane[T]

	// MaskBoth applies MaskLower then MaskUpper.
	MaskBoth(a Lane[T], lgap, ugap int) Lane[T]
}

// ScalarOps is the portable reference implementation of Ops: plain Go loops
// over the lane's slots, one lane width fixed at construction. It is the
// fallback backend and the semantic baseline SIMD backends are tested
// against.
type ScalarOps[T Lanes] struct {
	k int
}

// NewScalarOps returns a ScalarOps for lanes of laneCount elements,
// typically Vector.LaneCount().
func NewScalarOps[T Lanes](laneCount int) ScalarOps[T] {
	return ScalarOps[T]{k: laneCount}
}

var _ Ops[float32] = ScalarOps[float32]{}

// Zero returns a lane with all slots set to zero.
func (o ScalarOps[T]) Zero() Lane[T] {
	return Lane[T]{data: make([]T, o.k)}
}

// Broadcast returns a lane with all slots set to x.
func (o ScalarOps[T]) Broadcast(x T) Lane[T] {
	data := make([]T, o.k)
	for i := range data {
		data[i] = x
	}
	return Lane[T]{data: data}
}

// Add performs slot-wise addition.
func (o ScalarOps[T]) Add(a, b Lane[T]) Lane[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Lane[T]{data: result}
}

// Sub performs slot-wise subtraction.
func (o ScalarOps[T]) Sub(a, b Lane[T]) Lane[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] - b.data[i]
	}
	return Lane[T]{data: result}
}

// Mul performs slot-wise multiplication.
func (o ScalarOps[T]) Mul(a, b Lane[T]) Lane[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] * b.data[i]
	}
	return Lane[T]{data: result}
}

// Sum reduces all slots of a lane to a single scalar.
func (o ScalarOps[T]) Sum(a Lane[T]) T {
	var sum T
	for i := 0; i < len(a.data); i++ {
		sum += a.data[i]
	}
	return sum
}

// MaskLower zeroes the first lgap slots.
func (o ScalarOps[T]) MaskLower(a Lane[T], lgap int) Lane[T] {
	result := make([]T, len(a.data))
	copy(result, a.data)
	for i, m := 0, min(lgap, len(result)); i < m; i++ {
		result[i] = 0
	}
	return Lane[T]{data: result}
}

// MaskUpper zeroes every slot from k-1+ugap onward.
func (o ScalarOps[T]) MaskUpper(a Lane[T], ugap int) Lane[T] {
	result := make([]T, len(a.data))
	copy(result, a.data)
	for i := max(o.k-1+ugap, 0); i < len(result); i++ {
		result[i] = 0
	}
	return Lane[T]{data: result}
}

// MaskBoth applies MaskLower then MaskUpper.
func (o ScalarOps[T]) MaskBoth(a Lane[T], lgap, ugap int) Lane[T] {
	return o.MaskUpper(o.MaskLower(a, lgap), ugap)
}
