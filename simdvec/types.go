// Package simdvec provides a fixed-capacity, lane-aligned vector of scalar
// elements with two cooperating views of the same storage: an element-by-element
// cursor and a lane-at-a-time cursor sized to a hardware vector register.
//
// A Vector is allocated once, aligned to the lane width, and never moves.
// Algorithms iterate element-wise where convenient and switch to lane-wise
// processing for throughput, using masked boundary lanes to handle ranges
// that do not start or end on a lane boundary:
//
//	vec, _ := simdvec.New[float32](1024)
//	b := vec.Begin().Add(3)
//	e := vec.Begin().Add(900)
//	ops := simdvec.NewScalarOps[float32](vec.LaneCount())
//	total := simdvec.BlockSum(ops, b, e)
package simdvec

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Lane is one lane's worth of elements: LaneCount consecutive scalars viewed
// as a single wide value.
//
// A Lane returned by LaneIter.Load aliases the vector's storage; lanes
// returned by Ops implementations own their elements. Ops never mutate their
// inputs, so both kinds can be mixed freely in lane expressions.
type Lane[T Lanes] struct {
	// data holds the lane's elements.
	data []T
}

// NumLanes returns the number of scalar slots in this lane.
func (l Lane[T]) NumLanes() int {
	return len(l.data)
}

// Data returns the underlying slice representation of the lane.
// This is primarily for testing and should not be used in performance-critical code.
func (l Lane[T]) Data() []T {
	return l.data
}
