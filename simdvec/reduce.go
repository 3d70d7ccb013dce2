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
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Sum computes the scalar sum of [b, e) one element at a time.
// It is the semantic baseline for BlockSum. b must not be past e.
func Sum[T Lanes](b, e Iter[T]) T {
	var acc T
	for it := b; !it.Equal(e); it = it.Next() {
		acc += it.Value()
	}
	return acc
}

// blockReduce folds [b, e) lane by lane: the boundary lanes are masked to
// exclude slots outside the range, full interior lanes are accumulated with
// lane-wide adds, and the accumulator is horizontally summed. lane loads the
// lane value to fold at a given lane cursor.
//
// Summation is lane-sequential left to right; the order within a lane is
// whatever Ops.Sum defines.
func blockReduce[T Lanes](ops Ops[T], b, e Iter[T], lane func(LaneIter[T]) Lane[T]) T {
	bb := b.LowerBlock()
	ee := e.UpperBlock()

	if bb.Equal(ee) {
		var zero T
		return zero
	}

	ee = ee.Prev()

	// Range confined to a single lane: mask both boundaries at once.
	if bb.Equal(ee) {
		return ops.Sum(ops.MaskBoth(lane(bb), b.LowerOffset(), e.UpperOffset()))
	}

	acc := ops.MaskLower(lane(bb), b.LowerOffset())
	for bb = bb.Next(); !bb.Equal(ee); bb = bb.Next() {
		acc = ops.Add(acc, lane(bb))
	}
	return ops.Sum(ops.Add(acc, ops.MaskUpper(lane(bb), e.UpperOffset())))
}

// BlockSum computes the sum of [b, e) using lane-wide operations with masked
// boundary lanes. The result equals Sum(b, e) exactly for integer element
// types; for floating-point types the two differ within rounding tolerance
// because the association order differs.
//
// b and e must belong to the same Vector with b at or before e; violating
// this is undefined behavior, as is passing an Ops whose lane width differs
// from the iterators'.
func BlockSum[T Lanes](ops Ops[T], b, e Iter[T]) T {
	return blockReduce(ops, b, e, LaneIter[T].Load)
}

// BlockDot computes the dot product of [b, e) with the equally long range
// starting at b2, using lane-wide multiplies with masked boundary lanes.
//
// b2 must have the same lane phase as b (equal LowerOffset) and its vector
// must hold at least e.Diff(b) elements past b2.
func BlockDot[T Lanes](ops Ops[T], b, e, b2 Iter[T]) T {
	first := b.LowerBlock()
	first2 := b2.LowerBlock()
	return blockReduce(ops, b, e, func(bb LaneIter[T]) Lane[T] {
		return ops.Mul(bb.Load(), first2.Add(bb.Diff(first)).Load())
	})
}

// BlockSquaredDistance computes the sum of squared differences between
// [b, e) and the equally long range starting at b2. Preconditions are the
// same as for BlockDot.
func BlockSquaredDistance[T Lanes](ops Ops[T], b, e, b2 Iter[T]) T {
	first := b.LowerBlock()
	first2 := b2.LowerBlock()
	return blockReduce(ops, b, e, func(bb LaneIter[T]) Lane[T] {
		d := ops.Sub(bb.Load(), first2.Add(bb.Diff(first)).Load())
		return ops.Mul(d, d)
	})
}

// ParallelBlockSum computes BlockSum over [b, e) by splitting the range on
// lane boundaries across up to workers goroutines. Chunk sums are combined
// left to right, so the result matches BlockSum for integer element types
// and agrees within rounding tolerance for floats.
//
// workers <= 0 uses GOMAXPROCS. ops must be safe for concurrent use
// (ScalarOps is). The only error returned is ctx's, when it is canceled
// before the reduction completes.
func ParallelBlockSum[T Lanes](ctx context.Context, ops Ops[T], b, e Iter[T], workers int) (T, error) {
	n := e.Diff(b)
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	k := b.LowerBlock().LaneCount()

	// Chunks are whole multiples of the lane width so only the outermost
	// boundaries need masking.
	chunk := (n/workers + k - 1) / k * k
	if workers == 1 || chunk == 0 || n <= k {
		return BlockSum(ops, b, e), nil
	}

	numChunks := (n + chunk - 1) / chunk
	sums := make([]T, numChunks)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < numChunks; i++ {
		i := i
		start := i * chunk
		end := min(start+chunk, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sums[i] = BlockSum(ops, b.Add(start), b.Add(end))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var zero T
		return zero, err
	}

	var total T
	for _, s := range sums {
		total += s
	}
	return total, nil
}

// Fill stores v into every element of [b, e).
func Fill[T Lanes](b, e Iter[T], v T) {
	for it := b; !it.Equal(e); it = it.Next() {
		it.SetValue(v)
	}
}

// Generate stores successive results of fn into [b, e), in order.
func Generate[T Lanes](b, e Iter[T], fn func() T) {
	for it := b; !it.Equal(e); it = it.Next() {
		it.SetValue(fn())
	}
}
