package simdvec

import (
	"errors"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlignment(t *testing.T) {
	sizes := []int{0, 1, 3, 4, 7, 8, 12, 100, 1000, 4097}
	widths := []int{16, 32, 64}

	for _, laneBytes := range widths {
		for _, size := range sizes {
			vec, err := NewWith[float32](size, laneBytes)
			require.NoError(t, err, "size=%d laneBytes=%d", size, laneBytes)

			addr := uintptr(unsafe.Pointer(vec.base))
			assert.Zero(t, addr%uintptr(laneBytes), "size=%d laneBytes=%d: misaligned base", size, laneBytes)
			assert.True(t, vec.Aligned())
		}
	}
}

func TestNewRounding(t *testing.T) {
	for _, laneBytes := range []int{16, 32, 64} {
		for size := 0; size <= 130; size++ {
			vec, err := NewWith[float32](size, laneBytes)
			require.NoError(t, err)

			k := vec.LaneCount()
			assert.Equal(t, laneBytes/4, k)
			assert.GreaterOrEqual(t, vec.Cap(), size)
			assert.Zero(t, vec.Cap()%k, "capacity must be a whole number of lanes")
			assert.Less(t, vec.Cap()-size, k, "capacity must be the smallest sufficient multiple")
		}
	}
}

func TestNewRoundingScenario(t *testing.T) {
	// Requested size 10 with 4 elements per lane rounds to 12; elements 10
	// and 11 are addressable but outside the logical range.
	vec, err := NewWith[float32](10, 16)
	require.NoError(t, err)

	assert.Equal(t, 10, vec.Len())
	assert.Equal(t, 12, vec.Cap())
	assert.Equal(t, 4, vec.LaneCount())
	assert.Len(t, vec.Slice(), 10)

	// The rounded tail exists in memory: elements 10 and 11 are writable
	// without faulting and sit outside the logical range.
	Fill(vec.Begin(), vec.End(), 2)
	vec.Begin().SetAt(10, 1)
	vec.Begin().SetAt(11, 1)
	assert.Equal(t, float32(2), vec.Slice()[9])

	// The whole last lane, padding included, is loadable.
	last := vec.End().LowerBlock().Load()
	assert.Equal(t, []float32{2, 2, 1, 1}, last.Data())
}

func TestNewConfigErrors(t *testing.T) {
	var cfgErr *ConfigError

	// Lane narrower than the element: 4 % 8 != 0.
	_, err := NewWith[float64](8, 4)
	require.Error(t, err)
	require.ErrorAs(t, err, &cfgErr)

	// Lane width not a power of two.
	_, err = NewWith[float32](8, 12)
	require.Error(t, err)
	require.ErrorAs(t, err, &cfgErr)

	// Zero and negative widths.
	_, err = NewWith[float32](8, 0)
	require.ErrorAs(t, err, &cfgErr)
	_, err = NewWith[float32](8, -16)
	require.ErrorAs(t, err, &cfgErr)

	// Negative element count.
	_, err = NewWith[float32](-1, 16)
	require.ErrorAs(t, err, &cfgErr)
}

func TestNewOverflow(t *testing.T) {
	_, err := NewWith[float64](int(^uint(0)>>2), 64)
	require.Error(t, err)

	var alignErr *AlignmentError
	require.True(t, errors.As(err, &alignErr))
	require.ErrorIs(t, err, ErrSizeOverflow)
}

func TestNewOverflowOnRounding(t *testing.T) {
	// A size this close to MaxInt survives the byte-size estimate only if the
	// guard runs before rounding: rounding MaxInt up to a lane multiple wraps
	// to a negative capacity, which must never reach allocation.
	vec, err := NewWith[float32](math.MaxInt, 16)
	require.Error(t, err)
	require.Nil(t, vec, "failed construction must not return a vector")
	require.ErrorIs(t, err, ErrSizeOverflow)

	var alignErr *AlignmentError
	require.True(t, errors.As(err, &alignErr))

	// The largest still-representable requests must also fail cleanly, never
	// yield Cap() < Len().
	for _, size := range []int{math.MaxInt - 1, math.MaxInt - 3, math.MaxInt/4 + 1} {
		vec, err := NewWith[float32](size, 16)
		require.Error(t, err, "size=%d", size)
		require.Nil(t, vec, "size=%d", size)
	}
}

func TestBeginEnd(t *testing.T) {
	vec, err := NewWith[int32](25, 16)
	require.NoError(t, err)

	assert.Equal(t, 25, vec.End().Diff(vec.Begin()))
	assert.True(t, vec.Begin().Add(25).Equal(vec.End()))
	assert.True(t, vec.Begin().Leq(vec.End()))

	empty, err := NewWith[int32](0, 16)
	require.NoError(t, err)
	assert.True(t, empty.Begin().Equal(empty.End()))
}

func TestSliceAliasesStorage(t *testing.T) {
	vec, err := NewWith[int32](8, 16)
	require.NoError(t, err)

	vec.Begin().Add(3).SetValue(42)
	assert.Equal(t, int32(42), vec.Slice()[3])

	vec.Slice()[5] = 7
	assert.Equal(t, int32(7), vec.Begin().At(5))
}

func TestStorageAddressStable(t *testing.T) {
	// Iterators obtained before other operations keep addressing the same
	// storage: the vector never reallocates.
	vec, err := NewWith[int32](16, 16)
	require.NoError(t, err)

	it := vec.Begin()
	before := uintptr(unsafe.Pointer(vec.base))

	Fill(vec.Begin(), vec.End(), 3)
	handle := vec // copying the handle must not move storage
	_ = handle

	assert.Equal(t, before, uintptr(unsafe.Pointer(vec.base)))
	assert.Equal(t, int32(3), it.Value())
}

func TestNewUsesDispatchWidth(t *testing.T) {
	vec, err := New[float32](100)
	require.NoError(t, err)
	assert.Equal(t, DefaultLaneBytes(), vec.LaneBytes())
}

func TestDefaultLaneBytesOverride(t *testing.T) {
	t.Setenv("SIMDVEC_LANE_BYTES", "32")
	assert.Equal(t, 32, DefaultLaneBytes())

	t.Setenv("SIMDVEC_LANE_BYTES", "13") // not a power of two: ignored
	assert.Equal(t, CurrentWidth(), DefaultLaneBytes())

	t.Setenv("SIMDVEC_LANE_BYTES", "")
	assert.Equal(t, CurrentWidth(), DefaultLaneBytes())
}
