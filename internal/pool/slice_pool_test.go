package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFloat64Slice(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		slice, cleanup := GetFloat64Slice(100)
		defer cleanup()

		require.Len(t, slice, 100)
		require.GreaterOrEqual(t, cap(slice), 100)
	})

	t.Run("allocates when capacity insufficient", func(t *testing.T) {
		_, cleanup1 := GetFloat64Slice(4)
		cleanup1()

		slice, cleanup2 := GetFloat64Slice(1000)
		defer cleanup2()

		require.Len(t, slice, 1000)
		require.GreaterOrEqual(t, cap(slice), 1000)
	})

	t.Run("zero size", func(t *testing.T) {
		slice, cleanup := GetFloat64Slice(0)
		defer cleanup()

		require.Empty(t, slice)
	})

	t.Run("slice is writable across its length", func(t *testing.T) {
		slice, cleanup := GetFloat64Slice(9)
		defer cleanup()

		for i := range slice {
			slice[i] = float64(i) * 0.5
		}
		require.InDelta(t, 4.0, slice[8], 1e-12)
	})
}

func TestGetFloat64Slices(t *testing.T) {
	bufs, cleanup := GetFloat64Slices(4, 9)
	defer cleanup()

	require.Len(t, bufs, 4)
	for _, b := range bufs {
		require.Len(t, b, 9)
	}

	// distinct backing arrays
	bufs[0][0] = 1
	bufs[1][0] = 2
	require.InDelta(t, 1.0, bufs[0][0], 0)
	require.InDelta(t, 2.0, bufs[1][0], 0)
}
