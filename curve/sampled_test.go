package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pumpcurve/errs"
)

func TestNewSampled(t *testing.T) {
	s, err := NewSampled([]float64{0, 10, 20}, []float64{5, 7, 13})
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	_, err = NewSampled([]float64{0, 10, 5}, []float64{5, 7, 13})
	require.ErrorIs(t, err, errs.ErrInputShape)

	_, err = NewSampled([]float64{0, 10}, []float64{5})
	require.ErrorIs(t, err, errs.ErrInputShape)
}

func TestSampledAt(t *testing.T) {
	s, err := NewSampled([]float64{0, 10, 20}, []float64{5, 7, 13})
	require.NoError(t, err)

	tests := []struct {
		x, want float64
	}{
		{0, 5},
		{5, 6},
		{10, 7},
		{15, 10},
		{20, 13},
	}
	for _, tt := range tests {
		got, err := s.At(tt.x)
		require.NoError(t, err)
		require.InDelta(t, tt.want, got, 1e-12, "x=%g", tt.x)
	}

	for _, x := range []float64{-0.1, 20.5, math.NaN()} {
		_, err := s.At(x)
		require.ErrorIs(t, err, errs.ErrInputShape, "x=%g", x)
	}

	_, err = Sampled{}.At(1)
	require.ErrorIs(t, err, errs.ErrInputShape)
}

func TestSampledFunc(t *testing.T) {
	s, err := NewSampled([]float64{0, 10, 20}, []float64{5, 7, 13})
	require.NoError(t, err)
	f := s.Func()

	require.InDelta(t, 6.0, f(5), 1e-12)
	require.InDelta(t, 10.0, f(15), 1e-12)
	// linear extension of the end segments
	require.InDelta(t, 4.0, f(-5), 1e-12)
	require.InDelta(t, 16.0, f(25), 1e-12)
}
