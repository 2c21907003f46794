package affinity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pumpcurve/errs"
)

func TestSpeedRange(t *testing.T) {
	t.Run("integer step", func(t *testing.T) {
		speeds, err := SpeedRange(515, 670, 1)
		require.NoError(t, err)
		require.Len(t, speeds, 155)
		require.InDelta(t, 515.0, speeds[0], 0)
		require.InDelta(t, 669.0, speeds[len(speeds)-1], 0)
	})

	t.Run("upper bound excluded", func(t *testing.T) {
		speeds, err := SpeedRange(800, 1000, 50)
		require.NoError(t, err)
		require.Equal(t, []float64{800, 850, 900, 950}, speeds)
	})

	t.Run("fractional step", func(t *testing.T) {
		speeds, err := SpeedRange(0.8, 1.0, 0.1)
		require.NoError(t, err)
		require.Len(t, speeds, 2)
		require.InDelta(t, 0.9, speeds[1], 1e-15)
	})

	t.Run("single speed", func(t *testing.T) {
		speeds, err := SpeedRange(1000, 1001, 5)
		require.NoError(t, err)
		require.Equal(t, []float64{1000}, speeds)
	})

	invalid := []struct {
		name         string
		lo, hi, step float64
	}{
		{"zero low", 0, 100, 1},
		{"negative low", -5, 100, 1},
		{"zero step", 10, 100, 0},
		{"negative step", 10, 100, -1},
		{"empty", 100, 100, 1},
		{"reversed", 100, 10, 1},
		{"nan", math.NaN(), 100, 1},
		{"infinite high", 10, math.Inf(1), 1},
		{"sample count overflows", 1, 1e300, 1e-300},
		{"too many samples", 1, 1e19, 1},
		{"just above the sample limit", 1, 1 + 1<<24 + 1, 1},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SpeedRange(tt.lo, tt.hi, tt.step)
			require.ErrorIs(t, err, errs.ErrInputShape)
		})
	}
}

func TestValidateRatedSpeed(t *testing.T) {
	require.NoError(t, validateRatedSpeed([]float64{800, 1000}, 0))
	require.NoError(t, validateRatedSpeed([]float64{800, 1000}, 1000))
	require.ErrorIs(t, validateRatedSpeed([]float64{800, 1000.5}, 1000), errs.ErrInputShape)
}

func TestReferenceSpeed(t *testing.T) {
	require.InDelta(t, 900.0, referenceSpeed([]float64{700, 900, 800}, 0), 0)
	require.InDelta(t, 1450.0, referenceSpeed([]float64{700, 900, 800}, 1450), 0)
}
