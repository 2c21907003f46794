package affinity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pumpcurve/errs"
)

func TestScale(t *testing.T) {
	p := PumpCurve{
		Flow:  []float64{0, 10, 20},
		Head:  []float64{40, 36, 28},
		Power: []float64{5, 8, 10},
	}

	got := Scale(p, 0.5)
	require.InDeltaSlice(t, []float64{0, 5, 10}, got.Flow, 1e-12)
	require.InDeltaSlice(t, []float64{10, 9, 7}, got.Head, 1e-12)
	require.InDeltaSlice(t, []float64{0.625, 1, 1.25}, got.Power, 1e-12)

	// input untouched
	require.Equal(t, []float64{0, 10, 20}, p.Flow)
	require.Equal(t, []float64{40, 36, 28}, p.Head)

	t.Run("without power", func(t *testing.T) {
		p.Power = nil
		got := Scale(p, 2)
		require.Nil(t, got.Power)
		require.InDeltaSlice(t, []float64{160, 144, 112}, got.Head, 1e-12)
	})

	t.Run("unit fraction", func(t *testing.T) {
		got := Scale(linearPump(), 1)
		require.Equal(t, linearPump(), got)
	})
}

func TestPumpCurve_Validate(t *testing.T) {
	require.NoError(t, linearPump().Validate(true))

	noPower := linearPump()
	noPower.Power = nil
	require.NoError(t, noPower.Validate(false))
	require.ErrorIs(t, noPower.Validate(true), errs.ErrInputShape)

	tests := []struct {
		name string
		pump PumpCurve
	}{
		{"single sample", PumpCurve{Flow: []float64{0}, Head: []float64{1}}},
		{"head misaligned", PumpCurve{Flow: []float64{0, 1, 2}, Head: []float64{1, 2}}},
		{"power misaligned", PumpCurve{Flow: []float64{0, 1}, Head: []float64{2, 1}, Power: []float64{1}}},
		{"duplicate flow", PumpCurve{Flow: []float64{0, 1, 1}, Head: []float64{3, 2, 1}}},
		{"nan head", PumpCurve{Flow: []float64{0, 1}, Head: []float64{math.NaN(), 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.pump.Validate(false), errs.ErrInputShape)
		})
	}
}

func TestPumpCurve_Clone(t *testing.T) {
	p := linearPump()
	c := p.Clone()
	require.Equal(t, p, c)

	c.Flow[0] = -1
	c.Head[0] = -1
	c.Power[0] = -1
	require.InDelta(t, 0.0, p.Flow[0], 0)
	require.InDelta(t, 100.0, p.Head[0], 0)
	require.InDelta(t, 10.0, p.Power[0], 0)

	p.Power = nil
	require.Nil(t, p.Clone().Power)
}

func TestQuadraticSystem(t *testing.T) {
	sys := QuadraticSystem(5, 0.02)
	require.InDelta(t, 5.0, sys(0), 0)
	require.InDelta(t, 7.0, sys(10), 1e-12)
	require.InDelta(t, 205.0, sys(100), 1e-12)
}
