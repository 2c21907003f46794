package hash

import (
	"math"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
)

func TestFloat64s(t *testing.T) {
	t.Run("empty input matches empty digest", func(t *testing.T) {
		assert.Equal(t, xxhash.Sum64(nil), Float64s())
	})

	t.Run("deterministic", func(t *testing.T) {
		a := Float64s(515, 516, 517)
		b := Float64s(515, 516, 517)
		assert.Equal(t, a, b)
	})

	t.Run("order sensitive", func(t *testing.T) {
		assert.NotEqual(t, Float64s(1, 2, 3), Float64s(3, 2, 1))
	})

	t.Run("sign of zero", func(t *testing.T) {
		assert.NotEqual(t, Float64s(0), Float64s(math.Copysign(0, -1)))
	})

	t.Run("length sensitive", func(t *testing.T) {
		assert.NotEqual(t, Float64s(0), Float64s(0, 0))
	})
}

func BenchmarkFloat64s(b *testing.B) {
	speeds := make([]float64, 155)
	for i := range speeds {
		speeds[i] = 515 + float64(i)
	}
	b.ResetTimer()
	for b.Loop() {
		Float64s(speeds...)
	}
}
