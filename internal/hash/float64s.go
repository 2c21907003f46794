// Package hash fingerprints numeric inputs with xxHash64.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Float64s computes the xxHash64 of the IEEE-754 bit patterns of values.
//
// Two sequences hash equally only when they hold the same values in the same
// order; -0 and +0 hash differently.
func Float64s(values ...float64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
