package affinity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/pumpcurve/errs"
)

// maxSpeedSamples bounds the number of speeds SpeedRange produces.
const maxSpeedSamples = 1 << 24

// SpeedRange returns the speeds lo, lo+step, ... strictly below hi, the
// half-open range a VFD operating window is usually described with.
//
// lo must be positive, step positive and hi greater than lo, and the range
// may hold at most 1<<24 speeds.
func SpeedRange(lo, hi, step float64) ([]float64, error) {
	if !isFinite(lo) || !isFinite(hi) || !isFinite(step) {
		return nil, fmt.Errorf("%w: speed range bounds must be finite", errs.ErrInputShape)
	}
	if lo <= 0 || step <= 0 || hi <= lo {
		return nil, fmt.Errorf("%w: invalid speed range [%g, %g) step %g", errs.ErrInputShape, lo, hi, step)
	}

	span := math.Ceil((hi - lo) / step)
	if math.IsInf(span, 0) || span > maxSpeedSamples {
		return nil, fmt.Errorf("%w: speed range [%g, %g) step %g exceeds %d samples", errs.ErrInputShape, lo, hi, step, maxSpeedSamples)
	}

	n := int(span)
	speeds := make([]float64, 0, n)
	for i := range n {
		// multiply rather than accumulate to avoid drift over long ranges
		s := lo + float64(i)*step
		if s >= hi {
			break
		}
		speeds = append(speeds, s)
	}

	return speeds, nil
}

// validateSpeeds checks that speeds is non-empty and every speed is finite
// and positive.
func validateSpeeds(speeds []float64) error {
	if len(speeds) == 0 {
		return fmt.Errorf("%w: empty speed range", errs.ErrInputShape)
	}
	for i, s := range speeds {
		if !isFinite(s) || s <= 0 {
			return fmt.Errorf("%w: speed %d (%g) must be finite and positive", errs.ErrInputShape, i, s)
		}
	}

	return nil
}

// validateRatedSpeed checks that no speed exceeds a configured rated speed,
// keeping every speed fraction within (0, 1].
func validateRatedSpeed(speeds []float64, rated float64) error {
	if rated <= 0 {
		return nil
	}
	if top := floats.Max(speeds); top > rated {
		return fmt.Errorf("%w: speed %g exceeds rated speed %g", errs.ErrInputShape, top, rated)
	}

	return nil
}

// referenceSpeed returns the speed fractions are measured against.
func referenceSpeed(speeds []float64, rated float64) float64 {
	if rated > 0 {
		return rated
	}

	return floats.Max(speeds)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
