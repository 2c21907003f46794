package curve

import (
	"fmt"
	"math"
	"sort"

	"github.com/arloliu/pumpcurve/errs"
)

// Sampled is a piecewise-linear function given by samples with strictly
// increasing X.
type Sampled struct {
	X []float64
	Y []float64
}

// NewSampled validates x and y and returns them as a Sampled curve.
//
// The slices are not copied.
func NewSampled(x, y []float64) (Sampled, error) {
	if err := validateAxis(x, y); err != nil {
		return Sampled{}, err
	}

	return Sampled{X: x, Y: y}, nil
}

// Len returns the number of samples.
func (s Sampled) Len() int {
	return len(s.X)
}

// At evaluates the curve at x by linear interpolation between the two
// enclosing samples. x outside [X[0], X[Len-1]] is rejected.
func (s Sampled) At(x float64) (float64, error) {
	n := len(s.X)
	if n < 2 || len(s.Y) != n {
		return 0, fmt.Errorf("%w: sampled curve needs at least 2 aligned samples", errs.ErrInputShape)
	}
	if math.IsNaN(x) || x < s.X[0] || x > s.X[n-1] {
		return 0, fmt.Errorf("%w: x=%g outside sampled domain [%g, %g]", errs.ErrInputShape, x, s.X[0], s.X[n-1])
	}

	return s.interpolate(x), nil
}

// Func returns the curve as a function of x. Outside the sampled domain the
// first and last segments are extended linearly.
//
// The curve must have been validated (see NewSampled).
func (s Sampled) Func() func(float64) float64 {
	return s.interpolate
}

func (s Sampled) interpolate(x float64) float64 {
	n := len(s.X)
	// index of the segment [i, i+1] holding x, clamped to the end segments
	i := sort.SearchFloat64s(s.X, x) - 1
	i = max(0, min(i, n-2))

	return linearInterp(x, s.X[i], s.Y[i], s.X[i+1], s.Y[i+1])
}

func linearInterp(x, x0, y0, x1, y1 float64) float64 {
	if x0 == x1 {
		return y0
	}

	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// validateAxis checks that x is strictly increasing and every ys slice is
// aligned with it. All values must be finite.
func validateAxis(x []float64, ys ...[]float64) error {
	if len(x) < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %d", errs.ErrInputShape, len(x))
	}
	for k, y := range ys {
		if len(y) != len(x) {
			return fmt.Errorf("%w: curve %d has %d samples, x axis has %d", errs.ErrInputShape, k+1, len(y), len(x))
		}
	}

	for i, v := range x {
		if !isFinite(v) {
			return fmt.Errorf("%w: x[%d] is not finite", errs.ErrInputShape, i)
		}
		if i > 0 && v <= x[i-1] {
			return fmt.Errorf("%w: x axis not strictly increasing at index %d (%g after %g)", errs.ErrInputShape, i, v, x[i-1])
		}
	}
	for k, y := range ys {
		for i, v := range y {
			if !isFinite(v) {
				return fmt.Errorf("%w: curve %d sample %d is not finite", errs.ErrInputShape, k+1, i)
			}
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
