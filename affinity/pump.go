package affinity

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/pumpcurve/curve"
	"github.com/arloliu/pumpcurve/errs"
)

// PumpCurve holds a pump's factory performance curves at rated speed, sampled
// at common flow positions.
type PumpCurve struct {
	// Flow holds the sampled flows, strictly increasing.
	Flow []float64
	// Head holds the differential head (or pressure) at each flow.
	Head []float64
	// Power holds the power draw at each flow. It may be nil when only flow
	// and speed are of interest.
	Power []float64
}

// HasPower reports whether the curve carries power samples.
func (p PumpCurve) HasPower() bool {
	return p.Power != nil
}

// Validate checks that Flow is strictly increasing with at least two finite
// samples and that Head, and Power when present or required, are aligned
// with it.
func (p PumpCurve) Validate(requirePower bool) error {
	if _, err := curve.NewSampled(p.Flow, p.Head); err != nil {
		return fmt.Errorf("pump head curve: %w", err)
	}
	if requirePower && !p.HasPower() {
		return fmt.Errorf("%w: pump power curve is required", errs.ErrInputShape)
	}
	if p.HasPower() {
		if _, err := curve.NewSampled(p.Flow, p.Power); err != nil {
			return fmt.Errorf("pump power curve: %w", err)
		}
	}

	return nil
}

// Clone returns a deep copy of the curve.
func (p PumpCurve) Clone() PumpCurve {
	c := PumpCurve{
		Flow: append([]float64(nil), p.Flow...),
		Head: append([]float64(nil), p.Head...),
	}
	if p.HasPower() {
		c.Power = append([]float64(nil), p.Power...)
	}

	return c
}

// Scale applies the affinity laws for the speed fraction f: flow·f, head·f²
// and power·f³. The input curve is not modified.
func Scale(p PumpCurve, f float64) PumpCurve {
	out := PumpCurve{
		Flow: make([]float64, len(p.Flow)),
		Head: make([]float64, len(p.Head)),
	}
	if p.HasPower() {
		out.Power = make([]float64, len(p.Power))
	}
	scaleInto(out, p, f)

	return out
}

// scaleInto writes the affinity-scaled curve of src into dst, whose slices
// must already have the lengths of src. A nil dst.Power is left untouched.
func scaleInto(dst, src PumpCurve, f float64) {
	floats.ScaleTo(dst.Flow, f, src.Flow)
	floats.ScaleTo(dst.Head, f*f, src.Head)
	if dst.Power != nil && src.HasPower() {
		floats.ScaleTo(dst.Power, f*f*f, src.Power)
	}
}

// QuadraticSystem returns the classic system curve H(Q) = static + k·Q², for
// use with WithSystemHeadFunc.
func QuadraticSystem(static, k float64) func(flow float64) float64 {
	return func(flow float64) float64 {
		return static + k*flow*flow
	}
}
