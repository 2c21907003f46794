// Package errs defines the sentinel errors shared by the pumpcurve packages.
//
// Every failure is reported as one of these values, usually wrapped with
// context via fmt.Errorf and "%w", so callers match them with errors.Is:
//
//	flow, err := curve.FindIntersection(x, pump, system, curve.LowestFlow)
//	if errors.Is(err, errs.ErrNoIntersection) {
//	    // the curves never cross over the sampled domain
//	}
//
// No operation converts a failure into a NaN or infinite result.
package errs

import "errors"

var (
	// ErrInputShape is returned for mismatched or too short input arrays,
	// non-finite samples, a non-increasing x axis, or an empty or
	// non-positive speed range.
	ErrInputShape = errors.New("invalid input shape")

	// ErrDegenerateIntersection is returned when a bracketed sign change
	// yields two parallel segments (zero determinant).
	ErrDegenerateIntersection = errors.New("degenerate intersection: parallel segments")

	// ErrNoIntersection is returned when exactly one crossing is required
	// but the curves never cross over the sampled domain.
	ErrNoIntersection = errors.New("no intersection found")

	// ErrAmbiguousIntersection is returned under the RequireUnique tie-break
	// when more than one crossing exists.
	ErrAmbiguousIntersection = errors.New("multiple intersections found")

	// ErrUnderdeterminedFit is returned when fewer samples than degree+1
	// (or fewer distinct abscissae) are available to fit a polynomial.
	ErrUnderdeterminedFit = errors.New("underdetermined polynomial fit")

	// ErrInsufficientData is returned when no samples remain to fit at all,
	// e.g. every speed of a range was skipped for lack of an operating point.
	ErrInsufficientData = errors.New("insufficient data")
)
