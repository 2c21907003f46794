// Package curve locates the crossings of piecewise-linear curves sampled on a
// common x axis.
//
// A crossing is bracketed wherever the sign of the difference between the two
// curves changes from one sample to the next. Each bracket is resolved exactly
// by intersecting the two line segments spanning it.
//
// # Finding crossings
//
//	points, err := curve.FindIntersections(flow, pumpHead, systemHead)
//	if err != nil {
//	    return err // errs.ErrInputShape or errs.ErrDegenerateIntersection
//	}
//	for _, p := range points {
//	    fmt.Printf("flow=%.2f head=%.2f\n", p.X, p.Y)
//	}
//
// An empty result is not an error: the curves simply never cross over the
// sampled domain. Callers that need exactly one operating point use
// FindIntersection with a TieBreak policy, which reports errs.ErrNoIntersection
// instead.
//
// # Sign buckets
//
// Zero is a sign bucket of its own. A sample where the curves touch exactly
// therefore closes one bracket and opens the next; such a touch is reported
// once. Curves that coincide over several samples produce no crossing inside
// the coincident span.
package curve
