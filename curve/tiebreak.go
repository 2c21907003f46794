package curve

import (
	"fmt"

	"github.com/arloliu/pumpcurve/errs"
)

// TieBreak decides which crossing to keep when a single operating point is
// required but several exist, e.g. on the unstable rising part of a pump curve.
type TieBreak uint8

const (
	// LowestFlow keeps the crossing with the smallest x. This is the default.
	LowestFlow TieBreak = iota
	// HighestFlow keeps the crossing with the largest x.
	HighestFlow
	// RequireUnique rejects more than one crossing with errs.ErrAmbiguousIntersection.
	RequireUnique
)

// String returns the string representation of the tie-break policy.
func (tb TieBreak) String() string {
	switch tb {
	case LowestFlow:
		return "lowest-flow"
	case HighestFlow:
		return "highest-flow"
	case RequireUnique:
		return "require-unique"
	default:
		return "unknown"
	}
}

// Valid reports whether tb is a known policy.
func (tb TieBreak) Valid() bool {
	return tb <= RequireUnique
}

// Select picks one point from points, which must be ordered by increasing x
// as returned by FindIntersections.
//
// An empty slice yields errs.ErrNoIntersection.
func Select(points []Point, tb TieBreak) (Point, error) {
	if len(points) == 0 {
		return Point{}, errs.ErrNoIntersection
	}

	switch tb {
	case LowestFlow:
		return points[0], nil
	case HighestFlow:
		return points[len(points)-1], nil
	case RequireUnique:
		if len(points) > 1 {
			return Point{}, fmt.Errorf("%w: %d crossings, first at x=%g", errs.ErrAmbiguousIntersection, len(points), points[0].X)
		}

		return points[0], nil
	default:
		return Point{}, fmt.Errorf("%w: unknown tie-break policy %d", errs.ErrInputShape, tb)
	}
}
