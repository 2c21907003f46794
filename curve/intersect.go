package curve

import (
	"fmt"
	"iter"

	"github.com/arloliu/pumpcurve/errs"
)

// Brackets yields every index i for which the sign of y1-y2 differs between
// samples i and i+1, in increasing order. Zero counts as its own sign.
//
// y1 and y2 must have equal length; extra samples of the longer slice are
// ignored.
func Brackets(y1, y2 []float64) iter.Seq[int] {
	return func(yield func(int) bool) {
		n := min(len(y1), len(y2))
		if n < 2 {
			return
		}

		prev := sign(y1[0] - y2[0])
		for i := 1; i < n; i++ {
			cur := sign(y1[i] - y2[i])
			if cur != prev && !yield(i-1) {
				return
			}
			prev = cur
		}
	}
}

// Intercept returns the intersection of the infinite line through a1 and a2
// with the infinite line through b1 and b2.
//
// Each line is written as A·x + B·y = C with A = Δy, B = -Δx and
// C = x1·y2 - x2·y1, and the 2×2 system is solved by Cramer's rule.
// Parallel or coincident lines yield errs.ErrDegenerateIntersection.
func Intercept(a1, a2, b1, b2 Point) (Point, error) {
	aA, aB, aC := line(a1, a2)
	bA, bB, bC := line(b1, b2)

	d := aA*bB - aB*bA
	if d == 0 {
		return Point{}, fmt.Errorf("%w: segments %v-%v and %v-%v", errs.ErrDegenerateIntersection, a1, a2, b1, b2)
	}

	p := Point{
		X: (aC*bB - aB*bC) / d,
		Y: (aA*bC - aC*bA) / d,
	}
	if !isFinite(p.X) || !isFinite(p.Y) {
		return Point{}, fmt.Errorf("%w: non-finite solution for segments %v-%v and %v-%v", errs.ErrDegenerateIntersection, a1, a2, b1, b2)
	}

	return p, nil
}

// line returns the implicit form A·x + B·y = C of the line through p1 and p2.
func line(p1, p2 Point) (a, b, c float64) {
	a = p2.Y - p1.Y
	b = p1.X - p2.X
	c = p1.X*p2.Y - p2.X*p1.Y

	return a, b, c
}

// FindIntersections returns every crossing of the piecewise-linear curves
// (x, y1) and (x, y2), in increasing x.
//
// x must be strictly increasing and y1, y2 aligned with it, with at least two
// samples; otherwise errs.ErrInputShape is returned. A bracket whose two
// segments are parallel yields errs.ErrDegenerateIntersection.
//
// No crossing is not an error: the result is then empty.
func FindIntersections(x, y1, y2 []float64) ([]Point, error) {
	if err := validateAxis(x, y1, y2); err != nil {
		return nil, err
	}

	var points []Point
	touched := -1 // sample index last reported as an exact touch
	for i := range Brackets(y1, y2) {
		// the touch at sample i already closed the previous bracket
		if i == touched {
			continue
		}

		p, err := Intercept(
			Point{X: x[i], Y: y1[i]}, Point{X: x[i+1], Y: y1[i+1]},
			Point{X: x[i], Y: y2[i]}, Point{X: x[i+1], Y: y2[i+1]},
		)
		if err != nil {
			return nil, fmt.Errorf("bracket [%d, %d]: %w", i, i+1, err)
		}
		points = append(points, p)

		if y1[i+1] == y2[i+1] {
			touched = i + 1
		}
	}

	return points, nil
}

// FindIntersection returns the single crossing of (x, y1) and (x, y2) chosen
// by tb. It fails with errs.ErrNoIntersection when the curves never cross.
func FindIntersection(x, y1, y2 []float64, tb TieBreak) (Point, error) {
	points, err := FindIntersections(x, y1, y2)
	if err != nil {
		return Point{}, err
	}

	return Select(points, tb)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
