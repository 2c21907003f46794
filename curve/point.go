package curve

import "fmt"

// Point is an (x, y) pair, e.g. the flow and head at which a pump curve
// meets a system curve.
type Point struct {
	X float64
	Y float64
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
