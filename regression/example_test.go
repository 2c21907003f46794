package regression_test

import (
	"fmt"
	"log"

	"github.com/arloliu/pumpcurve/regression"
)

// ExampleFit fits a quadratic through exact samples of 2x² + 3x + 1.
func ExampleFit() {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 6, 15, 28, 45}

	p, err := regression.Fit(x, y, 2)
	if err != nil {
		log.Fatal(err)
	}

	c := p.Coefficients()
	fmt.Printf("Degree: %d\n", p.Degree())
	fmt.Printf("Coefficients: %.2f %.2f %.2f\n", c[0], c[1], c[2])
	fmt.Printf("R²: %.4f\n", p.RSquared())
	fmt.Printf("y(5) = %.2f\n", p.Evaluate(5))

	// Output:
	// Degree: 2
	// Coefficients: 2.00 3.00 1.00
	// R²: 1.0000
	// y(5) = 66.00
}

// ExampleNewPolynomial rebuilds a curve from stored coefficients.
func ExampleNewPolynomial() {
	p, err := regression.NewPolynomial(-0.001, 1.2, 15)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(p.Formula())
	fmt.Printf("y(100) = %.1f\n", p.Evaluate(100))

	// Output:
	// y = -0.001x² + 1.2x + 15
	// y(100) = 125.0
}
