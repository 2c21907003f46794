package regression

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/pumpcurve/errs"
)

// Polynomial is a fitted (or explicitly constructed) polynomial curve.
//
// The zero value is not usable; obtain a Polynomial from Fit or NewPolynomial.
type Polynomial struct {
	coeffs   []float64 // highest degree first
	rSquared float64
	rmse     float64
}

// NewPolynomial creates a polynomial from coefficients ordered highest degree
// first, e.g. NewPolynomial(2, 3, 1) is 2x² + 3x + 1.
//
// It is the counterpart of Fit for curves whose coefficients are already
// known, such as ones stored in a configuration file. The goodness-of-fit
// statistics of such a polynomial are zero.
func NewPolynomial(coeffs ...float64) (*Polynomial, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("%w: polynomial needs at least one coefficient", errs.ErrInputShape)
	}
	for i, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("%w: coefficient %d is not finite", errs.ErrInputShape, i)
		}
	}

	return &Polynomial{coeffs: append([]float64(nil), coeffs...)}, nil
}

// Degree returns the degree of the polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns a copy of the coefficients, highest degree first.
func (p *Polynomial) Coefficients() []float64 {
	return append([]float64(nil), p.coeffs...)
}

// Evaluate returns the value of the polynomial at x.
func (p *Polynomial) Evaluate(x float64) float64 {
	y := 0.0
	for _, c := range p.coeffs {
		y = y*x + c
	}

	return y
}

// EvaluateAll evaluates the polynomial at every element of xs.
func (p *Polynomial) EvaluateAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.Evaluate(x)
	}

	return out
}

// RSquared returns the coefficient of determination of the fit (1 is a
// perfect fit). It is 0 for polynomials built with NewPolynomial.
func (p *Polynomial) RSquared() float64 {
	return p.rSquared
}

// RMSE returns the root mean square error of the fit.
func (p *Polynomial) RMSE() float64 {
	return p.rmse
}

// Formula returns a human-readable representation such as "y = 2x² - 3x + 1".
func (p *Polynomial) Formula() string {
	var sb strings.Builder
	sb.WriteString("y =")

	first := true
	for i, c := range p.coeffs {
		if c == 0 {
			continue
		}
		power := len(p.coeffs) - 1 - i

		switch {
		case first && c < 0:
			sb.WriteString(" -")
		case !first && c < 0:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		default:
			sb.WriteString(" ")
		}
		first = false

		mag := math.Abs(c)
		if mag != 1 || power == 0 {
			fmt.Fprintf(&sb, "%.6g", mag)
		}
		sb.WriteString(powerSuffix(power))
	}

	if first {
		sb.WriteString(" 0")
	}

	return sb.String()
}

// String returns a string representation of the polynomial.
func (p *Polynomial) String() string {
	return fmt.Sprintf("Polynomial{Degree: %d, R²: %.4f, RMSE: %.4f, Formula: %s}",
		p.Degree(), p.rSquared, p.rmse, p.Formula())
}

func powerSuffix(power int) string {
	switch power {
	case 0:
		return ""
	case 1:
		return "x"
	case 2:
		return "x²"
	case 3:
		return "x³"
	default:
		return fmt.Sprintf("x^%d", power)
	}
}
