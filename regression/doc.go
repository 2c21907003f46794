// Package regression fits low-order polynomials to sampled data in the
// least-squares sense.
//
// The fitted Polynomial is the artifact handed back to callers of the affinity
// scaling engine: speed→flow, speed→power and flow→speed curves are all
// Polynomials. A Polynomial is immutable once fit.
//
// # Basic Usage
//
//	p, err := regression.Fit(rpm, flow, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.Formula())       // y = -0.000123x² + 0.51x - 120.4
//	estimate := p.Evaluate(600.0)  // flow at 600 rpm
//
// Coefficients are ordered highest degree first, so a degree-2 fit returns
// [a, b, c] for y = a·x² + b·x + c.
//
// # Method
//
// The design (Vandermonde) matrix is built with each column scaled to unit
// norm, which keeps the problem well conditioned for inputs such as pump
// speeds in the hundreds or thousands of rpm, and is solved by QR
// factorisation. Goodness of fit is reported as R² and RMSE.
//
// # Failure Modes
//
//   - errs.ErrInputShape: mismatched lengths, negative degree, non-finite samples
//   - errs.ErrInsufficientData: no samples at all
//   - errs.ErrUnderdeterminedFit: fewer than degree+1 samples, or fewer than
//     degree+1 distinct x values
package regression
