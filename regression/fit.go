package regression

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/pumpcurve/errs"
)

// Fit fits a polynomial of the given degree to the samples (x[i], y[i]) in
// the least-squares sense.
//
// Parameters:
//   - x: Input samples (e.g. pump speeds in rpm)
//   - y: Observed outputs aligned with x (e.g. flows)
//   - degree: Polynomial degree, at least 0
//
// Returns:
//   - *Polynomial: The fitted curve with R² and RMSE populated
//   - error: errs.ErrInputShape, errs.ErrInsufficientData or
//     errs.ErrUnderdeterminedFit
//
// The order of the samples does not affect the result.
//
// Example:
//
//	p, err := regression.Fit([]float64{0, 1, 2, 3}, []float64{1, 3, 9, 19}, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.Coefficients()) // ≈ [2 0 1]
func Fit(x, y []float64, degree int) (*Polynomial, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: negative degree %d", errs.ErrInputShape, degree)
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x samples but %d y samples", errs.ErrInputShape, len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: no samples to fit", errs.ErrInsufficientData)
	}
	for i := range x {
		if !isFinite(x[i]) || !isFinite(y[i]) {
			return nil, fmt.Errorf("%w: sample %d is not finite", errs.ErrInputShape, i)
		}
	}

	terms := degree + 1
	if len(x) < terms {
		return nil, fmt.Errorf("%w: degree %d needs %d samples, got %d", errs.ErrUnderdeterminedFit, degree, terms, len(x))
	}
	if distinct := countDistinct(x); distinct < terms {
		return nil, fmt.Errorf("%w: degree %d needs %d distinct x values, got %d", errs.ErrUnderdeterminedFit, degree, terms, distinct)
	}

	a, scale, err := scaledVandermonde(x, degree)
	if err != nil {
		return nil, err
	}

	var qr mat.QR
	qr.Factorize(a)

	c := mat.NewVecDense(terms, nil)
	if err := qr.SolveVecTo(c, false, mat.NewVecDense(len(y), slices.Clone(y))); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnderdeterminedFit, err)
	}

	coeffs := make([]float64, terms)
	for j := range terms {
		coeffs[degree-j] = c.AtVec(j) / scale[j]
	}
	for i, v := range coeffs {
		if !isFinite(v) {
			return nil, fmt.Errorf("%w: coefficient %d is not finite", errs.ErrUnderdeterminedFit, i)
		}
	}

	p := &Polynomial{coeffs: coeffs}
	predicted := p.EvaluateAll(x)
	p.rSquared = calculateRSquared(y, predicted)
	p.rmse = calculateRMSE(y, predicted)

	return p, nil
}

// scaledVandermonde builds the matrix with entries x[i]^j / scale[j], where
// scale[j] is the Euclidean norm of column j.
func scaledVandermonde(x []float64, degree int) (*mat.Dense, []float64, error) {
	n, terms := len(x), degree+1
	v := mat.NewDense(n, terms, nil)
	col := make([]float64, n)
	scale := make([]float64, terms)

	for j := range terms {
		for i, xi := range x {
			col[i] = math.Pow(xi, float64(j))
			if !isFinite(col[i]) {
				return nil, nil, fmt.Errorf("%w: x[%d]=%g overflows at degree %d", errs.ErrInputShape, i, xi, j)
			}
		}

		norm := floats.Norm(col, 2)
		if norm == 0 || !isFinite(norm) {
			norm = 1
		}
		scale[j] = norm

		floats.Scale(1/norm, col)
		v.SetCol(j, col)
	}

	return v, scale, nil
}

func countDistinct(x []float64) int {
	sorted := slices.Clone(x)
	slices.Sort(sorted)

	return len(slices.Compact(sorted))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
