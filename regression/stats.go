package regression

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// calculateRSquared calculates the coefficient of determination.
//
// Formula: R² = 1 - (SS_res / SS_tot)
//   - SS_res: Sum of squares of residuals (observed - predicted)²
//   - SS_tot: Total sum of squares (observed - mean)²
//
// A constant observed series has no variance to explain; R² is then 1 when
// the prediction matches it exactly and 0 otherwise, never NaN.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	if floats.Min(observed) == floats.Max(observed) {
		if floats.Equal(observed, predicted) {
			return 1
		}

		return 0
	}

	return stat.RSquaredFrom(predicted, observed, nil)
}

// calculateRMSE calculates the root mean square error: √(Σ(observed - predicted)² / n).
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	return floats.Distance(observed, predicted, 2) / math.Sqrt(float64(len(observed)))
}
