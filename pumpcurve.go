// Package pumpcurve predicts the operating point of a variable-speed
// centrifugal pump driven by a VFD.
//
// Given a pump's factory curves (head and power against flow at rated speed)
// and a system curve, it scales the pump curves with the affinity laws over a
// range of speeds, finds where each scaled pump curve meets the system curve,
// and fits polynomial models that map speed to flow, speed to power and flow
// back to speed.
//
// # Core Features
//
//   - Piecewise-linear curve intersection with a configurable tie-break
//   - Affinity scaling (flow·f, head·f², power·f³) over a commanded speed range
//   - Least-squares polynomial fits with R² and RMSE
//   - Sentinel errors for every failure mode, see package errs
//   - Optional concurrent per-speed evaluation and result memoisation
//
// # Basic Usage
//
// Fitting flow and power against speed:
//
//	import "github.com/arloliu/pumpcurve"
//
//	speeds, _ := affinity.SpeedRange(515, 670, 1)
//	flowOfSpeed, powerOfSpeed, err := pumpcurve.SpeedToFlowAndPower(
//	    pumpFlow, pumpHead, pumpPower, systemHead, speeds)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(flowOfSpeed.Formula())
//	fmt.Printf("%.1f kW at 600 rpm\n", powerOfSpeed.Evaluate(600))
//
// Finding the speed for a target flow:
//
//	speedOfFlow, err := pumpcurve.FlowToSpeed(pumpFlow, pumpHead, systemHead, speeds)
//	rpm := speedOfFlow.Evaluate(50)
//
// # Package Structure
//
// This package provides flat-slice wrappers around the curve, regression and
// affinity packages for the most common use cases. For operating points,
// tie-break policies, per-sample system curves or memoised simulation, use
// the affinity package directly.
package pumpcurve

import (
	"github.com/arloliu/pumpcurve/affinity"
	"github.com/arloliu/pumpcurve/curve"
	"github.com/arloliu/pumpcurve/regression"
)

// FindIntersections returns every point where the piecewise-linear curves
// (x, y1) and (x, y2) cross, in increasing x.
//
// Parameters:
//   - x: Shared sample positions, strictly increasing
//   - y1, y2: Curve values at each x
//
// Returns:
//   - []curve.Point: The crossings; empty when the curves never cross
//   - error: errs.ErrInputShape for misaligned or non-finite input,
//     errs.ErrDegenerateIntersection when a bracket has no unique crossing
//
// Example:
//
//	points, err := pumpcurve.FindIntersections(flow, pumpHead, systemHead)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range points {
//	    fmt.Printf("operating point: %s\n", p)
//	}
func FindIntersections(x, y1, y2 []float64) ([]curve.Point, error) {
	return curve.FindIntersections(x, y1, y2)
}

// SpeedToFlowAndPower fits flow and power draw as functions of pump speed.
//
// For every speed the pump curves are scaled with the affinity laws relative
// to the largest speed of the range (or WithRatedSpeed), intersected with the
// system curve, and the power draw at the crossing is read from a flow→power
// curve refitted at that speed. Speeds without a crossing are skipped.
//
// Parameters:
//   - pumpFlow: Pump flow samples at rated speed, strictly increasing
//   - pumpHead: Pump head at each flow sample
//   - pumpPower: Pump power draw at each flow sample
//   - systemHead: System head at each flow sample, held fixed across speeds
//   - speeds: Speed range, e.g. from affinity.SpeedRange
//   - opts: Optional configuration (see affinity.Option)
//
// Returns:
//   - flowOfSpeed: Quadratic fit of flow against speed
//   - powerOfSpeed: Cubic fit of power against speed
//   - err: errs.ErrInputShape, errs.ErrDegenerateIntersection,
//     errs.ErrInsufficientData or errs.ErrUnderdeterminedFit
func SpeedToFlowAndPower(pumpFlow, pumpHead, pumpPower, systemHead, speeds []float64, opts ...affinity.Option) (flowOfSpeed, powerOfSpeed *regression.Polynomial, err error) {
	pump := affinity.PumpCurve{Flow: pumpFlow, Head: pumpHead, Power: pumpPower}

	return affinity.SpeedToFlowAndPower(pump, systemHead, speeds, opts...)
}

// FlowToSpeed fits pump speed as a function of flow, the inverse question a
// controller asks when it needs a target flow.
//
// The operating points are those SpeedToFlowAndPower uses; the fit is made
// directly on (flow, speed) pairs.
//
// Parameters:
//   - pumpFlow: Pump flow samples at rated speed, strictly increasing
//   - pumpHead: Pump head at each flow sample
//   - systemHead: System head at each flow sample, held fixed across speeds
//   - speeds: Speed range, e.g. from affinity.SpeedRange
//   - opts: Optional configuration (see affinity.Option)
//
// Returns:
//   - *regression.Polynomial: Quadratic fit of speed against flow
//   - error: as for SpeedToFlowAndPower
func FlowToSpeed(pumpFlow, pumpHead, systemHead, speeds []float64, opts ...affinity.Option) (*regression.Polynomial, error) {
	pump := affinity.PumpCurve{Flow: pumpFlow, Head: pumpHead}

	return affinity.FlowToSpeed(pump, systemHead, speeds, opts...)
}
