// Package affinity predicts the operating point of a variable-speed
// centrifugal pump from its rated-speed performance curves and the system
// curve it feeds.
//
// For every commanded speed the pump curve is rescaled with the affinity laws
// (flow ∝ speed, head ∝ speed², power ∝ speed³), intersected with the system
// curve, and the resulting samples are fitted with low-order polynomials:
//
//   - flow as a function of speed (degree 2)
//   - power as a function of speed (degree 3)
//   - speed as a function of flow (degree 2), fitted independently rather than
//     by inverting the flow curve
//
// # Basic Usage
//
//	pump := affinity.PumpCurve{Flow: flow, Head: head, Power: kW}
//	speeds, _ := affinity.SpeedRange(515, 670, 1)
//
//	flowOfSpeed, powerOfSpeed, err := affinity.SpeedToFlowAndPower(pump, system, speeds)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("flow at 600 rpm: %.1f\n", flowOfSpeed.Evaluate(600))
//
// # Speed Fractions
//
// Speeds are normalised by the largest speed of the supplied range unless
// WithRatedSpeed names the pump's nameplate speed. Pass a range whose maximum
// is the nameplate speed, or use WithRatedSpeed, when fractions must be
// relative to full speed.
//
// # Missing Operating Points
//
// A speed at which the scaled pump curve never meets the system curve is
// skipped and reported in Result.Skipped; it contributes no sample to the fits.
// Every other failure aborts the whole computation. If no speed yields an
// operating point, errs.ErrInsufficientData is returned; if fewer samples than
// degree+1 remain, errs.ErrUnderdeterminedFit.
//
// # System Curves
//
// By default the system curve is an array aligned index by index with the pump
// curve samples and held fixed across speeds, which is exact for a flat
// (static-head) system. WithSystemHeadFunc instead evaluates a system curve at
// the scaled flows of every speed sample; QuadraticSystem and
// curve.Sampled.Func build such functions.
package affinity
