package affinity

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/pumpcurve/curve"
	"github.com/arloliu/pumpcurve/errs"
	"github.com/arloliu/pumpcurve/internal/pool"
	"github.com/arloliu/pumpcurve/regression"
)

// OperatingPoint is the predicted operating point of the pump at one speed.
type OperatingPoint struct {
	// Speed is the commanded speed, in the unit of the supplied range (rpm).
	Speed float64
	// Fraction is Speed relative to the reference speed.
	Fraction float64
	// Flow is the flow at which the scaled pump curve meets the system curve.
	Flow float64
	// Head is the head at that crossing.
	Head float64
	// Power is the power draw at Flow, from the flow→power curve refitted at
	// this speed. It is zero when the pump curve carries no power samples.
	Power float64
}

// Result is the outcome of an affinity scaling run.
type Result struct {
	// FlowOfSpeed maps speed to flow.
	FlowOfSpeed *regression.Polynomial
	// PowerOfSpeed maps speed to power; nil when the pump curve has no power samples.
	PowerOfSpeed *regression.Polynomial
	// SpeedOfFlow maps flow to speed.
	SpeedOfFlow *regression.Polynomial
	// Points holds the retained operating points in the order of the speed range.
	Points []OperatingPoint
	// Skipped holds the speeds at which no operating point exists.
	Skipped []float64
	// ReferenceSpeed is the speed fractions were measured against.
	ReferenceSpeed float64
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.FlowOfSpeed == nil {
		return "Result{FlowOfSpeed: nil}"
	}

	return fmt.Sprintf("Result{Points: %d, Skipped: %d, FlowOfSpeed: %s}",
		len(r.Points), len(r.Skipped), r.FlowOfSpeed.Formula())
}

// SpeedToFlowAndPower fits flow and power as functions of speed.
//
// Parameters:
//   - pump: Rated-speed pump curves; Power is required
//   - systemHead: System head at each pump flow sample, held fixed across
//     speeds (ignored with WithSystemHeadFunc)
//   - speeds: Speed range, non-empty and positive
//   - opts: Optional configuration (see Option)
//
// Returns:
//   - flowOfSpeed: Degree-2 least-squares fit of (speed, flow)
//   - powerOfSpeed: Degree-3 least-squares fit of (speed, power)
//   - err: errs.ErrInputShape, errs.ErrDegenerateIntersection,
//     errs.ErrInsufficientData or errs.ErrUnderdeterminedFit
//
// Example:
//
//	flowOfSpeed, powerOfSpeed, err := affinity.SpeedToFlowAndPower(pump, system, speeds)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	kW := powerOfSpeed.Evaluate(600)
func SpeedToFlowAndPower(pump PumpCurve, systemHead, speeds []float64, opts ...Option) (flowOfSpeed, powerOfSpeed *regression.Polynomial, err error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	if err = pump.Validate(true); err != nil {
		return nil, nil, err
	}

	s, err := collect(pump, systemHead, speeds, cfg, true)
	if err != nil {
		return nil, nil, err
	}
	if flowOfSpeed, err = s.fitFlow(cfg.FlowDegree); err != nil {
		return nil, nil, err
	}
	if powerOfSpeed, err = s.fitPower(cfg.PowerDegree); err != nil {
		return nil, nil, err
	}

	return flowOfSpeed, powerOfSpeed, nil
}

// FlowToSpeed fits speed as a function of flow over the same operating points
// SpeedToFlowAndPower uses. The fit is made directly on (flow, speed) samples,
// not by inverting the speed→flow polynomial. pump.Power is not used.
func FlowToSpeed(pump PumpCurve, systemHead, speeds []float64, opts ...Option) (*regression.Polynomial, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := pump.Validate(false); err != nil {
		return nil, err
	}

	s, err := collect(pump, systemHead, speeds, cfg, false)
	if err != nil {
		return nil, err
	}

	return s.fitSpeed(cfg.SpeedDegree)
}

// Simulate runs the scaling loop once and fits all three curves. PowerOfSpeed
// is fitted only when the pump curve carries power samples.
func Simulate(pump PumpCurve, systemHead, speeds []float64, opts ...Option) (*Result, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := pump.Validate(false); err != nil {
		return nil, err
	}

	return simulate(pump, systemHead, speeds, cfg)
}

// OperatingPoints returns the operating point at every speed of the range
// where one exists, and the speeds where none does. No curve is fitted.
func OperatingPoints(pump PumpCurve, systemHead, speeds []float64, opts ...Option) (points []OperatingPoint, skipped []float64, err error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	if err := pump.Validate(false); err != nil {
		return nil, nil, err
	}

	s, err := sampleAll(pump, systemHead, speeds, cfg, pump.HasPower())
	if err != nil {
		return nil, nil, err
	}

	return s.points, s.skipped, nil
}

func simulate(pump PumpCurve, systemHead, speeds []float64, cfg ScaleConfig) (*Result, error) {
	s, err := collect(pump, systemHead, speeds, cfg, pump.HasPower())
	if err != nil {
		return nil, err
	}

	res := &Result{Points: s.points, Skipped: s.skipped, ReferenceSpeed: s.reference}
	if res.FlowOfSpeed, err = s.fitFlow(cfg.FlowDegree); err != nil {
		return nil, err
	}
	if res.SpeedOfFlow, err = s.fitSpeed(cfg.SpeedDegree); err != nil {
		return nil, err
	}
	if pump.HasPower() {
		if res.PowerOfSpeed, err = s.fitPower(cfg.PowerDegree); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// samples accumulates the operating points of one scaling run.
type samples struct {
	points    []OperatingPoint
	skipped   []float64
	reference float64
}

// collect runs the scaling loop and requires at least one operating point.
func collect(pump PumpCurve, systemHead, speeds []float64, cfg ScaleConfig, withPower bool) (*samples, error) {
	s, err := sampleAll(pump, systemHead, speeds, cfg, withPower)
	if err != nil {
		return nil, err
	}
	if len(s.points) == 0 {
		return nil, fmt.Errorf("%w: no operating point at any of %d speeds", errs.ErrInsufficientData, len(speeds))
	}

	return s, nil
}

func (s *samples) fitFlow(degree int) (*regression.Polynomial, error) {
	p, err := regression.Fit(s.column(speedOf), s.column(flowOf), degree)
	if err != nil {
		return nil, fmt.Errorf("speed→flow fit: %w", err)
	}

	return p, nil
}

func (s *samples) fitPower(degree int) (*regression.Polynomial, error) {
	p, err := regression.Fit(s.column(speedOf), s.column(powerOf), degree)
	if err != nil {
		return nil, fmt.Errorf("speed→power fit: %w", err)
	}

	return p, nil
}

func (s *samples) fitSpeed(degree int) (*regression.Polynomial, error) {
	p, err := regression.Fit(s.column(flowOf), s.column(speedOf), degree)
	if err != nil {
		return nil, fmt.Errorf("flow→speed fit: %w", err)
	}

	return p, nil
}

func speedOf(p OperatingPoint) float64 { return p.Speed }
func flowOf(p OperatingPoint) float64  { return p.Flow }
func powerOf(p OperatingPoint) float64 { return p.Power }

func (s *samples) column(field func(OperatingPoint) float64) []float64 {
	out := make([]float64, len(s.points))
	for i, p := range s.points {
		out[i] = field(p)
	}

	return out
}

// sampleAll evaluates every speed of the range. A speed without crossing is
// recorded as skipped; any other failure aborts the run.
func sampleAll(pump PumpCurve, systemHead, speeds []float64, cfg ScaleConfig, withPower bool) (*samples, error) {
	if err := validateSpeeds(speeds); err != nil {
		return nil, err
	}
	if err := validateRatedSpeed(speeds, cfg.RatedSpeed); err != nil {
		return nil, err
	}
	if cfg.SystemHead == nil && len(systemHead) != len(pump.Flow) {
		return nil, fmt.Errorf("%w: system curve has %d samples, pump curve has %d", errs.ErrInputShape, len(systemHead), len(pump.Flow))
	}

	e := &evaluator{
		pump:      pump,
		system:    systemHead,
		cfg:       cfg,
		reference: referenceSpeed(speeds, cfg.RatedSpeed),
		withPower: withPower && pump.HasPower(),
	}

	results := make([]sampleResult, len(speeds))
	if cfg.Parallelism > 1 && len(speeds) > 1 {
		// failures are kept per index so the lowest failing speed is
		// reported, as in the sequential loop
		failures := make([]error, len(speeds))
		var g errgroup.Group
		g.SetLimit(cfg.Parallelism)
		for i, rpm := range speeds {
			g.Go(func() error {
				results[i], failures[i] = e.at(rpm)

				return nil
			})
		}
		_ = g.Wait()
		for _, err := range failures {
			if err != nil {
				return nil, err
			}
		}
	} else {
		for i, rpm := range speeds {
			var err error
			if results[i], err = e.at(rpm); err != nil {
				return nil, err
			}
		}
	}

	s := &samples{reference: e.reference}
	for i, r := range results {
		if !r.ok {
			s.skipped = append(s.skipped, speeds[i])
			continue
		}
		s.points = append(s.points, r.point)
	}

	return s, nil
}

type sampleResult struct {
	point OperatingPoint
	ok    bool
}

// evaluator computes the operating point at a single speed. It holds no
// mutable state and is safe for concurrent use.
type evaluator struct {
	pump      PumpCurve
	system    []float64
	cfg       ScaleConfig
	reference float64
	withPower bool
}

func (e *evaluator) at(rpm float64) (sampleResult, error) {
	n := len(e.pump.Flow)
	f := rpm / e.reference

	bufs, release := pool.GetFloat64Slices(4, n)
	defer release()

	scaled := PumpCurve{Flow: bufs[0], Head: bufs[1]}
	if e.withPower {
		scaled.Power = bufs[3]
	}
	scaleInto(scaled, e.pump, f)

	system := e.system
	if e.cfg.SystemHead != nil {
		system = bufs[2]
		for i, q := range scaled.Flow {
			system[i] = e.cfg.SystemHead(q)
		}
	}

	crossing, err := curve.FindIntersection(scaled.Flow, scaled.Head, system, e.cfg.TieBreak)
	if errors.Is(err, errs.ErrNoIntersection) {
		return sampleResult{}, nil
	}
	if err != nil {
		return sampleResult{}, fmt.Errorf("speed %g: %w", rpm, err)
	}

	point := OperatingPoint{
		Speed:    rpm,
		Fraction: f,
		Flow:     crossing.X,
		Head:     crossing.Y,
	}

	if e.withPower {
		local, err := regression.Fit(scaled.Flow, scaled.Power, e.cfg.LocalPowerDegree)
		if err != nil {
			return sampleResult{}, fmt.Errorf("speed %g: flow→power fit: %w", rpm, err)
		}
		point.Power = local.Evaluate(crossing.X)
	}

	return sampleResult{point: point, ok: true}, nil
}
