package affinity

import (
	"fmt"
	"runtime"

	"github.com/arloliu/pumpcurve/curve"
	"github.com/arloliu/pumpcurve/errs"
	"github.com/arloliu/pumpcurve/internal/options"
)

// ScaleConfig holds the tunables of the affinity scaling loop.
type ScaleConfig struct {
	// TieBreak picks the operating point when a speed yields several crossings.
	TieBreak curve.TieBreak
	// RatedSpeed is the speed fractions are measured against. Zero means the
	// largest speed of the supplied range.
	RatedSpeed float64
	// SystemHead, when set, is evaluated at the scaled flows of every speed
	// sample instead of using the fixed system array.
	SystemHead func(flow float64) float64
	// FlowDegree is the degree of the speed→flow fit.
	FlowDegree int
	// PowerDegree is the degree of the speed→power fit.
	PowerDegree int
	// SpeedDegree is the degree of the flow→speed fit.
	SpeedDegree int
	// LocalPowerDegree is the degree of the per-speed flow→power fit.
	LocalPowerDegree int
	// Parallelism bounds the number of speed samples evaluated concurrently.
	Parallelism int
	// MemoCapacity bounds the number of results a Simulator keeps.
	MemoCapacity int
}

func defaultScaleConfig() ScaleConfig {
	return ScaleConfig{
		TieBreak:         curve.LowestFlow,
		FlowDegree:       2,
		PowerDegree:      3,
		SpeedDegree:      2,
		LocalPowerDegree: 3,
		Parallelism:      1,
		MemoCapacity:     64,
	}
}

// Option is a functional option for ScaleConfig.
type Option = options.Option[*ScaleConfig]

// WithTieBreak sets the policy used when a speed yields several crossings.
// The default is curve.LowestFlow.
func WithTieBreak(tb curve.TieBreak) Option {
	return options.New(func(cfg *ScaleConfig) error {
		if !tb.Valid() {
			return fmt.Errorf("%w: unknown tie-break policy %d", errs.ErrInputShape, tb)
		}
		cfg.TieBreak = tb

		return nil
	})
}

// WithRatedSpeed measures speed fractions against rpm (typically the
// nameplate speed) instead of the largest speed of the range. A speed range
// reaching above rpm is rejected with errs.ErrInputShape.
func WithRatedSpeed(rpm float64) Option {
	return options.New(func(cfg *ScaleConfig) error {
		if !isFinite(rpm) || rpm <= 0 {
			return fmt.Errorf("%w: rated speed must be finite and positive, got %g", errs.ErrInputShape, rpm)
		}
		cfg.RatedSpeed = rpm

		return nil
	})
}

// WithSystemHeadFunc evaluates the system curve at the scaled flows of every
// speed sample. The fixed system array passed to the scaling functions is
// then ignored and may be nil.
func WithSystemHeadFunc(fn func(flow float64) float64) Option {
	return options.New(func(cfg *ScaleConfig) error {
		if fn == nil {
			return fmt.Errorf("%w: nil system head function", errs.ErrInputShape)
		}
		cfg.SystemHead = fn

		return nil
	})
}

// WithFlowDegree sets the degree of the speed→flow fit (default 2).
func WithFlowDegree(degree int) Option {
	return degreeOption("flow", degree, func(cfg *ScaleConfig) { cfg.FlowDegree = degree })
}

// WithPowerDegree sets the degree of the speed→power fit (default 3).
func WithPowerDegree(degree int) Option {
	return degreeOption("power", degree, func(cfg *ScaleConfig) { cfg.PowerDegree = degree })
}

// WithSpeedDegree sets the degree of the flow→speed fit (default 2).
func WithSpeedDegree(degree int) Option {
	return degreeOption("speed", degree, func(cfg *ScaleConfig) { cfg.SpeedDegree = degree })
}

// WithLocalPowerDegree sets the degree of the flow→power curve refitted at
// every speed sample (default 3).
func WithLocalPowerDegree(degree int) Option {
	return degreeOption("local power", degree, func(cfg *ScaleConfig) { cfg.LocalPowerDegree = degree })
}

func degreeOption(name string, degree int, set func(*ScaleConfig)) Option {
	return options.New(func(cfg *ScaleConfig) error {
		if degree < 0 {
			return fmt.Errorf("%w: %s degree must not be negative, got %d", errs.ErrInputShape, name, degree)
		}
		set(cfg)

		return nil
	})
}

// WithParallelism evaluates up to n speed samples concurrently. n <= 0 uses
// GOMAXPROCS. Results do not depend on n.
func WithParallelism(n int) Option {
	return options.NoError(func(cfg *ScaleConfig) {
		cfg.Parallelism = n
		if n <= 0 {
			cfg.Parallelism = runtime.GOMAXPROCS(0)
		}
	})
}

// WithMemoCapacity bounds the number of results a Simulator memoises
// (default 64). Zero disables memoisation.
func WithMemoCapacity(n int) Option {
	return options.New(func(cfg *ScaleConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: memo capacity must not be negative, got %d", errs.ErrInputShape, n)
		}
		cfg.MemoCapacity = n

		return nil
	})
}

func buildConfig(opts []Option) (ScaleConfig, error) {
	return options.Build(defaultScaleConfig, opts...)
}
