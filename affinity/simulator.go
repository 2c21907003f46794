package affinity

import (
	"fmt"
	"slices"
	"sync"

	"github.com/arloliu/pumpcurve/errs"
	"github.com/arloliu/pumpcurve/internal/hash"
)

// Simulator binds a validated pump curve, system curve and configuration, and
// memoises the results of Simulate per speed range.
//
// It suits drivers that repeatedly ask for the same operating window, e.g. a
// polling loop converting commanded speeds into flow estimates. A Simulator is
// safe for concurrent use. Returned results are shared between callers and
// must not be modified.
type Simulator struct {
	pump   PumpCurve
	system []float64
	cfg    ScaleConfig

	mu   sync.Mutex
	memo map[uint64]memoEntry
}

type memoEntry struct {
	speeds []float64
	result *Result
}

// NewSimulator validates pump, systemHead and opts once and returns a
// Simulator over private copies of the curves.
func NewSimulator(pump PumpCurve, systemHead []float64, opts ...Option) (*Simulator, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := pump.Validate(false); err != nil {
		return nil, err
	}
	if cfg.SystemHead == nil && len(systemHead) != len(pump.Flow) {
		return nil, fmt.Errorf("%w: system curve has %d samples, pump curve has %d", errs.ErrInputShape, len(systemHead), len(pump.Flow))
	}

	return &Simulator{
		pump:   pump.Clone(),
		system: slices.Clone(systemHead),
		cfg:    cfg,
		memo:   make(map[uint64]memoEntry),
	}, nil
}

// Simulate returns the result for speeds, computing it on first use.
// Failed runs are not memoised.
func (s *Simulator) Simulate(speeds []float64) (*Result, error) {
	key := hash.Float64s(speeds...)
	if res, ok := s.lookup(key, speeds); ok {
		return res, nil
	}

	res, err := simulate(s.pump, s.system, speeds, s.cfg)
	if err != nil {
		return nil, err
	}
	s.store(key, speeds, res)

	return res, nil
}

// Len returns the number of memoised results.
func (s *Simulator) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.memo)
}

// Reset drops every memoised result.
func (s *Simulator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.memo)
}

func (s *Simulator) lookup(key uint64, speeds []float64) (*Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.memo[key]
	if !ok || !slices.Equal(e.speeds, speeds) {
		return nil, false
	}

	return e.result, true
}

func (s *Simulator) store(key uint64, speeds []float64, res *Result) {
	if s.cfg.MemoCapacity == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.memo[key]; !ok && len(s.memo) >= s.cfg.MemoCapacity {
		// evict an arbitrary entry
		for k := range s.memo {
			delete(s.memo, k)
			break
		}
	}
	s.memo[key] = memoEntry{speeds: slices.Clone(speeds), result: res}
}
