package growth

import (
	"math/rand"
	"time"

	"github.com/referlab/refnet/pkg/errors"
	"github.com/referlab/refnet/pkg/observability"
)

// Default model parameters.
const (
	// DefaultReferrers is the initial number of active referrer slots.
	DefaultReferrers = 100

	// DefaultCapacity is the number of referrals a slot makes before retiring.
	DefaultCapacity = 10

	// maxSearchDays bounds the days binary search. With the default model the
	// theoretical maximum total (Referrers · Capacity) is reachable well
	// within this horizon for any p > 0 worth searching.
	maxSearchDays = 1000
)

// Config holds simulation model parameters. Zero values take defaults, so
// Config{} is a valid configuration.
type Config struct {
	Referrers int   `toml:"referrers"` // initial active referrer slots (default 100)
	Capacity  int   `toml:"capacity"`  // referrals per slot before retirement (default 10)
	Seed      int64 `toml:"seed"`      // RNG seed for stochastic runs; 0 seeds from the clock
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.Referrers <= 0 {
		c.Referrers = DefaultReferrers
	}
	if c.Capacity <= 0 {
		c.Capacity = DefaultCapacity
	}
	return c
}

// Simulator steps a capacity-limited referrer population through discrete
// days. Simulation state is local to each call; a Simulator can be reused for
// any number of runs. Not safe for concurrent use: the stochastic variant
// shares one RNG.
type Simulator struct {
	referrers int
	capacity  int
	rng       *rand.Rand
}

// NewSimulator creates a simulator from cfg. Zero-valued fields take the
// package defaults (100 referrers, capacity 10, clock-seeded RNG).
func NewSimulator(cfg Config) *Simulator {
	cfg = cfg.withDefaults()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{
		referrers: cfg.Referrers,
		capacity:  cfg.Capacity,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Referrers returns the configured initial population size.
func (s *Simulator) Referrers() int { return s.referrers }

// Capacity returns the configured per-slot referral capacity.
func (s *Simulator) Capacity() int { return s.capacity }

// MaxTotal returns the theoretical maximum cumulative total: every slot
// exhausting its capacity.
func (s *Simulator) MaxTotal() int { return s.referrers * s.capacity }

// checkArgs validates the shared simulate preconditions.
func checkArgs(p float64, days int) error {
	if err := errors.ValidateProbability(p); err != nil {
		return err
	}
	if days < 0 {
		return errors.New(errors.ErrCodeInvalidDuration, "days must be non-negative, got %d", days)
	}
	return nil
}

// Simulate runs the stochastic growth model for the given number of days and
// returns one cumulative total per day. Each day, every still-active slot
// draws a Bernoulli trial with success probability p; a slot retires at the
// end of the day its count reaches capacity. The returned sequence is
// non-decreasing by construction.
//
// Errors: INVALID_PROBABILITY if p is outside [0, 1], INVALID_DURATION if
// days is negative. days == 0 returns an empty sequence.
func (s *Simulator) Simulate(p float64, days int) ([]int, error) {
	if err := checkArgs(p, days); err != nil {
		return nil, err
	}
	if days == 0 {
		return []int{}, nil
	}

	start := time.Now()
	observability.Sim().OnSimulationStart(p, days, true)

	counts := make([]int, s.referrers)
	active := s.referrers
	totals := make([]int, 0, days)
	total := 0

	for day := 0; day < days && active > 0; day++ {
		for i := range counts {
			if counts[i] >= s.capacity {
				continue
			}
			if s.rng.Float64() < p {
				counts[i]++
				total++
				if counts[i] >= s.capacity {
					active--
				}
			}
		}
		totals = append(totals, total)
	}
	// Population saturated: remaining days repeat the final total.
	for len(totals) < days {
		totals = append(totals, total)
	}

	observability.Sim().OnSimulationComplete(p, days, float64(total), time.Since(start))
	return totals, nil
}

// SimulateExpected runs the deterministic expectation variant: the same
// transition structure as Simulate, but each active slot contributes exactly
// p per day to the cumulative total and to its own running count, retiring
// once the running count reaches capacity.
//
// This is the expectation of the stochastic process under i.i.d. Bernoulli
// trials truncated at capacity, and serves as the fast monotone probe inside
// DaysToTarget and the bonus search.
func (s *Simulator) SimulateExpected(p float64, days int) ([]float64, error) {
	if err := checkArgs(p, days); err != nil {
		return nil, err
	}
	if days == 0 {
		return []float64{}, nil
	}

	start := time.Now()
	observability.Sim().OnSimulationStart(p, days, false)

	// Every slot carries the same expectation, so one running count stands in
	// for the whole population of active slots.
	perSlot := 0.0
	active := s.referrers
	totals := make([]float64, 0, days)
	total := 0.0

	for day := 0; day < days && active > 0; day++ {
		perSlot += p
		total += p * float64(active)
		if perSlot >= float64(s.capacity) {
			active = 0
		}
		totals = append(totals, total)
	}
	for len(totals) < days {
		totals = append(totals, total)
	}

	observability.Sim().OnSimulationComplete(p, days, total, time.Since(start))
	return totals, nil
}

// DaysToTarget returns the minimal number of days for the expected cumulative
// total to reach target at probability p. The second return value is false
// when the target is unreachable within the search horizon.
//
// target <= 0 needs no days at all. p <= 0 can never grow the total, so any
// positive target is unreachable. Otherwise the expected total is
// non-decreasing in days for fixed p, which makes binary search over
// [0, 1000] valid; the found boundary is re-verified before returning.
func (s *Simulator) DaysToTarget(p float64, target int) (int, bool, error) {
	if err := errors.ValidateProbability(p); err != nil {
		return 0, false, err
	}
	if target <= 0 {
		return 0, true, nil
	}
	if p <= 0.0 {
		return 0, false, nil
	}

	reaches := func(days int) bool {
		totals, err := s.SimulateExpected(p, days)
		if err != nil || len(totals) == 0 {
			return false
		}
		final := totals[len(totals)-1]
		observability.Sim().OnSearchProbe("days", days, final)
		return final >= float64(target)
	}

	lo, hi := 0, maxSearchDays
	for lo < hi {
		mid := (lo + hi) / 2
		if reaches(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	if !reaches(lo) {
		return 0, false, nil
	}
	return lo, true, nil
}
