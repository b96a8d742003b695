package growth

import (
	"github.com/google/uuid"

	"github.com/referlab/refnet/pkg/errors"
	"github.com/referlab/refnet/pkg/observability"
)

// Default bonus search parameters.
const (
	// DefaultMaxBonus is the largest bonus amount the search considers.
	DefaultMaxBonus = 10000

	// DefaultIncrement is the granularity of bonus amounts, in dollars.
	DefaultIncrement = 10
)

// AdoptionFunc maps a bonus amount in dollars to an adoption probability.
//
// Callers supply the function; the optimizer assumes it is monotonically
// non-decreasing in bonus but does not verify it. Every returned value must
// lie in [0, 1]; a value outside that range fails the surrounding call with
// INVALID_PROBABILITY_FN.
type AdoptionFunc func(bonus int) float64

// BonusConfig holds bonus search parameters. Zero values take defaults.
type BonusConfig struct {
	MaxBonus  int `toml:"max"`       // search ceiling in dollars (default 10000)
	Increment int `toml:"increment"` // bonus granularity in dollars (default 10)
}

func (c BonusConfig) withDefaults() BonusConfig {
	if c.MaxBonus <= 0 {
		c.MaxBonus = DefaultMaxBonus
	}
	if c.Increment <= 0 {
		c.Increment = DefaultIncrement
	}
	return c
}

// Optimizer finds the cheapest referral bonus that meets a hiring target
// within a deadline. It composes an AdoptionFunc with the deterministic
// expectation simulation and binary-searches over bonus amounts.
type Optimizer struct {
	sim       *Simulator
	maxBonus  int
	increment int
}

// NewOptimizer creates an optimizer that simulates with sim and searches
// bonuses per cfg. A nil sim uses a default Simulator.
func NewOptimizer(sim *Simulator, cfg BonusConfig) *Optimizer {
	if sim == nil {
		sim = NewSimulator(Config{})
	}
	cfg = cfg.withDefaults()
	return &Optimizer{
		sim:       sim,
		maxBonus:  cfg.MaxBonus,
		increment: cfg.Increment,
	}
}

// Analysis is the cost-effectiveness summary produced by
// AnalyzeBonusEffectiveness. When Achievable is false the derived fields are
// zero.
type Analysis struct {
	RunID       string `json:"run_id"`
	Achievable  bool   `json:"achievable"`
	MinBonus    int    `json:"min_bonus,omitempty"`
	TotalCost   int    `json:"total_cost,omitempty"`
	CostPerHire int    `json:"cost_per_hire,omitempty"`
	Days        int    `json:"days"`
	TargetHires int    `json:"target_hires"`
}

// MinBonusForTarget returns the smallest bonus, in Increment steps, whose
// adoption probability lets the expected simulation reach targetHires within
// days. The second return value is false when the target is unreachable even
// at MaxBonus, or when days or targetHires is non-positive.
//
// eps is the probability tolerance carried by callers tuning adoptionProb;
// it must be positive (INVALID_TOLERANCE otherwise). adoptionProb results
// outside [0, 1] fail with INVALID_PROBABILITY_FN.
//
// The search probes bonus amounts rounded down to the increment, and the
// final candidate is re-verified before returning, guarding against rounding
// at the search boundary. The returned bonus never exceeds MaxBonus: a target
// feasible only in the gap between the last increment step and the ceiling is
// reported as unreachable.
func (o *Optimizer) MinBonusForTarget(days, targetHires int, adoptionProb AdoptionFunc, eps float64) (int, bool, error) {
	if eps <= 0.0 {
		return 0, false, errors.New(errors.ErrCodeInvalidTolerance, "tolerance eps must be positive, got %v", eps)
	}
	if adoptionProb == nil {
		return 0, false, errors.New(errors.ErrCodeInvalidProbabilityFn, "adoption probability function is required")
	}
	if days <= 0 || targetHires <= 0 {
		return 0, false, nil
	}

	// Feasibility gate: if even the maximum bonus cannot reach the target,
	// skip the search entirely.
	feasible, err := o.reaches(o.maxBonus, days, targetHires, adoptionProb)
	if err != nil {
		return 0, false, err
	}
	if !feasible {
		return 0, false, nil
	}

	lo, hi := 0, o.maxBonus
	for lo < hi {
		mid := (lo + hi) / 2
		mid = (mid / o.increment) * o.increment

		ok, err := o.reaches(mid, days, targetHires, adoptionProb)
		if err != nil {
			return 0, false, err
		}
		if ok {
			hi = mid
		} else {
			lo = mid + o.increment
		}
	}

	// When MaxBonus is not a multiple of Increment the increment steps can
	// carry lo past the ceiling; a bonus above MaxBonus is never a valid
	// answer.
	if lo > o.maxBonus {
		return 0, false, nil
	}
	ok, err := o.reaches(lo, days, targetHires, adoptionProb)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, nil
	}
	return lo, true, nil
}

// reaches probes one bonus amount: adoption probability, then expected
// simulation, then comparison against the target.
func (o *Optimizer) reaches(bonus, days, targetHires int, adoptionProb AdoptionFunc) (bool, error) {
	p := adoptionProb(bonus)
	if p != p || p < 0.0 || p > 1.0 {
		return false, errors.New(errors.ErrCodeInvalidProbabilityFn,
			"adoption probability function returned %v for bonus %d, want [0, 1]", p, bonus)
	}

	totals, err := o.sim.SimulateExpected(p, days)
	if err != nil {
		return false, err
	}
	if len(totals) == 0 {
		return false, nil
	}
	final := totals[len(totals)-1]
	observability.Sim().OnSearchProbe("bonus", bonus, final)
	return final >= float64(targetHires), nil
}

// AnalyzeBonusEffectiveness wraps MinBonusForTarget with cost arithmetic:
// total cost is the minimal bonus paid out once per target hire, so cost per
// hire equals the bonus itself. The RunID ties the analysis to log output and
// exported reports.
func (o *Optimizer) AnalyzeBonusEffectiveness(days, targetHires int, adoptionProb AdoptionFunc, eps float64) (Analysis, error) {
	analysis := Analysis{
		RunID:       uuid.NewString(),
		Days:        days,
		TargetHires: targetHires,
	}

	bonus, ok, err := o.MinBonusForTarget(days, targetHires, adoptionProb, eps)
	if err != nil {
		return Analysis{}, err
	}
	if !ok {
		return analysis, nil
	}

	analysis.Achievable = true
	analysis.MinBonus = bonus
	analysis.TotalCost = bonus * targetHires
	analysis.CostPerHire = bonus
	return analysis, nil
}
