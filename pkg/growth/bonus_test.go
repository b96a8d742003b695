package growth

import (
	"testing"

	"github.com/referlab/refnet/pkg/errors"
)

// stepCurve adopts fully at or above threshold dollars, never below.
func stepCurve(threshold int) AdoptionFunc {
	return func(bonus int) float64 {
		if bonus >= threshold {
			return 1.0
		}
		return 0.0
	}
}

func newTestOptimizer() *Optimizer {
	return NewOptimizer(NewSimulator(Config{Seed: 1}), BonusConfig{})
}

func TestMinBonusForTargetValidation(t *testing.T) {
	o := newTestOptimizer()

	tests := []struct {
		name string
		days int
		tgt  int
		fn   AdoptionFunc
		eps  float64
		code errors.Code
	}{
		{name: "zero eps", days: 10, tgt: 50, fn: stepCurve(100), eps: 0, code: errors.ErrCodeInvalidTolerance},
		{name: "negative eps", days: 10, tgt: 50, fn: stepCurve(100), eps: -1e-3, code: errors.ErrCodeInvalidTolerance},
		{name: "nil adoption function", days: 10, tgt: 50, fn: nil, eps: 1e-3, code: errors.ErrCodeInvalidProbabilityFn},
		{
			name: "adoption function out of range",
			days: 10, tgt: 50,
			fn:   func(int) float64 { return 2.0 },
			eps:  1e-3,
			code: errors.ErrCodeInvalidProbabilityFn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := o.MinBonusForTarget(tt.days, tt.tgt, tt.fn, tt.eps)
			if errors.GetCode(err) != tt.code {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestMinBonusForTargetDegenerateInputs(t *testing.T) {
	o := newTestOptimizer()

	for _, tt := range []struct {
		name string
		days int
		tgt  int
	}{
		{name: "zero days", days: 0, tgt: 10},
		{name: "negative days", days: -1, tgt: 10},
		{name: "zero target", days: 10, tgt: 0},
		{name: "negative target", days: 10, tgt: -5},
	} {
		t.Run(tt.name, func(t *testing.T) {
			bonus, ok, err := o.MinBonusForTarget(tt.days, tt.tgt, stepCurve(100), 1e-3)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok || bonus != 0 {
				t.Errorf("got (%d, %v), want (0, false)", bonus, ok)
			}
		})
	}
}

func TestMinBonusForTargetStepCurve(t *testing.T) {
	o := newTestOptimizer()

	// Adoption jumps from 0 to 1 at $200; with full adoption ten days yield
	// 1000 expected hires, so $200 is exactly the minimum workable bonus.
	bonus, ok, err := o.MinBonusForTarget(10, 500, stepCurve(200), 1e-3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || bonus != 200 {
		t.Errorf("got (%d, %v), want (200, true)", bonus, ok)
	}
}

func TestMinBonusForTargetInfeasible(t *testing.T) {
	o := newTestOptimizer()

	// No bonus moves adoption, so any positive target is out of reach.
	bonus, ok, err := o.MinBonusForTarget(10, 1, func(int) float64 { return 0.0 }, 1e-3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || bonus != 0 {
		t.Errorf("got (%d, %v), want (0, false)", bonus, ok)
	}

	// Target above the theoretical maximum is infeasible even at full adoption.
	bonus, ok, err = o.MinBonusForTarget(100, 1001, func(int) float64 { return 1.0 }, 1e-3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || bonus != 0 {
		t.Errorf("got (%d, %v), want (0, false)", bonus, ok)
	}
}

func TestMinBonusForTargetRespectsCeiling(t *testing.T) {
	// A ceiling that is not a multiple of the increment leaves a gap between
	// the last probe-able step ($90) and MaxBonus ($95). A target feasible
	// only inside that gap must not produce a bonus above the ceiling.
	o := NewOptimizer(NewSimulator(Config{Seed: 1}), BonusConfig{MaxBonus: 95, Increment: 10})

	bonus, ok, err := o.MinBonusForTarget(10, 500, stepCurve(95), 1e-3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || bonus != 0 {
		t.Errorf("got (%d, %v), want (0, false)", bonus, ok)
	}

	// A threshold on the increment grid below the ceiling still resolves.
	bonus, ok, err = o.MinBonusForTarget(10, 500, stepCurve(50), 1e-3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || bonus != 50 {
		t.Errorf("got (%d, %v), want (50, true)", bonus, ok)
	}
	if bonus > 95 {
		t.Errorf("bonus %d exceeds the configured ceiling", bonus)
	}
}

func TestMinBonusForTargetIncrementAndMinimality(t *testing.T) {
	o := newTestOptimizer()
	curve := SaturatingCurve(1000)

	bonus, ok, err := o.MinBonusForTarget(30, 400, curve, 1e-3)
	if err != nil || !ok {
		t.Fatalf("MinBonusForTarget = (%d, %v, %v), want feasible", bonus, ok, err)
	}
	if bonus%DefaultIncrement != 0 {
		t.Errorf("bonus %d is not a multiple of the $%d increment", bonus, DefaultIncrement)
	}

	// The result must meet the target and the next increment down must not.
	meets := func(b int) bool {
		totals, err := o.sim.SimulateExpected(curve(b), 30)
		if err != nil {
			t.Fatalf("SimulateExpected error: %v", err)
		}
		return totals[len(totals)-1] >= 400
	}
	if !meets(bonus) {
		t.Errorf("returned bonus %d does not meet the target", bonus)
	}
	if bonus >= DefaultIncrement && meets(bonus-DefaultIncrement) {
		t.Errorf("bonus %d is not minimal, %d also meets the target", bonus, bonus-DefaultIncrement)
	}
}

func TestAnalyzeBonusEffectiveness(t *testing.T) {
	o := newTestOptimizer()

	got, err := o.AnalyzeBonusEffectiveness(10, 500, stepCurve(200), 1e-3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RunID == "" {
		t.Error("analysis has no run ID")
	}
	if !got.Achievable {
		t.Fatal("analysis not achievable, want achievable")
	}
	if got.MinBonus != 200 || got.CostPerHire != 200 {
		t.Errorf("MinBonus = %d, CostPerHire = %d, want 200 each", got.MinBonus, got.CostPerHire)
	}
	if got.TotalCost != 200*500 {
		t.Errorf("TotalCost = %d, want %d", got.TotalCost, 200*500)
	}
	if got.Days != 10 || got.TargetHires != 500 {
		t.Errorf("echoed inputs = (%d, %d), want (10, 500)", got.Days, got.TargetHires)
	}
}

func TestAnalyzeBonusEffectivenessUnachievable(t *testing.T) {
	o := newTestOptimizer()

	got, err := o.AnalyzeBonusEffectiveness(10, 2000, func(int) float64 { return 1.0 }, 1e-3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Achievable {
		t.Fatal("analysis achievable, want unachievable")
	}
	if got.MinBonus != 0 || got.TotalCost != 0 || got.CostPerHire != 0 {
		t.Errorf("cost fields = (%d, %d, %d), want zeros", got.MinBonus, got.TotalCost, got.CostPerHire)
	}
	if got.RunID == "" {
		t.Error("analysis has no run ID")
	}
}

func TestCurves(t *testing.T) {
	sat := SaturatingCurve(1000)
	if p := sat(0); p != 0 {
		t.Errorf("saturating curve at 0 = %v, want 0", p)
	}
	if p := sat(100000); p < 0.999 {
		t.Errorf("saturating curve at 100000 = %v, want near 1", p)
	}
	prev := -1.0
	for _, b := range []int{0, 100, 500, 1000, 5000, 10000} {
		p := sat(b)
		if p < 0 || p > 1 {
			t.Errorf("saturating curve at %d = %v, outside [0, 1]", b, p)
		}
		if p <= prev && b > 0 {
			t.Errorf("saturating curve not increasing at %d", b)
		}
		prev = p
	}

	lin := LinearCurve(0.0001)
	if p := lin(5000); p != 0.5 {
		t.Errorf("linear curve at 5000 = %v, want 0.5", p)
	}
	if p := lin(50000); p != 1 {
		t.Errorf("linear curve clamps to %v at 50000, want 1", p)
	}
	if p := LinearCurve(-0.1)(100); p != 0 {
		t.Errorf("negative slope curve = %v, want clamped 0", p)
	}
}
