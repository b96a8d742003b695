package growth

import (
	"testing"

	"github.com/referlab/refnet/pkg/errors"
)

func TestSimulateArgValidation(t *testing.T) {
	s := NewSimulator(Config{Seed: 1})

	tests := []struct {
		name string
		p    float64
		days int
		code errors.Code
	}{
		{name: "negative probability", p: -0.1, days: 5, code: errors.ErrCodeInvalidProbability},
		{name: "probability above one", p: 1.5, days: 5, code: errors.ErrCodeInvalidProbability},
		{name: "negative days", p: 0.5, days: -1, code: errors.ErrCodeInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Simulate(tt.p, tt.days); errors.GetCode(err) != tt.code {
				t.Errorf("Simulate(%v, %d) error code = %v, want %v", tt.p, tt.days, errors.GetCode(err), tt.code)
			}
			if _, err := s.SimulateExpected(tt.p, tt.days); errors.GetCode(err) != tt.code {
				t.Errorf("SimulateExpected(%v, %d) error code = %v, want %v", tt.p, tt.days, errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestSimulateZeroDays(t *testing.T) {
	s := NewSimulator(Config{Seed: 1})

	got, err := s.Simulate(0.5, 0)
	if err != nil {
		t.Fatalf("Simulate(0.5, 0) error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Simulate(0.5, 0) = %v, want empty", got)
	}

	exp, err := s.SimulateExpected(0.5, 0)
	if err != nil {
		t.Fatalf("SimulateExpected(0.5, 0) error: %v", err)
	}
	if len(exp) != 0 {
		t.Errorf("SimulateExpected(0.5, 0) = %v, want empty", exp)
	}
}

func TestSimulateZeroProbability(t *testing.T) {
	s := NewSimulator(Config{Seed: 1})

	got, err := s.Simulate(0.0, 10)
	if err != nil {
		t.Fatalf("Simulate(0, 10) error: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("Simulate(0, 10) length = %d, want 10", len(got))
	}
	for day, total := range got {
		if total != 0 {
			t.Errorf("day %d total = %d, want 0", day, total)
		}
	}
}

func TestSimulateMonotoneAndBounded(t *testing.T) {
	s := NewSimulator(Config{Seed: 42})

	totals, err := s.Simulate(0.3, 60)
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}
	prev := 0
	for day, total := range totals {
		if total < prev {
			t.Errorf("day %d total %d below previous %d", day, total, prev)
		}
		prev = total
	}
	if prev > s.MaxTotal() {
		t.Errorf("final total %d exceeds MaxTotal %d", prev, s.MaxTotal())
	}
}

func TestSimulateSeededReproducibility(t *testing.T) {
	a, err := NewSimulator(Config{Seed: 7}).Simulate(0.4, 30)
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}
	b, err := NewSimulator(Config{Seed: 7}).Simulate(0.4, 30)
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}
	for day := range a {
		if a[day] != b[day] {
			t.Fatalf("day %d differs across identically seeded runs: %d vs %d", day, a[day], b[day])
		}
	}
}

func TestSimulateExpectedFullAdoption(t *testing.T) {
	s := NewSimulator(Config{Seed: 1})

	totals, err := s.SimulateExpected(1.0, 1)
	if err != nil {
		t.Fatalf("SimulateExpected error: %v", err)
	}
	if len(totals) != 1 || totals[0] != float64(s.Referrers()) {
		t.Errorf("SimulateExpected(1, 1) = %v, want [%d]", totals, s.Referrers())
	}
}

func TestSimulateExpectedSaturation(t *testing.T) {
	s := NewSimulator(Config{Seed: 1})

	// At p = 1 every slot exhausts its capacity after exactly capacity days;
	// extra days cannot move the total.
	atCap, err := s.SimulateExpected(1.0, s.Capacity())
	if err != nil {
		t.Fatalf("SimulateExpected error: %v", err)
	}
	pastCap, err := s.SimulateExpected(1.0, s.Capacity()+5)
	if err != nil {
		t.Fatalf("SimulateExpected error: %v", err)
	}

	max := float64(s.MaxTotal())
	if final := atCap[len(atCap)-1]; final != max {
		t.Errorf("total after %d days = %v, want %v", s.Capacity(), final, max)
	}
	if final := pastCap[len(pastCap)-1]; final != max {
		t.Errorf("total after saturation = %v, want %v", final, max)
	}
}

func TestDaysToTarget(t *testing.T) {
	s := NewSimulator(Config{Seed: 1})

	tests := []struct {
		name     string
		p        float64
		target   int
		wantDays int
		wantOK   bool
	}{
		{name: "zero target", p: 0.5, target: 0, wantDays: 0, wantOK: true},
		{name: "negative target", p: 0.5, target: -3, wantDays: 0, wantOK: true},
		{name: "zero probability", p: 0.0, target: 5, wantOK: false},
		{name: "full adoption", p: 1.0, target: 1000, wantDays: 10, wantOK: true},
		{name: "half adoption", p: 0.5, target: 200, wantDays: 4, wantOK: true},
		{name: "beyond capacity", p: 1.0, target: 1001, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok, err := s.DaysToTarget(tt.p, tt.target)
			if err != nil {
				t.Fatalf("DaysToTarget(%v, %d) error: %v", tt.p, tt.target, err)
			}
			if ok != tt.wantOK {
				t.Fatalf("DaysToTarget(%v, %d) ok = %v, want %v", tt.p, tt.target, ok, tt.wantOK)
			}
			if ok && days != tt.wantDays {
				t.Errorf("DaysToTarget(%v, %d) = %d, want %d", tt.p, tt.target, days, tt.wantDays)
			}
		})
	}
}

func TestDaysToTargetInvalidProbability(t *testing.T) {
	s := NewSimulator(Config{Seed: 1})
	if _, _, err := s.DaysToTarget(1.2, 10); errors.GetCode(err) != errors.ErrCodeInvalidProbability {
		t.Errorf("DaysToTarget(1.2, 10) error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidProbability)
	}
}

func TestDaysToTargetIsMinimal(t *testing.T) {
	s := NewSimulator(Config{Seed: 1})

	days, ok, err := s.DaysToTarget(0.3, 150)
	if err != nil || !ok {
		t.Fatalf("DaysToTarget(0.3, 150) = %d, %v, %v", days, ok, err)
	}

	// The returned day must reach the target and the previous day must not.
	at, _ := s.SimulateExpected(0.3, days)
	if final := at[len(at)-1]; final < 150 {
		t.Errorf("total at day %d = %v, below target", days, final)
	}
	if days > 0 {
		before, _ := s.SimulateExpected(0.3, days-1)
		if len(before) > 0 && before[len(before)-1] >= 150 {
			t.Errorf("target already met at day %d, %d is not minimal", days-1, days)
		}
	}
}
