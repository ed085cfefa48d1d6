package simulation

import (
	"math"
	"testing"

	"github.com/gbmviz/gbm-visualizer/internal/domain"
)

func TestSimulateTrajectoryShape(t *testing.T) {
	sim := NewSimulator(nil)
	params := domain.SimulationParameters{
		Seed:       12345,
		Drift:      0.15,
		Volatility: 0.25,
		PathCount:  3,
		StepCount:  250,
	}

	trajectories, err := sim.Simulate(params)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if len(trajectories) != params.PathCount {
		t.Fatalf("expected %d trajectories, got %d", params.PathCount, len(trajectories))
	}
	for p, tr := range trajectories {
		if len(tr) != params.StepCount+1 {
			t.Errorf("path %d: expected %d points, got %d", p, params.StepCount+1, len(tr))
		}
		if tr[0].Time != 0 {
			t.Errorf("path %d: time[0] = %v, want 0", p, tr[0].Time)
		}
		if tr[0].Price != domain.StartPrice {
			t.Errorf("path %d: price[0] = %v, want %v", p, tr[0].Price, domain.StartPrice)
		}
	}
}

func TestSimulateDeterminism(t *testing.T) {
	sim := NewSimulator(nil)
	params := domain.SimulationParameters{
		Seed:       777,
		Drift:      0.3,
		Volatility: 0.4,
		PathCount:  4,
		StepCount:  250,
	}

	first, err := sim.Simulate(params)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := sim.Simulate(params)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	for p := range first {
		for i := range first[p] {
			if first[p][i] != second[p][i] {
				t.Fatalf("path %d point %d differs: %+v vs %+v", p, i, first[p][i], second[p][i])
			}
		}
	}
}

func TestSimulateClampInvariant(t *testing.T) {
	sim := NewSimulator(nil)
	// Extreme volatility would blow up the multiplicative update without
	// the clamp.
	params := domain.SimulationParameters{
		Seed:       999,
		Drift:      0.5,
		Volatility: 10,
		PathCount:  6,
		StepCount:  250,
	}

	trajectories, err := sim.Simulate(params)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	for p, tr := range trajectories {
		for i, pt := range tr {
			if pt.Price < domain.ClampFloor || pt.Price > domain.ClampCeil {
				t.Fatalf("path %d point %d outside clamp band: %v", p, i, pt.Price)
			}
			if math.IsNaN(pt.Price) || math.IsInf(pt.Price, 0) {
				t.Fatalf("path %d point %d not finite: %v", p, i, pt.Price)
			}
		}
	}
}

// TestSimulateStreamPartition verifies the load-bearing stream ordering:
// with 2 paths and 3 steps, path 1 consumes exactly draws 3,4,5 of the
// shared stream.
func TestSimulateStreamPartition(t *testing.T) {
	sim := NewSimulator(nil)
	params := domain.SimulationParameters{
		Seed:       31337,
		Drift:      0.15,
		Volatility: 0.25,
		PathCount:  2,
		StepCount:  3,
	}

	trajectories, err := sim.Simulate(params)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	draws := Sequence(params.Seed, 6)
	dt := 1.0 / float64(params.StepCount)

	for p := 0; p < 2; p++ {
		price := domain.StartPrice
		for i := 1; i <= params.StepCount; i++ {
			u := draws[p*params.StepCount+i-1]
			dW := math.Sqrt(dt) * (u*2 - 1) * math.Sqrt(3)
			price = price * (1 + params.Drift*dt + params.Volatility*dW)
			if price < domain.ClampFloor {
				price = domain.ClampFloor
			}
			if price > domain.ClampCeil {
				price = domain.ClampCeil
			}
			if got := trajectories[p][i].Price; got != price {
				t.Fatalf("path %d step %d: got %v, want %v (draw index %d)", p, i, got, price, p*params.StepCount+i-1)
			}
		}
	}
}

func TestSimulateBaselineScenario(t *testing.T) {
	sim := NewSimulator(nil)
	params := domain.SimulationParameters{
		Seed:       0,
		Drift:      0.15,
		Volatility: 0.25,
		PathCount:  1,
		StepCount:  250,
	}

	trajectories, err := sim.Simulate(params)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	tr := trajectories[0]
	if len(tr) != 251 {
		t.Fatalf("expected 251 points, got %d", len(tr))
	}
	if tr[0].Time != 0 || tr[0].Price != 100 {
		t.Fatalf("first point = %+v, want (0, 100)", tr[0])
	}
	for i, pt := range tr {
		if pt.Price < 55 || pt.Price > 195 {
			t.Fatalf("point %d outside [55, 195]: %v", i, pt.Price)
		}
	}

	again, err := sim.Simulate(params)
	if err != nil {
		t.Fatalf("repeat run failed: %v", err)
	}
	for i := range tr {
		if tr[i] != again[0][i] {
			t.Fatalf("repeat run diverges at point %d", i)
		}
	}
}

// TestSimulateZeroVolatility confirms the drift-only limit: with sigma = 0
// the noise term vanishes and each step is exactly S = S*(1+drift*dt),
// independent of the seed.
func TestSimulateZeroVolatility(t *testing.T) {
	sim := NewSimulator(nil)
	for _, seed := range []int64{1, 42, 1700000000000} {
		params := domain.SimulationParameters{
			Seed:       seed,
			Drift:      0.2,
			Volatility: 0,
			PathCount:  1,
			StepCount:  100,
		}

		trajectories, err := sim.Simulate(params)
		if err != nil {
			t.Fatalf("Simulate failed: %v", err)
		}

		dt := 1.0 / float64(params.StepCount)
		price := domain.StartPrice
		for i := 1; i <= params.StepCount; i++ {
			price = price * (1 + params.Drift*dt)
			if price > domain.ClampCeil {
				price = domain.ClampCeil
			}
			if got := trajectories[0][i].Price; got != price {
				t.Fatalf("seed %d step %d: got %v, want exact drift-only %v", seed, i, got, price)
			}
		}
	}
}

func TestSimulateRejectsBadCounts(t *testing.T) {
	sim := NewSimulator(nil)
	cases := []struct {
		name   string
		params domain.SimulationParameters
	}{
		{"zero steps", domain.SimulationParameters{Seed: 1, PathCount: 1, StepCount: 0}},
		{"negative steps", domain.SimulationParameters{Seed: 1, PathCount: 1, StepCount: -5}},
		{"zero paths", domain.SimulationParameters{Seed: 1, PathCount: 0, StepCount: 250}},
		{"negative paths", domain.SimulationParameters{Seed: 1, PathCount: -1, StepCount: 250}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := sim.Simulate(tc.params); err == nil {
				t.Error("expected invalid-argument error, got nil")
			}
		})
	}
}

func TestRunIncludesSummary(t *testing.T) {
	sim := NewSimulator(nil)
	result, err := sim.Run(domain.DefaultParameters(4242))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Trajectories) != domain.DefaultPathCount {
		t.Fatalf("expected %d trajectories, got %d", domain.DefaultPathCount, len(result.Trajectories))
	}
	if result.Summary.TerminalMin > result.Summary.TerminalMedian ||
		result.Summary.TerminalMedian > result.Summary.TerminalMax {
		t.Errorf("summary ordering violated: %+v", result.Summary)
	}
}
