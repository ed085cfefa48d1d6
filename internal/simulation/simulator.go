package simulation

import (
	"fmt"
	"math"

	"github.com/gbmviz/gbm-visualizer/internal/domain"
)

// Simulator produces clamped GBM price trajectories from a seeded uniform
// stream. A Simulator carries no state between runs; every run is a pure
// function of its parameters.
type Simulator struct {
	Logger Logger
}

// NewSimulator creates a simulator. A nil logger defaults to NopLogger.
func NewSimulator(logger Logger) *Simulator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Simulator{Logger: logger}
}

// Simulate runs one simulation: PathCount trajectories of StepCount steps
// each over the horizon [0, 1], starting at domain.StartPrice.
//
// The entire random stream (StepCount*PathCount draws) is generated up
// front from the seed and consumed strictly in order: path p consumes
// stream indices [p*StepCount, (p+1)*StepCount). This partition is
// load-bearing for reproducibility; changing it changes every trajectory
// after the first.
//
// Each step applies the explicit discretization
//
//	dW = sqrt(dt) * (u*2 - 1) * sqrt(3)
//	S  = S * (1 + drift*dt + volatility*dW)
//
// where the scaled-uniform dW has the variance of a true Gaussian increment
// (Var = dt). The substitution is intentional; swapping in a Gaussian
// sampler would change every output. Prices are clamped to
// [domain.ClampFloor, domain.ClampCeil] independently at every step; the
// clamp is not a reflecting boundary.
//
// Drift and volatility are accepted as given; range validation belongs to
// the calling layer. Non-positive counts are rejected.
func (s *Simulator) Simulate(params domain.SimulationParameters) ([]domain.Trajectory, error) {
	if params.StepCount <= 0 {
		return nil, fmt.Errorf("invalid step count %d: must be >= 1", params.StepCount)
	}
	if params.PathCount <= 0 {
		return nil, fmt.Errorf("invalid path count %d: must be >= 1", params.PathCount)
	}

	dt := (domain.TimeMax - domain.TimeMin) / float64(params.StepCount)
	sqrtDt := math.Sqrt(dt)
	sqrt3 := math.Sqrt(3)

	randoms := Sequence(params.Seed, params.StepCount*params.PathCount)
	randomIdx := 0

	s.Logger.Debugf("simulating %d paths x %d steps, seed=%d", params.PathCount, params.StepCount, params.Seed)

	trajectories := make([]domain.Trajectory, params.PathCount)
	for p := 0; p < params.PathCount; p++ {
		points := make(domain.Trajectory, 0, params.StepCount+1)
		price := domain.StartPrice
		points = append(points, domain.Point{Time: 0, Price: price})

		for i := 1; i <= params.StepCount; i++ {
			t := float64(i) * dt
			u := randoms[randomIdx]
			randomIdx++

			// Evaluated strictly left to right; the multiplication order is
			// part of the bit-for-bit reproducibility contract.
			dW := sqrtDt * (u*2 - 1) * sqrt3
			price = price * (1 + params.Drift*dt + params.Volatility*dW)
			price = clamp(price, domain.ClampFloor, domain.ClampCeil)

			points = append(points, domain.Point{Time: t, Price: price})
		}
		trajectories[p] = points
	}

	return trajectories, nil
}

// Run simulates and packages trajectories with their ensemble summary.
func (s *Simulator) Run(params domain.SimulationParameters) (*domain.RunResult, error) {
	trajectories, err := s.Simulate(params)
	if err != nil {
		return nil, err
	}
	return &domain.RunResult{
		Parameters:   params,
		Trajectories: trajectories,
		Summary:      Summarize(trajectories),
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
