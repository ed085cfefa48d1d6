package domain

// Display band for the price axis. Simulated prices are clamped to stay
// ClampMargin inside the band edges, so they never touch PriceMin/PriceMax.
const (
	PriceMin    = 50.0
	PriceMax    = 200.0
	ClampMargin = 5.0

	// StartPrice is the fixed initial price of every trajectory.
	StartPrice = 100.0

	// Simulation horizon is [TimeMin, TimeMax] split into StepCount steps.
	TimeMin = 0.0
	TimeMax = 1.0
)

// Defaults are the dashboard's initial slider positions.
const (
	DefaultDrift      = 0.15
	DefaultVolatility = 0.25
	DefaultPathCount  = 5
	DefaultStepCount  = 250
)

// ClampFloor and ClampCeil are the effective bounds of every simulated price.
const (
	ClampFloor = PriceMin + ClampMargin
	ClampCeil  = PriceMax - ClampMargin
)

// SimulationParameters fully determines one simulation run.
// Seed drives all randomness: identical parameters produce bit-identical
// trajectories.
type SimulationParameters struct {
	Seed       int64   `json:"seed" yaml:"seed"`
	Drift      float64 `json:"drift" yaml:"drift"`
	Volatility float64 `json:"volatility" yaml:"volatility"`
	PathCount  int     `json:"path_count" yaml:"paths"`
	StepCount  int     `json:"step_count" yaml:"steps"`
}

// DefaultParameters returns parameters at the initial slider positions with
// the given seed.
func DefaultParameters(seed int64) SimulationParameters {
	return SimulationParameters{
		Seed:       seed,
		Drift:      DefaultDrift,
		Volatility: DefaultVolatility,
		PathCount:  DefaultPathCount,
		StepCount:  DefaultStepCount,
	}
}

// Point is a single sample of a price trajectory.
type Point struct {
	Time  float64 `json:"time"`
	Price float64 `json:"price"`
}

// Trajectory is one simulated price path: StepCount+1 points, Time[0]=0,
// Price[0]=StartPrice. Immutable once produced; owned by the caller that
// requested it.
type Trajectory []Point

// TerminalPrice returns the last price of the trajectory.
func (tr Trajectory) TerminalPrice() float64 {
	if len(tr) == 0 {
		return 0
	}
	return tr[len(tr)-1].Price
}

// Summary holds ensemble statistics over the trajectories of a single run.
// Display-layer only; it never feeds back into the simulation.
type Summary struct {
	TerminalMin    float64 `json:"terminal_min"`
	TerminalMedian float64 `json:"terminal_median"`
	TerminalMax    float64 `json:"terminal_max"`
	TerminalP10    float64 `json:"terminal_p10"`
	TerminalP90    float64 `json:"terminal_p90"`
	BandLow        float64 `json:"band_low"`  // lowest price seen at any step
	BandHigh       float64 `json:"band_high"` // highest price seen at any step
}

// RunResult is the unit consumed by formatters, the store and the HTTP API:
// the parameters of a run together with its trajectories and statistics.
type RunResult struct {
	Parameters   SimulationParameters `json:"parameters"`
	Trajectories []Trajectory         `json:"trajectories"`
	Summary      Summary              `json:"summary"`
}
