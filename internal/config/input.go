package config

import (
	"fmt"
	"os"

	"github.com/gbmviz/gbm-visualizer/internal/domain"
	"gopkg.in/yaml.v3"
)

// Slider bounds. The engine itself accepts any drift/volatility; range
// validation belongs to this layer and the UI controls built on it.
const (
	MinDrift      = -0.2
	MaxDrift      = 0.5
	MinVolatility = 0.0
	MaxVolatility = 0.6
	MinPaths      = 1
	MaxPaths      = 6
)

// Scenario is one named parameter set in a scenario file. A nil Seed means
// "draw a fresh seed at run time".
type Scenario struct {
	Name       string  `yaml:"name"`
	Drift      float64 `yaml:"drift"`
	Volatility float64 `yaml:"volatility"`
	Paths      int     `yaml:"paths"`
	Steps      int     `yaml:"steps"`
	Seed       *int64  `yaml:"seed,omitempty"`
}

// Input is a parsed scenario file.
type Input struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Parameters converts the scenario to engine parameters, substituting
// fallbackSeed when the scenario does not pin one.
func (s Scenario) Parameters(fallbackSeed int64) domain.SimulationParameters {
	seed := fallbackSeed
	if s.Seed != nil {
		seed = *s.Seed
	}
	return domain.SimulationParameters{
		Seed:       seed,
		Drift:      s.Drift,
		Volatility: s.Volatility,
		PathCount:  s.Paths,
		StepCount:  s.Steps,
	}
}

// InputParser handles parsing of scenario configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads scenarios from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Input, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and validates scenario YAML
func (ip *InputParser) Parse(data []byte) (*Input, error) {
	var input Input
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.applyDefaults(&input)

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &input, nil
}

// applyDefaults fills omitted counts with the visualizer defaults.
func (ip *InputParser) applyDefaults(input *Input) {
	for i := range input.Scenarios {
		if input.Scenarios[i].Paths == 0 {
			input.Scenarios[i].Paths = domain.DefaultPathCount
		}
		if input.Scenarios[i].Steps == 0 {
			input.Scenarios[i].Steps = domain.DefaultStepCount
		}
	}
}

// ValidateInput validates the loaded scenarios
func (ip *InputParser) ValidateInput(input *Input) error {
	if len(input.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	for i, scenario := range input.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			name := scenario.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return fmt.Errorf("scenario %s validation failed: %w", name, err)
		}
	}

	return nil
}

// validateScenario checks a single scenario against the slider bounds.
func (ip *InputParser) validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if s.Drift < MinDrift || s.Drift > MaxDrift {
		return fmt.Errorf("drift %v out of range [%v, %v]", s.Drift, MinDrift, MaxDrift)
	}
	// Negative volatility would still produce a well-defined numeric result,
	// but it is physically meaningless; reject it here.
	if s.Volatility < MinVolatility || s.Volatility > MaxVolatility {
		return fmt.Errorf("volatility %v out of range [%v, %v]", s.Volatility, MinVolatility, MaxVolatility)
	}
	if s.Paths < MinPaths || s.Paths > MaxPaths {
		return fmt.Errorf("paths %d out of range [%d, %d]", s.Paths, MinPaths, MaxPaths)
	}
	if s.Steps < 1 {
		return fmt.Errorf("steps %d must be >= 1", s.Steps)
	}
	return nil
}
