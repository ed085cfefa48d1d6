package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbmviz/gbm-visualizer/internal/config"
	"github.com/gbmviz/gbm-visualizer/internal/domain"
	"github.com/gbmviz/gbm-visualizer/internal/simulation"
)

func TestEndToEndSimulation(t *testing.T) {
	// Load a scenario file and run every scenario through the engine.
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile("../testdata/scenarios.yaml")
	require.NoError(t, err)
	require.Len(t, input.Scenarios, 3)

	sim := simulation.NewSimulator(nil)
	for _, scenario := range input.Scenarios {
		params := scenario.Parameters(0)
		require.NotZero(t, params.Seed, "test scenarios pin their seeds")

		result, err := sim.Run(params)
		require.NoError(t, err, "scenario %s", scenario.Name)
		assert.Len(t, result.Trajectories, scenario.Paths, "scenario %s", scenario.Name)

		for p, tr := range result.Trajectories {
			assert.Len(t, tr, scenario.Steps+1, "scenario %s path %d", scenario.Name, p)
			assert.Equal(t, domain.StartPrice, tr[0].Price)
			for _, pt := range tr {
				assert.GreaterOrEqual(t, pt.Price, domain.ClampFloor)
				assert.LessOrEqual(t, pt.Price, domain.ClampCeil)
			}
		}
	}
}

func TestScenarioReproducibility(t *testing.T) {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile("../testdata/scenarios.yaml")
	require.NoError(t, err)

	sim := simulation.NewSimulator(nil)
	baseline := input.Scenarios[0]

	first, err := sim.Simulate(baseline.Parameters(0))
	require.NoError(t, err)
	second, err := sim.Simulate(baseline.Parameters(0))
	require.NoError(t, err)

	for p := range first {
		assert.Equal(t, first[p], second[p], "path %d must be bit-identical", p)
	}
}
