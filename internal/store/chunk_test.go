package store

import (
	"testing"

	"github.com/gbmviz/gbm-visualizer/internal/domain"
	"github.com/gbmviz/gbm-visualizer/internal/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simulatedTrajectory(t *testing.T, steps int) domain.Trajectory {
	t.Helper()
	sim := simulation.NewSimulator(nil)
	trs, err := sim.Simulate(domain.SimulationParameters{
		Seed:       12345,
		Drift:      0.15,
		Volatility: 0.25,
		PathCount:  1,
		StepCount:  steps,
	})
	require.NoError(t, err)
	return trs[0]
}

func TestEncodeDecodeTrajectory(t *testing.T) {
	tr := simulatedTrajectory(t, 250)

	frame, err := EncodeTrajectory(tr)
	require.NoError(t, err)

	decoded, err := DecodeTrajectory(frame)
	require.NoError(t, err)
	require.Len(t, decoded, len(tr))

	for i := range tr {
		// XOR chunks store float64 values losslessly; times rebuild from dt.
		assert.Equal(t, tr[i].Price, decoded[i].Price, "price %d", i)
		assert.InDelta(t, tr[i].Time, decoded[i].Time, 1e-12, "time %d", i)
	}
}

func TestDecodeRejectsCorruptedFrame(t *testing.T) {
	frame, err := EncodeTrajectory(simulatedTrajectory(t, 20))
	require.NoError(t, err)

	frame[len(frame)/2] ^= 0xff
	_, err = DecodeTrajectory(frame)
	assert.ErrorIs(t, err, ErrInvalidChecksum)
}

func TestDecodeRejectsShortFrame(t *testing.T) {
	_, err := DecodeTrajectory([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrTooSmall)
}

func TestEncodeRejectsEmptyTrajectory(t *testing.T) {
	_, err := EncodeTrajectory(nil)
	assert.ErrorIs(t, err, ErrEmptyTrajectory)
}
