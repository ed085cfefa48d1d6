package simulation

import (
	"sort"

	"github.com/gbmviz/gbm-visualizer/internal/domain"
)

// Summarize computes ensemble statistics over the trajectories of one run:
// terminal-price spread and percentiles, plus the lowest and highest price
// seen at any step. Display-layer only.
func Summarize(trajectories []domain.Trajectory) domain.Summary {
	if len(trajectories) == 0 {
		return domain.Summary{}
	}

	terminals := make([]float64, len(trajectories))
	bandLow := trajectories[0][0].Price
	bandHigh := bandLow

	for i, tr := range trajectories {
		terminals[i] = tr.TerminalPrice()
		for _, pt := range tr {
			if pt.Price < bandLow {
				bandLow = pt.Price
			}
			if pt.Price > bandHigh {
				bandHigh = pt.Price
			}
		}
	}

	sort.Float64s(terminals)
	n := len(terminals)

	return domain.Summary{
		TerminalMin:    terminals[0],
		TerminalMedian: terminals[n/2],
		TerminalMax:    terminals[n-1],
		TerminalP10:    terminals[n/10],
		TerminalP90:    terminals[9*n/10],
		BandLow:        bandLow,
		BandHigh:       bandHigh,
	}
}
