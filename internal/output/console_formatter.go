package output

import (
	"bytes"
	"fmt"

	"github.com/gbmviz/gbm-visualizer/internal/domain"
)

// ConsoleFormatter renders a run as a concise text summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(result *domain.RunResult) ([]byte, error) {
	var buf bytes.Buffer
	p := result.Parameters

	fmt.Fprintln(&buf, "GBM SIMULATION RUN")
	fmt.Fprintln(&buf, "==================")
	fmt.Fprintf(&buf, "Seed:       %d\n", p.Seed)
	fmt.Fprintf(&buf, "Drift:      %.3f\n", p.Drift)
	fmt.Fprintf(&buf, "Volatility: %.3f\n", p.Volatility)
	fmt.Fprintf(&buf, "Paths:      %d x %d steps over [0, 1]\n", p.PathCount, p.StepCount)
	fmt.Fprintln(&buf)

	for i, tr := range result.Trajectories {
		fmt.Fprintf(&buf, "path %d: start=%s end=%s\n",
			i, FormatPrice(tr[0].Price), FormatPrice(tr.TerminalPrice()))
	}

	s := result.Summary
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Terminal: min=%s median=%s max=%s\n",
		FormatPrice(s.TerminalMin), FormatPrice(s.TerminalMedian), FormatPrice(s.TerminalMax))
	fmt.Fprintf(&buf, "Band:     low=%s high=%s (clamped to [%s, %s])\n",
		FormatPrice(s.BandLow), FormatPrice(s.BandHigh),
		FormatPrice(domain.ClampFloor), FormatPrice(domain.ClampCeil))

	return buf.Bytes(), nil
}
