package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/gbmviz/gbm-visualizer/internal/domain"
)

// CSVFormatter writes one row per sampled point: path, step, time, price.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(result *domain.RunResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Path", "Step", "Time", "Price"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for p, tr := range result.Trajectories {
		for i, pt := range tr {
			row := []string{
				strconv.Itoa(p),
				strconv.Itoa(i),
				FormatTime(pt.Time),
				PriceString(pt.Price),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
