package output

import (
	"encoding/json"
	"fmt"

	"github.com/gbmviz/gbm-visualizer/internal/domain"
	"github.com/gbmviz/gbm-visualizer/internal/simulation"
)

// pathPalette cycles per path index.
var pathPalette = []string{"#dc2626", "#16a34a", "#2563eb", "#ea580c", "#9333ea", "#ca8a04"}

// HTMLFormatter renders a self-contained chart page: drift-field segments
// plus the run's sample paths, drawn with chart.js from a CDN.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

func (h HTMLFormatter) Format(result *domain.RunResult) ([]byte, error) {
	field := simulation.SlopeField(result.Parameters.Drift)

	datasets, err := h.buildDatasets(result, field)
	if err != nil {
		return nil, err
	}

	page := fmt.Sprintf(htmlPage,
		result.Parameters.Drift,
		result.Parameters.Volatility,
		result.Parameters.PathCount,
		result.Parameters.Seed,
		datasets,
		domain.PriceMin, domain.PriceMax,
	)
	return []byte(page), nil
}

// buildDatasets emits the chart.js dataset array: one thin segment dataset
// per field node, then one line per path.
func (h HTMLFormatter) buildDatasets(result *domain.RunResult, field domain.SlopeField) (string, error) {
	type xy struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	type dataset struct {
		Data        []xy    `json:"data"`
		BorderColor string  `json:"borderColor"`
		BorderWidth float64 `json:"borderWidth"`
		PointRadius int     `json:"pointRadius"`
		ShowLine    bool    `json:"showLine"`
	}

	datasets := make([]dataset, 0, len(field.Segments)+len(result.Trajectories))
	for _, seg := range field.Segments {
		datasets = append(datasets, dataset{
			Data:        []xy{{seg.T0, seg.S0}, {seg.T1, seg.S1}},
			BorderColor: "rgba(37, 99, 235, 0.7)",
			BorderWidth: 1.5,
			ShowLine:    true,
		})
	}
	for p, tr := range result.Trajectories {
		points := make([]xy, len(tr))
		for i, pt := range tr {
			points[i] = xy{pt.Time, pt.Price}
		}
		datasets = append(datasets, dataset{
			Data:        points,
			BorderColor: pathPalette[p%len(pathPalette)],
			BorderWidth: 2.5,
			ShowLine:    true,
		})
	}

	encoded, err := json.Marshal(datasets)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>GBM Slope Field</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            margin: 0;
            padding: 20px;
            background: #fafafa;
        }
        .container { max-width: 1100px; margin: 0 auto; }
        h1 { color: #1f2937; }
        .info {
            background: white;
            border: 1px solid #ccc;
            border-radius: 6px;
            padding: 12px 16px;
            margin-bottom: 16px;
            font-size: 14px;
        }
        canvas { background: #fafafa; }
    </style>
</head>
<body>
    <div class="container">
        <h1>GBM Slope Field: dS = &mu;S dt + &sigma;S dW</h1>
        <div class="info">
            &mu; (drift) = %.3f &nbsp; &sigma; (volatility) = %.3f &nbsp; paths = %d &nbsp; seed = %d<br>
            Blue segments: drift field (&mu;S). Colored lines: sample paths.
        </div>
        <canvas id="chart" width="1100" height="620"></canvas>
    </div>
    <script>
        const datasets = %s;
        new Chart(document.getElementById('chart'), {
            type: 'scatter',
            data: { datasets: datasets },
            options: {
                animation: false,
                responsive: false,
                plugins: { legend: { display: false }, tooltip: { enabled: false } },
                elements: { point: { radius: 0 } },
                scales: {
                    x: { min: 0, max: 1, title: { display: true, text: 'Time (t)' } },
                    y: { min: %.0f, max: %.0f, title: { display: true, text: 'Stock Price (S)' } }
                }
            }
        });
    </script>
</body>
</html>
`
