package output

import (
	"encoding/json"

	"github.com/gbmviz/gbm-visualizer/internal/domain"
)

// JSONFormatter serializes the run result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(result *domain.RunResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
