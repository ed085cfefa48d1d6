package output

import (
	"strconv"

	"github.com/gbmviz/gbm-visualizer/pkg/price"
)

// FormatPrice formats a simulated price for display with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatPrice(v float64) string { return price.New(v).Round().Format() }

// PriceString formats a price without the currency prefix, for CSV cells.
func PriceString(v float64) string { return price.New(v).Round().String() }

// FormatTime formats a simulation time coordinate with 4 decimals.
func FormatTime(t float64) string { return strconv.FormatFloat(t, 'f', 4, 64) }
