package exporter

import (
	"fmt"
)

// formatMetric formats a ratio metric for output with the conventional three
// decimal places (e.g. a .300 average prints as 0.300).
func formatMetric(value float64) string {
	return fmt.Sprintf("%.3f", value)
}

// formatInt formats an int64 counting stat for CSV output
func formatInt(i int64) string {
	return fmt.Sprintf("%d", i)
}
