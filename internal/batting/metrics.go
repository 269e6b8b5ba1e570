package batting

import (
	"fmt"
	"sort"
	"strings"

	"battingcli/internal/errors"
	"battingcli/pkg/contracts/domain"
)

// MetricFunc computes a single ratio metric from one batting record.
// Implementations must be pure and must return 0.0 when the record offers
// no opportunity for the metric (zero denominator), never an error.
type MetricFunc func(domain.BattingRecord) float64

// Metric identifies a registered metric by name.
type Metric string

const (
	// MetricBattingAverage is hits per at-bat.
	MetricBattingAverage Metric = "avg"
	// MetricOnBasePercentage is the rate of reaching base via hit or walk.
	MetricOnBasePercentage Metric = "obp"
	// MetricSluggingPercentage is weighted hit-bases per at-bat.
	MetricSluggingPercentage Metric = "slg"
)

// metricRegistry maps metric names to their implementations.
var metricRegistry = map[Metric]MetricFunc{
	MetricBattingAverage:     BattingAverage,
	MetricOnBasePercentage:   OnBasePercentage,
	MetricSluggingPercentage: SluggingPercentage,
}

// BattingAverage computes H/AB. Returns 0.0 when the record has no at-bats.
func BattingAverage(r domain.BattingRecord) float64 {
	if r.AtBats == 0 {
		return 0.0
	}
	return float64(r.Hits) / float64(r.AtBats)
}

// OnBasePercentage computes (H+BB)/(AB+BB). Returns 0.0 when the record has
// neither at-bats nor walks.
func OnBasePercentage(r domain.BattingRecord) float64 {
	denominator := r.AtBats + r.Walks
	if denominator == 0 {
		return 0.0
	}
	return float64(r.Hits+r.Walks) / float64(denominator)
}

// SluggingPercentage computes (1B + 2*2B + 3*3B + 4*HR)/AB. Returns 0.0 when
// the record has no at-bats.
func SluggingPercentage(r domain.BattingRecord) float64 {
	if r.AtBats == 0 {
		return 0.0
	}
	return float64(r.TotalBases()) / float64(r.AtBats)
}

// Func returns the implementation for a registered metric.
func (m Metric) Func() (MetricFunc, error) {
	fn, ok := metricRegistry[m]
	if !ok {
		return nil, errors.NewInvalidArgumentError(
			fmt.Sprintf("unknown metric: %s (known: %s)", m, strings.Join(MetricNames(), ", ")))
	}
	return fn, nil
}

// String returns the metric name.
func (m Metric) String() string {
	return string(m)
}

// MetricByName resolves a metric name (case-insensitive) to its
// implementation. Unknown names return an INVALID_ARGUMENT error; this is the
// only condition in the package that halts an analysis run.
func MetricByName(name string) (MetricFunc, error) {
	return Metric(strings.ToLower(strings.TrimSpace(name))).Func()
}

// MetricNames lists the registered metric names in stable order.
func MetricNames() []string {
	names := make([]string, 0, len(metricRegistry))
	for m := range metricRegistry {
		names = append(names, string(m))
	}
	sort.Strings(names)
	return names
}
