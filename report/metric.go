package report

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazebench/evaluation"
)

// ErrUnknownMetric is returned for a metric name that is not a Row column.
var ErrUnknownMetric = errors.New("report: unknown metric")

// Metric names a numeric Row column, spelled as in the CSV header.
type Metric string

// Row metrics.
const (
	MetricPathLength      Metric = "path_length"
	MetricVisited         Metric = "visited"
	MetricMaxFrontierSize Metric = "max_frontier_size"
	MetricTotalIterations Metric = "total_iterations"
	MetricInnerIterations Metric = "inner_iterations"
	MetricOuterIterations Metric = "outer_iterations"
	MetricRuntime         Metric = "runtime_s"
	MetricMemory          Metric = "memory_bytes"
)

// Metrics lists every metric in CSV column order.
func Metrics() []Metric {
	return []Metric{
		MetricPathLength, MetricVisited, MetricMaxFrontierSize,
		MetricTotalIterations, MetricInnerIterations, MetricOuterIterations,
		MetricRuntime, MetricMemory,
	}
}

// ParseMetric validates a metric name.
func ParseMetric(s string) (Metric, error) {
	for _, m := range Metrics() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// Value extracts m from r. ok is false when the metric does not apply.
func (m Metric) Value(r evaluation.Row) (v float64, ok bool) {
	count := func(c evaluation.Count) (float64, bool) {
		return float64(c), c.Valid()
	}
	switch m {
	case MetricPathLength:
		return float64(r.PathLength), true
	case MetricVisited:
		return count(r.Visited)
	case MetricMaxFrontierSize:
		return count(r.MaxFrontierSize)
	case MetricTotalIterations:
		return count(r.TotalIterations)
	case MetricInnerIterations:
		return count(r.InnerIterations)
	case MetricOuterIterations:
		return count(r.OuterIterations)
	case MetricRuntime:
		return r.RunTimeSeconds(), true
	case MetricMemory:
		return float64(r.MemoryBytes), true
	default:
		return 0, false
	}
}
