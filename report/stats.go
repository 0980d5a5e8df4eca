package report

import (
	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/mazebench/evaluation"
)

// Summary is the mean and sample standard deviation of one metric over
// every row sharing an algorithm and maze size.
type Summary struct {
	Type      string
	Algorithm string
	Size      int
	Metric    Metric
	Count     int
	Mean      float64
	Std       float64
}

type groupKey struct {
	algorithm string
	size      int
}

// Summarize groups rows by (algorithm, size) in first-seen order and
// summarizes every metric that applies to the group. Std is 0 for a
// single sample.
func Summarize(rows []evaluation.Row) []Summary {
	var order []groupKey
	groups := make(map[groupKey][]evaluation.Row)
	for _, r := range rows {
		k := groupKey{r.Algorithm, r.Size}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	var out []Summary
	for _, k := range order {
		g := groups[k]
		for _, m := range Metrics() {
			var xs []float64
			for _, r := range g {
				if v, ok := m.Value(r); ok {
					xs = append(xs, v)
				}
			}
			if len(xs) == 0 {
				continue
			}
			mean, std := meanStd(xs)
			out = append(out, Summary{
				Type:      g[0].Type,
				Algorithm: k.algorithm,
				Size:      k.size,
				Metric:    m,
				Count:     len(xs),
				Mean:      mean,
				Std:       std,
			})
		}
	}
	return out
}

// meanStd returns the mean and sample standard deviation of a non-empty
// sample; std is 0 for a single value.
func meanStd(xs []float64) (mean, std float64) {
	data := stats.Float64Data(xs)
	mean, _ = stats.Mean(data)
	if len(xs) < 2 {
		return mean, 0
	}
	std, _ = stats.StandardDeviationSample(data)
	return mean, std
}
