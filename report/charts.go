package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/mazebench/evaluation"
	"github.com/katalvlaran/mazebench/mdp"
)

// ErrNoData is returned when a chart would be empty.
var ErrNoData = errors.New("report: nothing to chart")

// Series is one solver's snapshot sequence for ConvergenceChart.
type Series struct {
	Name      string
	Snapshots []mdp.Snapshot
}

// ConvergenceChart renders an HTML page with one line per series plotting
// ΔV of every sweep or evaluation snapshot. Improvement snapshots carry
// no ΔV and are skipped.
func ConvergenceChart(w io.Writer, title string, series ...Series) error {
	longest := 0
	data := make([][]opts.LineData, len(series))
	for i, s := range series {
		for _, snap := range s.Snapshots {
			if snap.Phase == mdp.PhaseImprove {
				continue
			}
			data[i] = append(data[i], opts.LineData{Value: snap.Delta})
		}
		longest = max(longest, len(data[i]))
	}
	if longest == 0 {
		return ErrNoData
	}

	steps := make([]string, longest)
	for i := range steps {
		steps[i] = strconv.Itoa(i + 1)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "max value change per sweep"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "shine"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "sweep"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ΔV", Type: "log"}),
	)
	line.SetXAxis(steps)
	for i, s := range series {
		line.AddSeries(s.Name, data[i])
	}

	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(line)
	return page.Render(w)
}

// BenchmarkChart renders an HTML page with one bar chart of the metric's
// mean per algorithm, one series per maze size.
func BenchmarkChart(w io.Writer, rows []evaluation.Row, metric Metric) error {
	var algorithms []string
	var sizes []int
	seenAlg, seenSize := map[string]bool{}, map[int]bool{}
	means := make(map[groupKey]float64)
	for _, s := range Summarize(rows) {
		if s.Metric != metric {
			continue
		}
		if !seenAlg[s.Algorithm] {
			seenAlg[s.Algorithm] = true
			algorithms = append(algorithms, s.Algorithm)
		}
		if !seenSize[s.Size] {
			seenSize[s.Size] = true
			sizes = append(sizes, s.Size)
		}
		means[groupKey{s.Algorithm, s.Size}] = s.Mean
	}
	if len(algorithms) == 0 {
		return fmt.Errorf("%w: no rows carry %s", ErrNoData, metric)
	}

	bar := charts.NewBar()
	title := "Mean " + string(metric)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "by algorithm and maze size"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "shine"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: string(metric)}),
	)
	bar.SetXAxis(algorithms)
	for _, size := range sizes {
		items := make([]opts.BarData, len(algorithms))
		for i, alg := range algorithms {
			if v, ok := means[groupKey{alg, size}]; ok {
				items[i] = opts.BarData{Value: v}
			}
		}
		bar.AddSeries(fmt.Sprintf("%dx%d", size, size), items)
	}

	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(bar)
	return page.Render(w)
}
