package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/mazebench/evaluation"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

func fmtRuntime(r evaluation.Row) string { return fmt.Sprintf("%.4fs", r.RunTimeSeconds()) }

func fmtMemory(r evaluation.Row) string { return fmt.Sprintf("%d B", r.MemoryBytes) }

// WriteTable prints the pathfinding rows and the MDP rows as two bordered
// tables. Empty sections are omitted.
func WriteTable(w io.Writer, rows []evaluation.Row) error {
	var pf, md [][]string
	for _, r := range rows {
		switch r.Type {
		case evaluation.TypePathfinding:
			pf = append(pf, []string{
				r.Algorithm, strconv.Itoa(r.PathLength), r.Visited.String(),
				r.MaxFrontierSize.String(), fmtRuntime(r), fmtMemory(r),
			})
		case evaluation.TypeMDP:
			alg := r.Algorithm
			if !r.Converged {
				alg += " (not converged)"
			}
			md = append(md, []string{
				alg, strconv.Itoa(r.PathLength), r.TotalIterations.String(),
				r.InnerIterations.String(), r.OuterIterations.String(), fmtRuntime(r), fmtMemory(r),
			})
		}
	}

	var b strings.Builder
	if len(pf) > 0 {
		section(&b, "Pathfinding",
			[]string{"Algorithm", "Path Length", "Visited", "Max Frontier", "Runtime", "Memory"}, pf)
	}
	if len(md) > 0 {
		section(&b, "MDP",
			[]string{"Algorithm", "Path Length", "Total", "Inner", "Outer", "Runtime", "Memory"}, md)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSummaryTable prints Summarize output, one line per metric.
func WriteSummaryTable(w io.Writer, sums []Summary) error {
	rows := make([][]string, 0, len(sums))
	for _, s := range sums {
		rows = append(rows, []string{
			s.Type, s.Algorithm, strconv.Itoa(s.Size), string(s.Metric), strconv.Itoa(s.Count),
			strconv.FormatFloat(s.Mean, 'f', 4, 64), strconv.FormatFloat(s.Std, 'f', 4, 64),
		})
	}
	var b strings.Builder
	section(&b, "Summary", []string{"Type", "Algorithm", "Size", "Metric", "N", "Mean", "Std"}, rows)
	_, err := io.WriteString(w, b.String())
	return err
}

func section(b *strings.Builder, title string, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("=== " + title + " ==="))
	b.WriteString("\n\n")
	b.WriteString(t.String())
	b.WriteString("\n")
}
