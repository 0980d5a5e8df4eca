// Package report turns evaluation rows and MDP snapshots into files and
// console output.
//
//   - WriteCSV / CSVName    results file, one record per row, NA as empty.
//   - WriteTable            bordered console tables (lipgloss).
//   - Summarize             mean and sample std per (algorithm, size, metric).
//   - ConvergenceChart      HTML line chart of ΔV per sweep (go-echarts).
//   - BenchmarkChart        HTML bar chart of a metric's mean per algorithm.
package report
