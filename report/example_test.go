package report_test

import (
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/mazebench/evaluation"
	"github.com/katalvlaran/mazebench/report"
)

func ExampleWriteCSV() {
	rows := []evaluation.Row{{
		Size: 10, Type: evaluation.TypePathfinding, Algorithm: "BFS",
		PathLength: 37, Visited: 180, MaxFrontierSize: 6,
		TotalIterations: evaluation.NA, InnerIterations: evaluation.NA, OuterIterations: evaluation.NA,
		RunTime: 42 * time.Microsecond, MemoryBytes: 8192, Converged: true,
	}}
	fmt.Println(report.CSVName("1f2e3d4c", "backtracking"))
	_ = report.WriteCSV(os.Stdout, rows)
	// Output:
	// 1f2e3d4c_eval_backtracking.csv
	// size,seed,type,algorithm,path_length,visited,total_iterations,inner_iterations,outer_iterations,max_frontier_size,runtime_s,memory_bytes
	// 10,0,pathfinding,BFS,37,180,,,,6,0.000042,8192
}

func ExampleSummarize() {
	var rows []evaluation.Row
	for _, visited := range []evaluation.Count{10, 20, 30} {
		rows = append(rows, evaluation.Row{
			Size: 5, Type: evaluation.TypePathfinding, Algorithm: "DFS",
			PathLength: 9, Visited: visited, MaxFrontierSize: 4,
			TotalIterations: evaluation.NA, InnerIterations: evaluation.NA, OuterIterations: evaluation.NA,
		})
	}
	for _, s := range report.Summarize(rows) {
		if s.Metric == report.MetricVisited {
			fmt.Printf("%s %dx%d %s n=%d mean=%.1f std=%.1f\n", s.Algorithm, s.Size, s.Size, s.Metric, s.Count, s.Mean, s.Std)
		}
	}
	// Output:
	// DFS 5x5 visited n=3 mean=20.0 std=10.0
}
