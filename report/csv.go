package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/mazebench/evaluation"
)

// CSVHeader is the column order written by WriteCSV.
var CSVHeader = []string{
	"size", "seed", "type", "algorithm", "path_length", "visited",
	"total_iterations", "inner_iterations", "outer_iterations",
	"max_frontier_size", "runtime_s", "memory_bytes",
}

// CSVName is the file name of a run's results: <runID>_eval_<generator>.csv.
func CSVName(runID, generator string) string {
	return fmt.Sprintf("%s_eval_%s.csv", runID, generator)
}

// WriteCSV writes the header and one record per row. NA metrics are empty
// fields; runtime is in seconds with six decimals.
func WriteCSV(w io.Writer, rows []evaluation.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.Size),
			strconv.FormatInt(r.Seed, 10),
			r.Type,
			r.Algorithm,
			strconv.Itoa(r.PathLength),
			r.Visited.String(),
			r.TotalIterations.String(),
			r.InnerIterations.String(),
			r.OuterIterations.String(),
			r.MaxFrontierSize.String(),
			strconv.FormatFloat(r.RunTimeSeconds(), 'f', 6, 64),
			strconv.FormatUint(r.MemoryBytes, 10),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
