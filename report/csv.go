// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// fixedColumns precede the per-run timings on every CSV line.
var fixedColumns = []string{"matrix", "kernel", "schedule", "chunk", "threads"}

// WriteCSV writes recs as CSV lines, optionally preceded by a header whose
// timing columns t1..tN cover the longest record. Timings are written with
// the shortest representation that round-trips.
//
// Errors: the first write error of the underlying csv.Writer.
func WriteCSV(w io.Writer, recs []Record, header bool) error {
	cw := csv.NewWriter(w)

	if header {
		var n int
		for _, r := range recs {
			n = max(n, len(r.Millis))
		}
		row := append([]string(nil), fixedColumns...)
		for i := 1; i <= n; i++ {
			row = append(row, "t"+strconv.Itoa(i))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("WriteCSV: header: %w", err)
		}
	}

	for i, r := range recs {
		row := make([]string, 0, len(fixedColumns)+len(r.Millis))
		row = append(row,
			r.Matrix,
			r.Kernel,
			r.Schedule,
			strconv.Itoa(r.Chunk),
			strconv.Itoa(r.Threads),
		)
		for _, ms := range r.Millis {
			row = append(row, strconv.FormatFloat(ms, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("WriteCSV: record %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}
