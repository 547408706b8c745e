// SPDX-License-Identifier: MIT

// Command spmvbench reads a Matrix-Market file, converts it to CSR and times
// sparse matrix-vector products under the requested concurrency settings.
//
//	spmvbench -mode par -schedule guided -chunk 100 -threads 8 bcsstk17.mtx
//	spmvbench -sweep -threads-list 1,2,4,8 -chunks-list 10,100 -header -o out.csv m.mtx
//
// Timings go to stdout (or -o) as CSV; diagnostics go to stderr.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/katalvlaran/spmvbench/bench"
	"github.com/katalvlaran/spmvbench/csr"
	"github.com/katalvlaran/spmvbench/mtx"
	"github.com/katalvlaran/spmvbench/report"
	"github.com/katalvlaran/spmvbench/spmv"
	"github.com/tebeka/atexit"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		atexit.Exit(0)
	}
	if err != nil {
		newLogger(os.Stderr).Errorf("%v", err)
		atexit.Exit(2)
	}
	if cfg.noColor {
		color.NoColor = true
	}
	lg := newLogger(os.Stderr)

	out, err := openOutput(cfg.output)
	if err != nil {
		lg.Errorf("%v", err)
		atexit.Exit(1)
	}
	atexit.Register(func() {
		if err := out.Close(); err != nil {
			lg.Errorf("output: %v", err)
		}
	})

	if err = run(cfg, out, lg); err != nil {
		lg.Errorf("%v", err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// output is a buffered CSV sink; Close flushes and closes the file.
type output struct {
	*bufio.Writer
	f *os.File // nil for stdout
}

func openOutput(path string) (*output, error) {
	if path == "" {
		return &output{Writer: bufio.NewWriter(os.Stdout)}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	return &output{Writer: bufio.NewWriter(f), f: f}, nil
}

func (o *output) Close() error {
	err := o.Flush()
	if o.f != nil {
		err = errors.Join(err, o.f.Close())
	}

	return err
}

// run executes one benchmark session and writes its records to w.
// Pipeline: read matrix -> build CSR -> run cases -> table -> CSV/plot.
func run(cfg *cliConfig, w io.Writer, lg *logger) error {
	hdr, store, err := mtx.ReadFile(cfg.matrixPath)
	if err != nil {
		return err
	}
	a, err := csr.BuildFromStore(store)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.matrixPath, err)
	}
	name := mtx.MatrixName(cfg.matrixPath)
	lg.Infof("%s: %dx%d nnz=%d field=%s", name, a.Rows(), a.Cols(), a.NNZ(), hdr.Field)

	if cfg.mode == modePar || cfg.sweep {
		requested := []int{cfg.kernel.Threads}
		if cfg.sweep {
			requested = cfg.threads
		}
		checkThreads(lg, requested)
	}

	recs, err := measure(cfg, a, name, lg)
	if err != nil {
		return err
	}

	tbl := report.NewTable()
	for _, r := range recs {
		if tbl.Add(r) {
			lg.Warnf("duplicate configuration %s, keeping the last measurement", r.Label())
		}
	}
	sorted := tbl.Records()

	if cfg.summary {
		for _, r := range sorted {
			s, err := report.Summarize(r.Millis)
			if err != nil {
				return err
			}
			lg.Infof("%s [%s] %v", r.Label(), r.ID, s)
		}
	}
	if err = report.WriteCSV(w, sorted, cfg.header); err != nil {
		return err
	}
	if cfg.plotPath != "" {
		if err = report.PlotLatency(sorted, cfg.plotPath); err != nil {
			return err
		}
		lg.Infof("plot written to %s", cfg.plotPath)
	}

	return nil
}

// measure runs the selected kernel(s) and converts results to records in
// execution order.
func measure(cfg *cliConfig, a *csr.Matrix, name string, lg *logger) ([]report.Record, error) {
	opts := cfg.benchOptions()

	if cfg.mode == modeSeq || cfg.sweep {
		res, err := bench.Run(spmv.SequentialKernel(), a, opts...)
		if err != nil {
			return nil, fmt.Errorf("sequential: %w", err)
		}
		lg.Infof("sequential: %d runs, seed=%d", len(res.Durations), res.Seed)
		recs := []report.Record{report.NewRecord(name, report.KernelSequential, "", 0, 1, res.Millis())}
		if !cfg.sweep {
			return recs, nil
		}
		// Replay the baseline's vector across the grid.
		opts = append(opts, bench.WithSeed(res.Seed))

		cases, err := bench.Sweep(a, bench.Grid(cfg.threads, spmv.Schedules(), cfg.chunks), opts...)
		if err != nil {
			return nil, err
		}
		for _, c := range cases {
			recs = append(recs, parallelRecord(name, c.Config, c.Result))
		}
		lg.Infof("sweep: %d configurations", len(cases))

		return recs, nil
	}

	k, err := spmv.ParallelKernel(cfg.kernel)
	if err != nil {
		return nil, err
	}
	res, err := bench.Run(k, a, opts...)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", cfg.kernel, err)
	}
	lg.Infof("%v: %d runs, seed=%d", cfg.kernel, len(res.Durations), res.Seed)

	return []report.Record{parallelRecord(name, cfg.kernel, res)}, nil
}

func parallelRecord(name string, c spmv.Config, res *bench.Result) report.Record {
	return report.NewRecord(name, report.KernelParallel, c.Schedule.String(), c.Chunk, c.Threads, res.Millis())
}
