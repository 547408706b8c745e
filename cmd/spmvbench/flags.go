// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spmvbench/bench"
	"github.com/katalvlaran/spmvbench/spmv"
)

const (
	modeSeq = "seq"
	modePar = "par"
)

var errUsage = errors.New("usage")

// cliConfig is the parsed command line.
type cliConfig struct {
	matrixPath string

	mode     string
	kernel   spmv.Config
	runs     int
	warmups  int
	seed     int64
	sweep    bool
	threads  []int
	chunks   []int
	output   string
	header   bool
	plotPath string
	summary  bool
	noColor  bool
}

// parseFlags reads args (without the program name). Numeric and schedule
// values are only parsed here; range checks happen in spmv and bench so the
// CLI reports exactly the library errors.
func parseFlags(args []string, stderr io.Writer) (*cliConfig, error) {
	fs := flag.NewFlagSet("spmvbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: spmvbench [flags] <matrix.mtx>")
		fs.PrintDefaults()
	}

	var (
		c           cliConfig
		schedule    string
		threadsList string
		chunksList  string
	)
	def := spmv.DefaultConfig()
	fs.StringVar(&c.mode, "mode", modePar, "kernel: seq or par")
	fs.StringVar(&schedule, "schedule", def.Schedule.String(), "parallel schedule: static, dynamic or guided")
	fs.IntVar(&c.kernel.Chunk, "chunk", def.Chunk, "rows per claimed block (0 = schedule default)")
	fs.IntVar(&c.kernel.Threads, "threads", def.Threads, "worker goroutines")
	fs.IntVar(&c.runs, "runs", bench.DefaultRuns, "timed runs per configuration")
	fs.IntVar(&c.warmups, "warmups", bench.DefaultWarmups, "untimed warm-up runs per configuration")
	fs.Int64Var(&c.seed, "seed", 0, "input vector seed (0 = fresh seed per run)")
	fs.BoolVar(&c.sweep, "sweep", false, "benchmark every schedule over -threads-list x -chunks-list, plus a sequential baseline")
	fs.StringVar(&threadsList, "threads-list", "1,2,4,8,16", "comma-separated thread counts for -sweep")
	fs.StringVar(&chunksList, "chunks-list", "10,100,1000", "comma-separated chunk sizes for -sweep")
	fs.StringVar(&c.output, "o", "", "CSV output file (default stdout)")
	fs.BoolVar(&c.header, "header", false, "write a CSV header line (rows: sequential baseline first, then by schedule, chunk, threads)")
	fs.StringVar(&c.plotPath, "plot", "", "write a latency box plot (.png, .svg, .pdf)")
	fs.BoolVar(&c.summary, "summary", false, "log summary statistics per configuration")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored diagnostics")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, fmt.Errorf("%w: expected one matrix file, got %d arguments", errUsage, fs.NArg())
	}
	c.matrixPath = fs.Arg(0)

	var err error
	switch c.mode {
	case modeSeq, modePar:
	default:
		return nil, fmt.Errorf("%w: -mode %q, want %s or %s", errUsage, c.mode, modeSeq, modePar)
	}
	if c.kernel.Schedule, err = spmv.ParseSchedule(schedule); err != nil {
		return nil, fmt.Errorf("-schedule: %w", err)
	}
	if c.threads, err = parseIntList(threadsList); err != nil {
		return nil, fmt.Errorf("-threads-list: %w", err)
	}
	if c.chunks, err = parseIntList(chunksList); err != nil {
		return nil, fmt.Errorf("-chunks-list: %w", err)
	}

	return &c, nil
}

// parseIntList parses "1, 2,4" into []int{1, 2, 4}. Empty items are skipped.
func parseIntList(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", errUsage, f)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty list", errUsage)
	}

	return out, nil
}

// benchOptions maps the command line onto harness options.
func (c *cliConfig) benchOptions() []bench.Option {
	opts := []bench.Option{bench.WithRuns(c.runs), bench.WithWarmups(c.warmups)}
	if c.seed != 0 {
		opts = append(opts, bench.WithSeed(c.seed))
	}

	return opts
}
