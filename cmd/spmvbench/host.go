// SPDX-License-Identifier: MIT

package main

import (
	"runtime"

	"github.com/jaypipes/ghw"
)

// hostInfo is the CPU topology relevant to thread-count choices.
type hostInfo struct {
	cores   int // physical cores, 0 when unknown
	threads int // hardware threads, GOMAXPROCS-bounded fallback
}

// probeHost reads the CPU topology. Detection failures (containers without
// /sys, unsupported platforms) fall back to runtime.NumCPU.
func probeHost() (hostInfo, error) {
	h := hostInfo{threads: runtime.NumCPU()}
	cpu, err := ghw.CPU(ghw.WithDisableWarnings())
	if err != nil {
		return h, err
	}
	if cpu.TotalCores > 0 {
		h.cores = int(cpu.TotalCores)
	}
	if cpu.TotalThreads > 0 {
		h.threads = int(cpu.TotalThreads)
	}

	return h, nil
}

// checkThreads logs the host topology and warns about oversubscription,
// which skews latency for every schedule.
func checkThreads(lg *logger, requested []int) {
	h, err := probeHost()
	if err != nil {
		lg.Warnf("cpu topology unavailable (%v), assuming %d hardware threads", err, h.threads)
	} else {
		lg.Infof("host: %d cores, %d hardware threads, GOMAXPROCS=%d", h.cores, h.threads, runtime.GOMAXPROCS(0))
	}

	for _, n := range requested {
		if n > h.threads {
			lg.Warnf("threads=%d exceeds %d hardware threads; timings will include oversubscription", n, h.threads)
		}
	}
}
