// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log"

	"github.com/fatih/color"
)

// logger writes leveled diagnostics with colored prefixes.
type logger struct {
	l *log.Logger

	info, warn, fail string
}

func newLogger(w io.Writer) *logger {
	return &logger{
		l:    log.New(w, "", log.LstdFlags),
		info: color.New(color.FgCyan).Sprint("INFO "),
		warn: color.New(color.FgYellow).Sprint("WARN "),
		fail: color.New(color.FgRed, color.Bold).Sprint("FATAL"),
	}
}

func (lg *logger) Infof(format string, args ...any) {
	lg.l.Printf(lg.info+" "+format, args...)
}

func (lg *logger) Warnf(format string, args ...any) {
	lg.l.Printf(lg.warn+" "+format, args...)
}

func (lg *logger) Errorf(format string, args ...any) {
	lg.l.Printf(lg.fail+" "+format, args...)
}
