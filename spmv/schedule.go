// SPDX-License-Identifier: MIT

package spmv

import (
	"fmt"
	"strings"
)

// Schedule selects how row blocks are distributed across workers.
//
//   - Static  - contiguous blocks of Chunk rows dealt round-robin up front;
//     no runtime rebalancing. Best when rows carry similar nonzero counts.
//   - Dynamic - workers repeatedly claim the next block of Chunk rows from a
//     shared counter. Balances skewed rows at the cost of counter traffic.
//   - Guided  - like Dynamic, but block size starts near rows/threads and
//     shrinks with the remaining work down to Chunk.
type Schedule int

const (
	// Static deals fixed blocks round-robin before any work starts.
	Static Schedule = iota

	// Dynamic claims fixed-size blocks from a shared atomic counter.
	Dynamic

	// Guided claims shrinking blocks from a shared atomic counter.
	Guided
)

// scheduleNames is indexed by Schedule.
var scheduleNames = [...]string{
	Static:  "static",
	Dynamic: "dynamic",
	Guided:  "guided",
}

// Schedules lists every supported policy in declaration order.
func Schedules() []Schedule {
	return []Schedule{Static, Dynamic, Guided}
}

// Valid reports whether s is one of Static, Dynamic, Guided.
func (s Schedule) Valid() bool {
	return s >= Static && s <= Guided
}

// String returns the lower-case policy name, or "schedule(N)" for unknown values.
func (s Schedule) String() string {
	if !s.Valid() {
		return fmt.Sprintf("schedule(%d)", int(s))
	}

	return scheduleNames[s]
}

// ParseSchedule maps "static", "dynamic" or "guided" (case-insensitive,
// surrounding spaces ignored) to a Schedule.
//
// Errors: ErrConfiguration wrapping ErrUnknownSchedule.
func ParseSchedule(name string) (Schedule, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range scheduleNames {
		if n == key {
			return Schedule(i), nil
		}
	}

	return 0, configErrorf(fmt.Sprintf("ParseSchedule(%q)", name), ErrUnknownSchedule)
}
