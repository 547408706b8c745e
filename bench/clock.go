// SPDX-License-Identifier: MIT

package bench

import "time"

// Clock is the time source used to bracket each timed kernel call.
// The elapsed time of a run is end.Sub(start) of two consecutive Now calls.
type Clock interface {
	Now() time.Time
}

// wallClock reads time.Now, which carries a monotonic reading, so
// end.Sub(start) is immune to wall-clock adjustments.
type wallClock struct{}

// Now implements Clock.
func (wallClock) Now() time.Time { return time.Now() }

// WallClock returns the default high-resolution monotonic Clock.
func WallClock() Clock { return wallClock{} }
