// SPDX-License-Identifier: MIT

package report

import "errors"

// ErrEmpty indicates there is nothing to summarize, tabulate or plot.
var ErrEmpty = errors.New("report: no measurements")
