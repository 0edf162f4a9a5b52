// Package timing measures a single hash computation against the monotonic
// clock and formats the elapsed duration for display.
package timing

import (
	"fmt"
	"strings"
	"time"
)

// Measure runs fn and returns its result together with the wall-clock time
// it took. The clock marks sit immediately around the call, and the stop
// mark is taken on both the success and the failure path. time.Now carries
// Go's monotonic reading, so the duration is non-negative even across
// wall-clock adjustments.
func Measure(fn func() (string, error)) (string, time.Duration, error) {
	start := time.Now()
	result, err := fn()
	elapsed := time.Since(start)
	return result, elapsed, err
}

// Format renders d either as whole milliseconds ("245ms") or as the
// ISO-8601 seconds form ("PT0.245S"). The ISO form keeps millisecond
// precision with trailing fractional zeros trimmed, so a flat four
// seconds prints as "PT4S". Precision beyond milliseconds is dropped at
// display time only.
func Format(d time.Duration, millis bool) string {
	ms := d.Milliseconds()
	if millis {
		return fmt.Sprintf("%dms", ms)
	}

	sec := ms / 1000
	frac := ms % 1000
	if frac == 0 {
		return fmt.Sprintf("PT%dS", sec)
	}
	fracStr := strings.TrimRight(fmt.Sprintf("%03d", frac), "0")
	return fmt.Sprintf("PT%d.%sS", sec, fracStr)
}
