// Package format provides human-readable rendering of durations for the uptime CLI.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Compact renders a duration using week, day, hour, minute and second
// units, omitting leading zero units, e.g. "2w3d4h5m6s" or "14m2s".
// Sub-second remainders are dropped; anything under one second renders
// as "0s". Negative durations are treated as zero.
func Compact(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Second)

	weeks := d / (7 * 24 * time.Hour)
	d -= weeks * 7 * 24 * time.Hour
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	seconds := (d - minutes*time.Minute) / time.Second

	var b strings.Builder
	if weeks > 0 {
		fmt.Fprintf(&b, "%dw", weeks)
	}
	if days > 0 || b.Len() > 0 {
		fmt.Fprintf(&b, "%dd", days)
	}
	if hours > 0 || b.Len() > 0 {
		fmt.Fprintf(&b, "%dh", hours)
	}
	if minutes > 0 || b.Len() > 0 {
		fmt.Fprintf(&b, "%dm", minutes)
	}
	fmt.Fprintf(&b, "%ds", seconds)
	return b.String()
}
