package uptime

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Get returns the time elapsed since the operating system booted, in
// milliseconds. The value is read fresh on every call.
func Get() (uint64, error) {
	return queryUptime()
}

// Duration returns the elapsed time since boot as a time.Duration whose
// millisecond count equals the value reported by Get for the same
// reading. Errors are propagated from Get unchanged.
func Duration() (time.Duration, error) {
	ms, err := queryUptime()
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// BootTime returns the wall-clock instant the operating system booted,
// derived from the current uptime reading.
func BootTime() (time.Time, error) {
	d, err := Duration()
	if err != nil {
		return time.Time{}, err
	}
	return time.Now().Add(-d), nil
}

// parseProcUptime extracts the uptime from /proc/uptime content, whose
// first whitespace-separated token is uptime in floating-point seconds.
// Fractional milliseconds are truncated.
func parseProcUptime(data []byte) (uint64, error) {
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, &FormatError{Content: string(data)}
	}
	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return 0, &FormatError{Content: fields[0]}
	}
	return uint64(seconds * 1000), nil
}

// elapsedMillis returns the milliseconds between boot and now. A boot
// instant after now means the kernel's boot record and the wall clock
// disagree, e.g. the clock was stepped backwards; that is reported as an
// error rather than wrapped into a huge unsigned value.
func elapsedMillis(boot, now time.Time) (uint64, error) {
	d := now.Sub(boot)
	if d < 0 {
		return 0, &PlatformError{Op: "kern.boottime", Err: errBootInFuture}
	}
	return uint64(d / time.Millisecond), nil
}
