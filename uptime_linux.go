//go:build linux

package uptime

import "os"

// procUptime is the virtual file exposing uptime and idle time as
// floating-point seconds. Overridden in tests.
var procUptime = "/proc/uptime"

// queryUptime reads the uptime on Linux and Android from /proc/uptime.
// GOOS=android satisfies the linux build constraint, so both families
// compile this branch.
func queryUptime() (uint64, error) {
	data, err := os.ReadFile(procUptime)
	if err != nil {
		return 0, &SourceError{Path: procUptime, Err: err}
	}
	return parseProcUptime(data)
}
