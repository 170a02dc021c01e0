//go:build darwin || freebsd

package uptime

import (
	"time"

	"golang.org/x/sys/unix"
)

// nowFn is swapped out in tests.
var nowFn = time.Now

// queryUptime reads the uptime on macOS, iOS and FreeBSD by subtracting
// the kernel's recorded boot instant (kern.boottime) from the current
// wall clock. GOOS=ios satisfies the darwin build constraint.
func queryUptime() (uint64, error) {
	tv, err := unix.SysctlTimeval("kern.boottime")
	if err != nil {
		return 0, &PlatformError{Op: "sysctl kern.boottime", Err: err}
	}
	boot := time.Unix(int64(tv.Sec), int64(tv.Usec)*1000)
	return elapsedMillis(boot, nowFn())
}
