//go:build windows

package uptime

import (
	"syscall"

	"golang.org/x/sys/windows"
)

var procGetTickCount64 = windows.NewLazySystemDLL("kernel32.dll").NewProc("GetTickCount64")

// tickCount performs the raw call. Swapped out in tests.
var tickCount = func() (uint64, error) {
	ret, _, err := procGetTickCount64.Call()
	return uint64(ret), err
}

// queryUptime reads the uptime on Windows from the GetTickCount64 tick
// counter, which reports milliseconds since boot directly. A zero count
// is ambiguous between "just booted" and a silent failure: it fails only
// when an error code accompanies it, otherwise zero is a valid uptime.
func queryUptime() (uint64, error) {
	ms, callErr := tickCount()
	if ms == 0 {
		if errno, ok := callErr.(syscall.Errno); ok && errno != 0 {
			return 0, &PlatformError{Op: "GetTickCount64", Err: errno}
		}
	}
	return ms, nil
}
