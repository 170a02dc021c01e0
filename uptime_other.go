//go:build !linux && !windows && !darwin && !freebsd

package uptime

// queryUptime fails deterministically on platforms with no known uptime
// mechanism.
func queryUptime() (uint64, error) {
	return 0, ErrUnsupported
}
