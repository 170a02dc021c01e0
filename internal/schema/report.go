// Package schema defines the data structures for the uptime CLI's output formats.
package schema

import "time"

// Report represents the complete JSON output structure for an uptime query.
type Report struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	Hostname     string `json:"hostname"`
	UptimeMillis uint64 `json:"uptime_ms"`
	Uptime       string `json:"uptime"`
	BootTimeUTC  string `json:"boot_time_utc"`
	TimestampUTC string `json:"timestamp_utc"`
}

// NewReport creates a Report from a single uptime reading.
func NewReport(goos, arch, hostname string, uptimeMillis uint64, uptimeHuman string, bootTime, timestamp time.Time) *Report {
	return &Report{
		OS:           goos,
		Arch:         arch,
		Hostname:     hostname,
		UptimeMillis: uptimeMillis,
		Uptime:       uptimeHuman,
		BootTimeUTC:  bootTime.UTC().Format(time.RFC3339),
		TimestampUTC: timestamp.UTC().Format(time.RFC3339),
	}
}
