package schema

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewReport(t *testing.T) {
	boot := time.Date(2024, 8, 1, 10, 30, 0, 0, time.UTC)
	now := time.Date(2024, 8, 3, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	r := NewReport("linux", "amd64", "box01", 178_200_000, "2d1h30m0s", boot, now)

	if r.OS != "linux" || r.Arch != "amd64" || r.Hostname != "box01" {
		t.Errorf("unexpected identity fields: %+v", r)
	}
	if r.UptimeMillis != 178_200_000 {
		t.Errorf("expected [178200000], got [%d]", r.UptimeMillis)
	}
	if r.BootTimeUTC != "2024-08-01T10:30:00Z" {
		t.Errorf("expected boot time in RFC3339 UTC, got [%s]", r.BootTimeUTC)
	}
	if r.TimestampUTC != "2024-08-03T10:00:00Z" {
		t.Errorf("expected timestamp normalized to UTC, got [%s]", r.TimestampUTC)
	}
}

func TestReport_JSONKeys(t *testing.T) {
	r := NewReport("linux", "amd64", "box01", 1000, "1s", time.Unix(0, 0), time.Unix(1, 0))

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"os", "arch", "hostname", "uptime_ms", "uptime", "boot_time_utc", "timestamp_utc"} {
		if !strings.Contains(string(data), `"`+key+`"`) {
			t.Errorf("expected JSON key [%s] in %s", key, data)
		}
	}
}
