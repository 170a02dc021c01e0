package uptime

import (
	"errors"
	"strings"
	"testing"
)

func TestErrors_Unwrap(t *testing.T) {
	cause := errors.New("permission denied")

	var err error = &SourceError{Path: "/proc/uptime", Err: cause}
	if !errors.Is(err, cause) {
		t.Errorf("SourceError does not unwrap to its cause: %v", err)
	}

	err = &PlatformError{Op: "GetTickCount64", Err: cause}
	if !errors.Is(err, cause) {
		t.Errorf("PlatformError does not unwrap to its cause: %v", err)
	}
}

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"source", &SourceError{Path: "/proc/uptime", Err: errors.New("no such file")}, "/proc/uptime"},
		{"format", &FormatError{Content: "banana"}, `"banana"`},
		{"platform", &PlatformError{Op: "sysctl kern.boottime", Err: errors.New("EPERM")}, "kern.boottime"},
		{"unsupported", ErrUnsupported, "unsupported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); !strings.Contains(got, tt.want) {
				t.Errorf("expected message containing [%s], got [%s]", tt.want, got)
			}
		})
	}
}
