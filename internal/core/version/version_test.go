package version

import (
	"strings"
	"testing"
)

func TestInfoDefaults(t *testing.T) {
	b := Info()
	if b.Service != "maidata" {
		t.Fatalf("Service = %q", b.Service)
	}
	if b.Version != "dev" || b.Commit != "none" || b.Date != "unknown" {
		t.Fatalf("unexpected defaults: %+v", b)
	}
}

func TestString(t *testing.T) {
	s := Info().String()
	for _, want := range []string{"maidata", "dev", "none", "unknown"} {
		if !strings.Contains(s, want) {
			t.Fatalf("String() = %q missing %q", s, want)
		}
	}
}
