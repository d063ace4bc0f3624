package uischema

import (
	"strings"
	"testing"
)

func TestSanitizeIcon(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		keep    []string
		dropped []string
	}{
		{name: "emoji", raw: " 🔍 ", want: "🔍"},
		{name: "blank", raw: "   ", want: ""},
		{name: "image handler", raw: `<img src=x onerror=alert(1)>`, want: ""},
		{
			name:    "svg with script",
			raw:     `<svg viewBox="0 0 24 24" onload="x()"><script>alert('x')</script><circle cx="12" cy="12" r="4"/></svg>`,
			keep:    []string{"<svg", `viewBox="0 0 24 24"`, "<circle"},
			dropped: []string{"script", "onload"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeIcon(tt.raw)
			if tt.keep == nil && got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
			for _, s := range tt.keep {
				if !strings.Contains(got, s) {
					t.Fatalf("expected %q in %q", s, got)
				}
			}
			for _, s := range tt.dropped {
				if strings.Contains(got, s) {
					t.Fatalf("expected %q to be stripped from %q", s, got)
				}
			}
		})
	}
}
