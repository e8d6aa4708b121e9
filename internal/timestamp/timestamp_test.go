package timestamp

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string // UTC, RFC 3339; empty means parse failure expected
	}{
		{"utc z", "2024-07-04T19:30:00Z", "2024-07-04T19:30:00Z"},
		{"fractional z", "2024-07-04T19:30:00.123456Z", "2024-07-04T19:30:00Z"},
		{"explicit offset", "2024-07-04T12:30:00-07:00", "2024-07-04T19:30:00Z"},
		{"space separator", "2024-07-04 19:30:00Z", "2024-07-04T19:30:00Z"},
		{"zoneless is utc", "2024-07-04T19:30:00", "2024-07-04T19:30:00Z"},
		{"zoneless fractional", "2024-07-04T19:30:00.500000", "2024-07-04T19:30:00Z"},
		{"padded", "  2024-07-04T19:30:00Z  ", "2024-07-04T19:30:00Z"},
		{"empty", "", ""},
		{"garbage", "not a date", ""},
		{"date only", "2024-07-04", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.in)
			if tt.want == "" {
				if ok {
					t.Fatalf("Parse(%q) = %v, want failure", tt.in, got)
				}
				return
			}
			if !ok {
				t.Fatalf("Parse(%q) failed, want %s", tt.in, tt.want)
			}
			want, err := time.Parse(time.RFC3339, tt.want)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Truncate(time.Second).Equal(want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, want)
			}
		})
	}
}

func TestFromCandidates(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
		ok         bool
	}{
		{"first wins", []string{"2024-01-01T00:00:00Z", "2023-01-01T00:00:00Z"}, "2024-01-01T00:00:00Z", true},
		{"skips unparseable", []string{"bogus", "2023-01-01T00:00:00Z"}, "2023-01-01T00:00:00Z", true},
		{"all bad", []string{"", "bogus"}, "", false},
		{"empty", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromCandidates(tt.candidates)
			if ok != tt.ok {
				t.Fatalf("FromCandidates(%v) ok = %v, want %v", tt.candidates, ok, tt.ok)
			}
			if !tt.ok {
				return
			}
			want, _ := time.Parse(time.RFC3339, tt.want)
			if !got.Equal(want) {
				t.Errorf("FromCandidates(%v) = %v, want %v", tt.candidates, got, want)
			}
		})
	}
}

func TestStamp(t *testing.T) {
	pacific, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		in   string // UTC instant
		loc  *time.Location
		want string
	}{
		// PST (UTC-8) in winter, PDT (UTC-7) in summer.
		{"winter pst", "2025-03-01T10:00:00Z", pacific, "20250301-020000"},
		{"summer pdt", "2025-07-01T10:00:00Z", pacific, "20250701-030000"},
		{"midnight rollover", "2025-01-01T02:00:00Z", pacific, "20241231-180000"},
		{"utc passthrough", "2025-06-15T12:34:56Z", time.UTC, "20250615-123456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instant, err := time.Parse(time.RFC3339, tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := Stamp(instant, tt.loc); got != tt.want {
				t.Errorf("Stamp(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
