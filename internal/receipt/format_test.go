package receipt

import "testing"

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "$0.00"},
		{0.085, "$0.09"},
		{1.234, "$1.23"},
		{12.5, "$12.50"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.input); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234567, "-1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.input); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1500, "1.5K"},
		{999_999, "1000.0K"},
		{2_300_000, "2.3M"},
	}
	for _, tt := range tests {
		if got := FormatCompact(tt.input); got != tt.want {
			t.Errorf("FormatCompact(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0s"},
		{45_000, "45s"},
		{125_000, "2m 5s"},
		{3_725_000, "1h 2m 5s"},
		{3_600_000, "1h 0m 0s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.ms); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2026-08-30T14:22:05Z", "2026-08-30 14:22:05"},
		{"2026-08-30T14:22:05.123Z", "2026-08-30 14:22:05"},
		{"2026-08-30T14:22:05+09:00", "2026-08-30 14:22:05"},
		{"2026-08-30T14:22:05", "2026-08-30 14:22:05"},
		// Unparsable input passes through unmodified.
		{"yesterday-ish", "yesterday-ish"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.input); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
