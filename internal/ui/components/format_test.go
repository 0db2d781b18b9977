package components

import "testing"

func TestFormatTokens(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1500, "1.5K"},
		{2_300_000, "2.3M"},
		{7_800_000_000, "7.8B"},
	}
	for _, tt := range tests {
		if got := FormatTokens(tt.n); got != tt.want {
			t.Errorf("FormatTokens(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatCost(t *testing.T) {
	tests := []struct {
		cost float64
		want string
	}{
		{0, "$0.00"},
		{0.0042, "$0.0042"},
		{0.01, "$0.01"},
		{12.345, "$12.35"},
	}
	for _, tt := range tests {
		if got := FormatCost(tt.cost); got != tt.want {
			t.Errorf("FormatCost(%v) = %q, want %q", tt.cost, got, tt.want)
		}
	}
}
