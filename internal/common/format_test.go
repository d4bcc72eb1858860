package common

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "N/A"},
		{512, "512"},
		{999.9, "999"},
		{1000, "1.0K"},
		{45_200, "45.2K"},
		{55_012_345, "55.0M"},
		{2.87e9, "2.9B"},
		{2.9e12, "2.9T"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.value); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestRoundPrice(t *testing.T) {
	if got := RoundPrice(190.256); got != 190.26 {
		t.Errorf("RoundPrice(190.256) = %v, want 190.26", got)
	}
	if got := RoundPrice(-2.254); got != -2.25 {
		t.Errorf("RoundPrice(-2.254) = %v, want -2.25", got)
	}
}
