package core

import "testing"

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{12.344, 12.34},
		{12.345, 12.35},
		{12.346, 12.35},
		{20, 20},
		{1.0 / 3.0, 0.33},
		{66.666666, 66.67},
	}
	for _, tc := range tests {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{35, "35"},
		{12.5, "12.5"},
		{12.34, "12.34"},
		{0.5, "0.5"},
		{3, "3"},
	}
	for _, tc := range tests {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
