// SPDX-License-Identifier: MIT
package analysis

import "testing"

func TestNoteName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		frequency float64
		want      string
	}{
		{440.0, "A4"},
		{880.0, "A5"},
		{220.0, "A3"},
		{1760.0, "A6"},
		{466.16, "A#4"},
		// One semitone below A4: floor division keeps it in the octave below.
		{415.30, "G#3"},
		{0.0, "Silence"},
		{-5.0, "Silence"},
	}
	for _, tt := range tests {
		if got := NoteName(tt.frequency); got != tt.want {
			t.Errorf("NoteName(%v) = %q, want %q", tt.frequency, got, tt.want)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want int
	}{
		{12, 12, 1},
		{11, 12, 0},
		{0, 12, 0},
		{-1, 12, -1},
		{-12, 12, -1},
		{-13, 12, -2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
