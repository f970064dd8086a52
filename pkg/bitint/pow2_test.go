package bitint

import "testing"

func TestNextPowerOfTwo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want int
	}{
		{-1, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{1000, 1024},
		{1024, 1024},
		{1025, 2048},
	}
	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want bool
	}{
		{-8, false},
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{512, true},
		{1024, true},
		{1023, false},
	}
	for _, tt := range tests {
		if got := IsPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
