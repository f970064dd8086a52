// SPDX-License-Identifier: MIT
package metrics

import (
	"math"
	"testing"
)

func TestNewDerivesWavelength(t *testing.T) {
	t.Parallel()

	s := New(0.5, 343.0)
	if s.Amplitude != 0.5 {
		t.Errorf("Amplitude = %v, want 0.5", s.Amplitude)
	}
	if s.Frequency != 343.0 {
		t.Errorf("Frequency = %v, want 343.0", s.Frequency)
	}
	want := SpeedOfSound / 343.0
	if math.Abs(s.Wavelength-want) > 1e-9 {
		t.Errorf("Wavelength = %v, want %v", s.Wavelength, want)
	}
}

func TestNewSilenceSentinel(t *testing.T) {
	t.Parallel()

	s := New(0, 0)
	if s.Frequency != 0 || s.Wavelength != 0 {
		t.Errorf("silence snapshot = %+v, want zero frequency and wavelength", s)
	}
}

func TestNewDegradesNonFinite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		amplitude float64
		frequency float64
	}{
		{"nan amplitude", math.NaN(), 440},
		{"inf amplitude", math.Inf(1), 440},
		{"nan frequency", 0.5, math.NaN()},
		{"inf frequency", 0.5, math.Inf(1)},
		{"negative frequency", 0.5, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.amplitude, tt.frequency)
			for field, v := range map[string]float64{
				"Amplitude":  s.Amplitude,
				"Frequency":  s.Frequency,
				"Wavelength": s.Wavelength,
			} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("%s = %v, want finite", field, v)
				}
			}
			if (s.Frequency == 0) != (s.Wavelength == 0) {
				t.Errorf("wavelength invariant broken: %+v", s)
			}
		})
	}
}

func TestStoreStartsAtZero(t *testing.T) {
	t.Parallel()

	store := NewStore()
	if got := store.Snapshot(); got != (Snapshot{}) {
		t.Errorf("initial snapshot = %+v, want zero value", got)
	}

	// The zero-value Store is readable too.
	var zero Store
	if got := zero.Snapshot(); got != (Snapshot{}) {
		t.Errorf("zero-value store snapshot = %+v, want zero value", got)
	}
}

func TestStorePublishReplaces(t *testing.T) {
	t.Parallel()

	store := NewStore()
	first := New(0.1, 100)
	second := New(0.2, 200)

	store.Publish(first)
	if got := store.Snapshot(); got != first {
		t.Errorf("snapshot = %+v, want %+v", got, first)
	}
	store.Publish(second)
	if got := store.Snapshot(); got != second {
		t.Errorf("snapshot = %+v, want %+v", got, second)
	}
}

// TestStoreNoTornReads hammers the store with concurrent publishers, each
// writing an internally consistent snapshot (all three fields equal), and
// verifies every observed snapshot is one of the published values rather
// than a torn mixture.
func TestStoreNoTornReads(t *testing.T) {
	t.Parallel()

	const (
		publishers = 4
		writes     = 5000
		reads      = 20000
	)

	store := NewStore()
	done := make(chan struct{})

	for w := 0; w < publishers; w++ {
		go func(id int) {
			v := float64(id + 1)
			snap := Snapshot{Amplitude: v, Frequency: v, Wavelength: v}
			for i := 0; i < writes; i++ {
				store.Publish(snap)
			}
			done <- struct{}{}
		}(w)
	}

	for i := 0; i < reads; i++ {
		s := store.Snapshot()
		if s.Amplitude != s.Frequency || s.Frequency != s.Wavelength {
			t.Fatalf("torn snapshot observed: %+v", s)
		}
		if s.Amplitude < 0 || s.Amplitude > publishers {
			t.Fatalf("snapshot not among published values: %+v", s)
		}
	}

	for i := 0; i < publishers; i++ {
		<-done
	}
}
