// SPDX-License-Identifier: MIT
package metrics

import "math"

// SpeedOfSound is the speed of sound in air in cm/s, used to derive the
// wavelength of the dominant frequency.
const SpeedOfSound = 34300.0

// Snapshot holds the derived metrics for one analyzed audio buffer.
// It is a plain value with no identity beyond its contents; copy it freely.
// All fields are finite, and Wavelength is zero exactly when Frequency is.
type Snapshot struct {
	Amplitude  float64 // RMS energy, linear, same units as the normalized samples
	Frequency  float64 // dominant frequency in Hz; 0 means silence or insufficient data
	Wavelength float64 // derived wavelength in cm; 0 iff Frequency is 0
}

// New builds a Snapshot from an amplitude and a dominant frequency,
// deriving the wavelength. A non-finite or negative intermediate degrades
// to the zero sentinel for the affected field so that a malformed buffer
// can never publish NaN or Inf.
func New(amplitude, frequency float64) Snapshot {
	if math.IsNaN(amplitude) || math.IsInf(amplitude, 0) || amplitude < 0 {
		amplitude = 0
	}
	if math.IsNaN(frequency) || math.IsInf(frequency, 0) || frequency < 0 {
		frequency = 0
	}

	s := Snapshot{Amplitude: amplitude, Frequency: frequency}
	if frequency > 0 {
		s.Wavelength = SpeedOfSound / frequency
	}
	return s
}
