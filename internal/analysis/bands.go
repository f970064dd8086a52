// SPDX-License-Identifier: MIT
package analysis

import "fmt"

// frequencyBand names a coarse range of the spectrum; highHz is the
// exclusive upper bound.
type frequencyBand struct {
	name   string
	highHz float64
}

var bands = []frequencyBand{
	{"Bass", 80},
	{"Low Mid", 250},
	{"Mid", 2000},
	{"High Mid", 4000},
}

// Band returns the coarse range label for a frequency: Bass, Low Mid,
// Mid, High Mid or Treble. Upper bounds are exclusive, so exactly 80 Hz
// already classifies as Low Mid.
func Band(frequency float64) string {
	for _, b := range bands {
		if frequency < b.highHz {
			return b.name
		}
	}
	return "Treble"
}

// BandRange returns the label together with its span for display,
// e.g. "Low Mid (80-250 Hz)".
func BandRange(frequency float64) string {
	low := 0.0
	for _, b := range bands {
		if frequency < b.highHz {
			return fmt.Sprintf("%s (%.0f-%.0f Hz)", b.name, low, b.highHz)
		}
		low = b.highHz
	}
	return "Treble (4000+ Hz)"
}
