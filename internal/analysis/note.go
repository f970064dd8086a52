// SPDX-License-Identifier: MIT
package analysis

import (
	"fmt"
	"math"
)

// noteNames is the chromatic scale starting at A, matching the A4=440 Hz
// reference used below.
var noteNames = [12]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

// NoteName maps a frequency in Hz to its nearest equal-tempered note
// name, e.g. 440 -> "A4", 880 -> "A5". Non-positive frequencies are the
// silence sentinel and map to "Silence".
func NoteName(frequency float64) string {
	if frequency <= 0 {
		return "Silence"
	}

	semitones := int(math.Round(12 * math.Log2(frequency/440.0)))
	octave := 4 + floorDiv(semitones, 12)
	idx := ((semitones % 12) + 12) % 12
	return fmt.Sprintf("%s%d", noteNames[idx], octave)
}

// floorDiv divides rounding toward negative infinity, so notes below A4
// land in the octave below (-1 div 12 is -1, not 0).
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
