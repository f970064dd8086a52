// SPDX-License-Identifier: MIT
package audio

import "math"

// gateOpen reports whether the buffer's peak amplitude clears the gate
// threshold. Branchless abs and max keep the scan predictable on the
// realtime thread.
func (e *Engine) gateOpen(buffer []int32) bool {
	var maxAmplitude int32
	for i := range buffer {
		sample := buffer[i]
		mask := sample >> 31
		amplitude := (sample ^ mask) - mask
		diff := amplitude - maxAmplitude
		maxAmplitude += (diff & (diff >> 31)) ^ diff
	}
	return maxAmplitude > e.gateThreshold
}

// SetGateThreshold adjusts the noise gate level.
// The value is in the normalized 0.0-1.0 range; 0 disables the gate.
func (e *Engine) SetGateThreshold(threshold float64) {
	if threshold < 0.0 {
		threshold = 0.0
	}
	if threshold > 1.0 {
		threshold = 1.0
	}

	e.gateThreshold = int32(threshold * float64(math.MaxInt32))
}

// GateThreshold returns the current noise gate level in the normalized
// 0.0-1.0 range.
func (e *Engine) GateThreshold() float64 {
	return float64(e.gateThreshold) / float64(math.MaxInt32)
}
