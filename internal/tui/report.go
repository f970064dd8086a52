package tui

import (
	"fmt"
	"strings"

	"soundscope/internal/analysis"
	"soundscope/internal/metrics"
)

// renderReport formats one snapshot as the fixed report block shown on
// every refresh: amplitude, frequency, wavelength, band and note.
func renderReport(s metrics.Snapshot) string {
	var sb strings.Builder

	sb.WriteString(sectionStyle.Render("Audio Analysis:"))
	fmt.Fprintf(&sb, "\n  Amplitude:  %.3f\n", s.Amplitude)
	fmt.Fprintf(&sb, "  Frequency:  %.1f Hz\n", s.Frequency)
	fmt.Fprintf(&sb, "  Wavelength: %.2f cm\n\n", s.Wavelength)

	sb.WriteString(sectionStyle.Render("Frequency Range:"))
	fmt.Fprintf(&sb, "\n  %s\n\n", analysis.BandRange(s.Frequency))

	sb.WriteString(sectionStyle.Render("Note:"))
	fmt.Fprintf(&sb, "\n  %s\n", analysis.NoteName(s.Frequency))

	return sb.String()
}
