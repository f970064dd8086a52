// SPDX-License-Identifier: MIT
/*
Package analysis holds the pure numeric core: RMS amplitude, dominant
frequency via Hann-windowed FFT peak-picking, band classification and
note naming. Nothing in here touches devices, threads or rendering, so
every function is testable on synthetic sample vectors.
*/
package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"

	"soundscope/internal/metrics"
)

// WindowSize is the fixed number of samples fed to the spectral
// transform. A buffer shorter than this yields the silence sentinel.
const WindowSize = 1024

// workspace holds the pre-allocated buffers reused across Analyze calls.
type workspace struct {
	input  []float64    // windowed input samples
	coeffs []complex128 // FFT output, WindowSize/2+1 values
	hann   []float64    // window coefficients
}

// Analyzer turns a buffer of normalized samples into a metrics.Snapshot.
// It owns a reusable FFT plan and workspace, so a single Analyzer must not
// be shared between goroutines. Results are deterministic for identical
// input, and the hot path performs no allocations.
type Analyzer struct {
	sampleRate float64
	fft        *fourier.FFT
	ws         workspace
}

// NewAnalyzer pre-allocates the FFT plan, workspace and Hann coefficients
// for the given stream sample rate.
func NewAnalyzer(sampleRate float64) (*Analyzer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %f", sampleRate)
	}

	// Window funcs multiply in place, so seed the slice with ones.
	hann := make([]float64, WindowSize)
	for i := range hann {
		hann[i] = 1.0
	}
	window.Hann(hann)

	return &Analyzer{
		sampleRate: sampleRate,
		fft:        fourier.NewFFT(WindowSize),
		ws: workspace{
			input:  make([]float64, WindowSize),
			coeffs: make([]complex128, WindowSize/2+1),
			hann:   hann,
		},
	}, nil
}

// SampleRate returns the stream sample rate the Analyzer was built for.
func (a *Analyzer) SampleRate() float64 {
	return a.sampleRate
}

// Analyze computes the RMS amplitude and dominant frequency of samples
// and returns them as a snapshot. It never fails: empty, short or silent
// buffers degrade to the zero sentinels instead of producing an error,
// because the caller is the realtime capture callback and has nowhere
// safe to send one.
func (a *Analyzer) Analyze(samples []float64) metrics.Snapshot {
	return metrics.New(rms(samples), a.peakFrequency(samples))
}

// rms returns sqrt(mean(s^2)) over the whole buffer, or 0 when empty.
func rms(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// peakFrequency estimates the dominant frequency of the first WindowSize
// samples by picking the strongest FFT bin strictly between the DC bin
// and the Nyquist bin; the upper half of the spectrum mirrors the lower
// for real input. Ties keep the lowest bin. A short buffer, or one with
// no energy in the scanned range, yields 0.
func (a *Analyzer) peakFrequency(samples []float64) float64 {
	if len(samples) < WindowSize {
		return 0
	}

	for i := range a.ws.input {
		a.ws.input[i] = samples[i] * a.ws.hann[i]
	}
	a.fft.Coefficients(a.ws.coeffs, a.ws.input)

	peakBin := 0
	peakMag := 0.0
	for i := 1; i < WindowSize/2; i++ {
		if mag := cmplx.Abs(a.ws.coeffs[i]); mag > peakMag {
			peakMag = mag
			peakBin = i
		}
	}

	// peakBin 0 means nothing in the scanned range had energy; that is
	// the silence sentinel, not a DC measurement.
	if peakBin == 0 {
		return 0
	}
	return float64(peakBin) * a.sampleRate / WindowSize
}
