// SPDX-License-Identifier: MIT
/*
Package audio owns the PortAudio capture session: device enumeration and
selection, the input stream lifecycle, and the realtime callback that
feeds each delivered buffer through the analyzer and into the metrics
store.

Thread Safety:
- The callback runs on the PortAudio realtime thread and never blocks
- All buffers are pre-allocated; publishing is an atomic pointer swap
- Per-buffer anomalies are logged and never stop the stream
*/
package audio

import (
	"fmt"
	"runtime"
	"time"

	"github.com/gordonklaus/portaudio"

	"soundscope/internal/analysis"
	"soundscope/internal/config"
	"soundscope/internal/log"
	"soundscope/internal/metrics"
)

// sampleNorm scales int32 PCM into the analyzer's [-1.0, 1.0) domain.
const sampleNorm = 1.0 / float64(0x80000000)

// Engine adapts the hardware capture stream to the analysis pipeline.
// One Engine owns one input stream for its whole lifetime.
type Engine struct {
	config *config.Config

	// Audio input handling.
	inputDevice  *portaudio.DeviceInfo
	inputLatency time.Duration
	inputStream  *portaudio.Stream
	inputBuffer  []int32

	// Analysis pipeline.
	analyzer *analysis.Analyzer
	samples  []float64 // normalized mono frame handed to the analyzer
	store    *metrics.Store

	// Noise gate; 0 disables it.
	gateThreshold int32
}

// NewEngine pre-allocates all capture and analysis buffers for the
// configured frame size. The stream is not opened until Start.
func NewEngine(cfg *config.Config, device *portaudio.DeviceInfo, store *metrics.Store) (*Engine, error) {
	analyzer, err := analysis.NewAnalyzer(cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		config:      cfg,
		inputDevice: device,
		inputBuffer: make([]int32, cfg.FramesPerBuffer*cfg.Channels),
		analyzer:    analyzer,
		samples:     make([]float64, cfg.FramesPerBuffer),
		store:       store,
	}
	e.SetGateThreshold(cfg.GateThreshold)

	if cfg.LowLatency {
		e.inputLatency = device.DefaultLowInputLatency
	} else {
		e.inputLatency = device.DefaultHighInputLatency
	}

	return e, nil
}

// Start opens the input stream and begins capture. From the first
// delivered buffer onward, processInputStream runs on the realtime
// thread.
func (e *Engine) Start() error {
	params := portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Channels: e.config.Channels,
			Device:   e.inputDevice,
			Latency:  e.inputLatency,
		},
		FramesPerBuffer: e.config.FramesPerBuffer,
		SampleRate:      e.config.SampleRate,
	}

	stream, err := portaudio.OpenStream(params, e.processInputStream)
	if err != nil {
		return fmt.Errorf("failed to open input stream on %q: %w", e.inputDevice.Name, err)
	}
	e.inputStream = stream

	if err := e.inputStream.Start(); err != nil {
		e.inputStream.Close()
		e.inputStream = nil
		return fmt.Errorf("failed to start input stream: %w", err)
	}

	log.Infof("capture: stream started on %q (%.0f Hz, %d ch, %d frames)",
		e.inputDevice.Name, e.config.SampleRate, e.config.Channels, e.config.FramesPerBuffer)
	return nil
}

// Close stops the input stream and releases it.
func (e *Engine) Close() error {
	if e.inputStream == nil {
		return nil
	}
	if err := e.inputStream.Stop(); err != nil {
		return fmt.Errorf("failed to stop input stream: %w", err)
	}
	if err := e.inputStream.Close(); err != nil {
		return fmt.Errorf("failed to close input stream: %w", err)
	}
	e.inputStream = nil
	return nil
}

// processInputStream is the realtime capture callback.
// Performance Critical:
// - Runs on the PortAudio realtime thread (LockOSThread)
// - Pre-allocated buffers only; the store handoff boxes one snapshot
// - Never blocks on the display loop
func (e *Engine) processInputStream(in []int32) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	n := copy(e.inputBuffer, in)
	if n < len(e.inputBuffer) {
		// Short delivery from a device hiccup. Analyze what arrived,
		// zero the remainder, and keep the session alive.
		log.Warnf("capture: short buffer (%d of %d samples)", n, len(e.inputBuffer))
		for i := n; i < len(e.inputBuffer); i++ {
			e.inputBuffer[i] = 0
		}
	}

	if e.gateThreshold > 0 && !e.gateOpen(e.inputBuffer) {
		e.store.Publish(metrics.Snapshot{})
		return
	}

	e.normalize()
	e.store.Publish(e.analyzer.Analyze(e.samples))
}

// normalize downmixes the interleaved capture buffer to its first
// channel and scales it into the analyzer's float domain.
func (e *Engine) normalize() {
	channels := e.config.Channels
	for i := range e.samples {
		idx := i * channels
		if idx < len(e.inputBuffer) {
			e.samples[i] = float64(e.inputBuffer[idx]) * sampleNorm
		} else {
			e.samples[i] = 0
		}
	}
}
