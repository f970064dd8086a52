package config

import (
	"fmt"

	"soundscope/pkg/bitint"
)

// Defaults and limits for the capture and display pipeline.
const (
	DefaultChannels        = 1             // Mono capture
	DefaultDeviceID        = PromptDevice  // Ask the user interactively
	DefaultFramesPerBuffer = 1024          // Must cover one analysis window
	DefaultLowLatency      = false         // Standard latency mode
	DefaultSampleRate      = 44100         // CD-quality audio
	DefaultGateThreshold   = 0.0           // Gate disabled
	DefaultLogLevel        = "info"        // Default logging level
	DefaultVerbosity       = false         // Quiet operation

	// PromptDevice selects no device up front; the user picks one from
	// the interactive listing at startup.
	PromptDevice = -1

	// Hardware and processing limits
	MinSampleRate   = 8000   // Minimum usable sample rate (Hz)
	MaxSampleRate   = 192000 // Maximum supported sample rate (Hz)
	MaxBufferFrames = 8192   // Maximum frames per buffer (power of 2)
	MaxChannels     = 8      // More than enough for any capture source
)

// Config holds all runtime options, constructed from defaults, an
// optional YAML file, environment overrides and command line flags.
type Config struct {
	// Audio Device Settings
	DeviceID        int     `yaml:"device"`            // Input device index; PromptDevice asks interactively
	Channels        int     `yaml:"channels"`          // Channels to capture (1=mono, 2=stereo)
	SampleRate      float64 `yaml:"sample_rate"`       // Sample rate in Hz
	FramesPerBuffer int     `yaml:"frames_per_buffer"` // Buffer size in frames (power of 2)
	LowLatency      bool    `yaml:"low_latency"`       // Request low latency from the device

	// Analysis Options
	GateThreshold float64 `yaml:"gate_threshold"` // Noise gate level 0.0-1.0; 0 disables

	// Debug Options
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
	Verbose  bool   `yaml:"-"`         // Force debug logging

	// Runtime state set by the CLI layer, never loaded from file.
	Command     string `yaml:"-"` // One-off command to execute
	MonitorMode bool   `yaml:"-"` // Run the live monitor
}

// NewConfig returns a Config populated with the defaults above.
func NewConfig() *Config {
	return &Config{
		DeviceID:        DefaultDeviceID,
		Channels:        DefaultChannels,
		SampleRate:      DefaultSampleRate,
		FramesPerBuffer: DefaultFramesPerBuffer,
		LowLatency:      DefaultLowLatency,
		GateThreshold:   DefaultGateThreshold,
		LogLevel:        DefaultLogLevel,
		Verbose:         DefaultVerbosity,
	}
}

// Validate checks the configuration against the hardware and processing
// limits. Called after all sources have been applied.
func (c *Config) Validate() error {
	if c.SampleRate < MinSampleRate || c.SampleRate > MaxSampleRate {
		return fmt.Errorf("sample rate %.0f Hz out of range (%d-%d)", c.SampleRate, MinSampleRate, MaxSampleRate)
	}
	if !bitint.IsPowerOfTwo(c.FramesPerBuffer) || c.FramesPerBuffer > MaxBufferFrames {
		return fmt.Errorf("frames per buffer must be a power of 2 up to %d, got %d", MaxBufferFrames, c.FramesPerBuffer)
	}
	if c.Channels < 1 || c.Channels > MaxChannels {
		return fmt.Errorf("channels must be 1-%d, got %d", MaxChannels, c.Channels)
	}
	if c.GateThreshold < 0 || c.GateThreshold > 1 {
		return fmt.Errorf("gate threshold must be within 0.0-1.0, got %f", c.GateThreshold)
	}
	return nil
}
