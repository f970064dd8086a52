// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with pointer fields so that only keys
// actually present in the YAML file override the running configuration.
type fileConfig struct {
	LogLevel *string `yaml:"log_level"`
	Audio    struct {
		Device          *int     `yaml:"device"`
		Channels        *int     `yaml:"channels"`
		SampleRate      *float64 `yaml:"sample_rate"`
		FramesPerBuffer *int     `yaml:"frames_per_buffer"`
		LowLatency      *bool    `yaml:"low_latency"`
		GateThreshold   *float64 `yaml:"gate_threshold"`
	} `yaml:"audio"`
}

// Load overlays the YAML file at path onto cfg. Keys absent from the
// file leave the current values untouched.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.Audio.Device != nil {
		cfg.DeviceID = *fc.Audio.Device
	}
	if fc.Audio.Channels != nil {
		cfg.Channels = *fc.Audio.Channels
	}
	if fc.Audio.SampleRate != nil {
		cfg.SampleRate = *fc.Audio.SampleRate
	}
	if fc.Audio.FramesPerBuffer != nil {
		cfg.FramesPerBuffer = *fc.Audio.FramesPerBuffer
	}
	if fc.Audio.LowLatency != nil {
		cfg.LowLatency = *fc.Audio.LowLatency
	}
	if fc.Audio.GateThreshold != nil {
		cfg.GateThreshold = *fc.Audio.GateThreshold
	}
	return nil
}

// ApplyEnvOverrides applies SOUNDSCOPE_* environment variables on top of
// the current configuration. Unparsable values are ignored.
func (c *Config) ApplyEnvOverrides() {
	if val, ok := os.LookupEnv("SOUNDSCOPE_LOG_LEVEL"); ok {
		c.LogLevel = val
	}
	if val, ok := os.LookupEnv("SOUNDSCOPE_DEVICE"); ok {
		if id, err := strconv.Atoi(val); err == nil {
			c.DeviceID = id
		}
	}
	if val, ok := os.LookupEnv("SOUNDSCOPE_SAMPLE_RATE"); ok {
		if rate, err := strconv.ParseFloat(val, 64); err == nil {
			c.SampleRate = rate
		}
	}
	if val, ok := os.LookupEnv("SOUNDSCOPE_GATE_THRESHOLD"); ok {
		if th, err := strconv.ParseFloat(val, 64); err == nil {
			c.GateThreshold = th
		}
	}
}
