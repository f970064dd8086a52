package main

import (
	"os"
	"runtime"

	"github.com/gordonklaus/portaudio"

	"soundscope/cmd"
	"soundscope/internal/audio"
	"soundscope/internal/config"
	"soundscope/internal/log"
	"soundscope/internal/metrics"
	"soundscope/internal/tui"
	"soundscope/pkg/build"
)

// main wires the pipeline together. The program flow has three phases:
//
// 1. Startup (cold path): build info, CLI parsing, PortAudio init and
// device selection.
//
// 2. Concurrent (hot path): the capture callback analyzing each buffer
// and publishing into the store, and the monitor reading it on its own
// cadence. The store is the only point where the two meet.
//
// 3. Shutdown (cold path): stop the stream and release PortAudio.
func main() {
	build.Initialize()

	// One thread dedicated to the realtime callback, one for the UI.
	runtime.GOMAXPROCS(2)

	cfg, err := cmd.ParseArgs()
	if err != nil {
		log.Fatalf("%v", err)
	}

	if cfg.Verbose {
		log.SetLevel(log.LevelDebug)
	} else if level, ok := log.ParseLevel(cfg.LogLevel); ok {
		log.SetLevel(level)
	}

	if err := audio.Initialize(); err != nil {
		log.Fatalf("%v", err)
	}
	defer audio.Terminate()

	if cfg.Command == "list" {
		if err := audio.ListDevices(os.Stdout); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}
	if !cfg.MonitorMode {
		return
	}

	device, err := pickDevice(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	store := metrics.NewStore()
	engine, err := audio.NewEngine(cfg, device, store)
	if err != nil {
		log.Fatalf("%v", err)
	}

	// First delivered buffer marks the start of the hot path.
	if err := engine.Start(); err != nil {
		log.Fatalf("%v", err)
	}

	if err := tui.StartMonitor(store, device.Name, cfg.SampleRate); err != nil {
		log.Errorf("monitor: %v", err)
	}

	if err := engine.Close(); err != nil {
		log.Errorf("closing capture engine: %v", err)
	}
}

// pickDevice resolves the configured device, prompting on stdin when
// none was given. An invalid selection is fatal to the caller, not
// re-prompted.
func pickDevice(cfg *config.Config) (*portaudio.DeviceInfo, error) {
	if cfg.DeviceID != config.PromptDevice {
		return audio.InputDevice(cfg.DeviceID)
	}
	return audio.SelectDevice(os.Stdin, os.Stdout)
}
