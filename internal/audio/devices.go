package audio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gordonklaus/portaudio"
)

// Device describes one capture source for listing and selection.
type Device struct {
	ID                int
	Name              string
	MaxInputChannels  int
	DefaultSampleRate float64
}

// HostDevices returns all input-capable audio devices.
func HostDevices() ([]Device, error) {
	infos, err := inputDevices()
	if err != nil {
		return nil, err
	}

	devices := make([]Device, len(infos))
	for i, info := range infos {
		devices[i] = Device{
			ID:                i,
			Name:              info.Name,
			MaxInputChannels:  info.MaxInputChannels,
			DefaultSampleRate: info.DefaultSampleRate,
		}
	}
	return devices, nil
}

// ListDevices prints every input device with its channel count, default
// sample rate and latency range.
func ListDevices(w io.Writer) error {
	infos, err := inputDevices()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return fmt.Errorf("no input devices found")
	}

	fmt.Fprintf(w, "\nAvailable Input Devices\n\n")
	for i, device := range infos {
		fmt.Fprintf(w, "[%d] %s\n", i, device.Name)
		fmt.Fprintf(w, "    Input channels: %d\n", device.MaxInputChannels)
		fmt.Fprintf(w, "    Default sample rate: %.0f Hz\n", device.DefaultSampleRate)
		fmt.Fprintf(w, "    Latency: Low=%.2fms, High=%.2fms\n\n",
			device.DefaultLowInputLatency.Seconds()*1000,
			device.DefaultHighInputLatency.Seconds()*1000)
	}
	return nil
}

// SelectDevice lists the input devices on w and reads a numeric
// selection from r. An unparsable or out-of-range selection is an
// error; there is no re-prompting.
func SelectDevice(r io.Reader, w io.Writer) (*portaudio.DeviceInfo, error) {
	infos, err := inputDevices()
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("no input devices found")
	}

	fmt.Fprintf(w, "\nAvailable input devices:\n")
	for i, device := range infos {
		fmt.Fprintf(w, "%d. %s\n", i, device.Name)
	}
	fmt.Fprintf(w, "\nSelect a device (0-%d): ", len(infos)-1)

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read device selection: %w", err)
		}
		return nil, fmt.Errorf("no device selection given")
	}

	idx, err := ParseSelection(scanner.Text(), len(infos))
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "Selected device: %s\n", infos[idx].Name)
	return infos[idx], nil
}

// ParseSelection validates a device index typed by the user against the
// number of listed devices.
func ParseSelection(line string, count int) (int, error) {
	trimmed := strings.TrimSpace(line)
	idx, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid device selection %q", trimmed)
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("device selection %d out of range (0-%d)", idx, count-1)
	}
	return idx, nil
}
