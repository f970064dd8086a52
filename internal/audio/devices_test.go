package audio

import (
	"strings"
	"testing"
)

func setupPortAudio(t *testing.T) {
	t.Helper()
	if err := Initialize(); err != nil {
		t.Skipf("PortAudio unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := Terminate(); err != nil {
			t.Errorf("Failed to terminate PortAudio: %v", err)
		}
	})
}

func TestParseSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line    string
		count   int
		want    int
		wantErr bool
	}{
		{"0", 3, 0, false},
		{"2", 3, 2, false},
		{" 1 \n", 3, 1, false},
		{"3", 3, 0, true},
		{"-1", 3, 0, true},
		{"abc", 3, 0, true},
		{"", 3, 0, true},
		{"1.5", 3, 0, true},
	}
	for _, tt := range tests {
		got, err := ParseSelection(tt.line, tt.count)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSelection(%q, %d) error = %v, wantErr %v", tt.line, tt.count, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseSelection(%q, %d) = %d, want %d", tt.line, tt.count, got, tt.want)
		}
	}
}

func TestHostDevices(t *testing.T) {
	setupPortAudio(t)

	devices, err := HostDevices()
	if err != nil {
		t.Fatalf("HostDevices error: %v", err)
	}
	if len(devices) == 0 {
		t.Skip("No input devices found on system")
	}
	for i, d := range devices {
		if d.ID != i {
			t.Errorf("Device ID mismatch: got %d, want %d", d.ID, i)
		}
		if d.Name == "" {
			t.Errorf("Device %d has empty name", i)
		}
		if d.MaxInputChannels <= 0 {
			t.Errorf("Device %d is not input-capable", i)
		}
	}
}

func TestListDevices(t *testing.T) {
	setupPortAudio(t)

	devices, err := HostDevices()
	if err != nil {
		t.Fatalf("HostDevices error: %v", err)
	}
	if len(devices) == 0 {
		t.Skip("No input devices found on system")
	}

	var sb strings.Builder
	if err := ListDevices(&sb); err != nil {
		t.Fatalf("ListDevices error: %v", err)
	}
	out := sb.String()
	for _, d := range devices {
		if !strings.Contains(out, d.Name) {
			t.Errorf("listing missing device %q", d.Name)
		}
	}
}

func TestSelectDeviceInvalidInput(t *testing.T) {
	setupPortAudio(t)

	devices, err := HostDevices()
	if err != nil {
		t.Fatalf("HostDevices error: %v", err)
	}
	if len(devices) == 0 {
		t.Skip("No input devices found on system")
	}

	var out strings.Builder
	if _, err := SelectDevice(strings.NewReader("not-a-number\n"), &out); err == nil {
		t.Error("expected error for non-numeric selection, got nil")
	}
	out.Reset()
	if _, err := SelectDevice(strings.NewReader("9999\n"), &out); err == nil {
		t.Error("expected error for out-of-range selection, got nil")
	}
}
