package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const sysfsLEDPath = "/sys/class/leds"

// sysfsChannel drives one LED through the Linux sysfs LED class, scaling
// the 0..1 level to the LED's advertised max_brightness.
type sysfsChannel struct {
	brightnessPath string
	maxBrightness  int
}

// NewSysfs opens the named LED under /sys/class/leds. The LED's
// max_brightness is read once at construction; the trigger is set to
// "none" so brightness writes take effect directly.
func NewSysfs(name string) (Channel, error) {
	return newSysfsChannel(sysfsLEDPath, name)
}

func newSysfsChannel(root, name string) (*sysfsChannel, error) {
	ledPath := filepath.Join(root, name)
	if _, err := os.Stat(ledPath); err != nil {
		return nil, fmt.Errorf("LED %q not found at %s: %w", name, ledPath, err)
	}

	maxBrightness := 255
	if data, err := os.ReadFile(filepath.Join(ledPath, "max_brightness")); err == nil {
		if v, parseErr := strconv.Atoi(strings.TrimSpace(string(data))); parseErr == nil && v > 0 {
			maxBrightness = v
		}
	}

	// Disable any kernel trigger so we own the brightness value.
	triggerPath := filepath.Join(ledPath, "trigger")
	if _, err := os.Stat(triggerPath); err == nil {
		if err := os.WriteFile(triggerPath, []byte("none"), 0644); err != nil {
			return nil, fmt.Errorf("failed to set LED %q trigger to none: %w", name, err)
		}
	}

	return &sysfsChannel{
		brightnessPath: filepath.Join(ledPath, "brightness"),
		maxBrightness:  maxBrightness,
	}, nil
}

// SetLevel writes the scaled brightness value.
func (s *sysfsChannel) SetLevel(level float64) error {
	switch {
	case level < 0:
		level = 0
	case level > 1:
		level = 1
	}
	value := strconv.Itoa(int(level*float64(s.maxBrightness) + 0.5))
	if err := os.WriteFile(s.brightnessPath, []byte(value), 0644); err != nil {
		return fmt.Errorf("failed to set LED brightness: %w", err)
	}
	return nil
}
