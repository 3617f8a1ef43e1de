package output

import (
	"os"
	"strings"

	statusled "github.com/Bluscream/rgb-status-led"
	"github.com/Bluscream/rgb-status-led/logging"
)

const deviceTreeModelPath = "/proc/device-tree/model"

// rgbLEDNames maps a device tree model substring to the sysfs LED names
// driving the red, green and blue channels on that board.
var rgbLEDNames = map[string][3]string{
	"NanoPC-T6": {"rgb_led_r", "rgb_led_g", "rgb_led_b"},
	"Orange Pi": {"red_led", "green_led", "blue_led"},
	"Khadas":    {"red", "green", "blue"},
}

// Detect creates an output driver based on board detection.
// Falls back to a no-op driver if the board has no known RGB LED.
func Detect(logger logging.Logger) statusled.Driver {
	boardModel := detectBoard()

	if logger != nil {
		logger.Info("Detecting board for LED output", "board_model", boardModel)
	}

	for model, names := range rgbLEDNames {
		if !strings.Contains(boardModel, model) {
			continue
		}
		driver, err := sysfsRGB(names)
		if err != nil {
			if logger != nil {
				logger.Warn("Board has RGB LED mapping but sysfs open failed, using no-op driver",
					"board_model", boardModel, "error", err)
			}
			break
		}
		if logger != nil {
			logger.Info("Using sysfs RGB LED driver",
				"red", names[0], "green", names[1], "blue", names[2])
		}
		return driver
	}

	if logger != nil {
		logger.Info("No RGB LED support detected, using no-op driver", "board_model", boardModel)
	}
	return &RGB{
		Red:   NewNoop(logger, "red"),
		Green: NewNoop(logger, "green"),
		Blue:  NewNoop(logger, "blue"),
	}
}

// sysfsRGB opens the three named sysfs LEDs as one RGB driver.
func sysfsRGB(names [3]string) (*RGB, error) {
	red, err := NewSysfs(names[0])
	if err != nil {
		return nil, err
	}
	green, err := NewSysfs(names[1])
	if err != nil {
		return nil, err
	}
	blue, err := NewSysfs(names[2])
	if err != nil {
		return nil, err
	}
	return &RGB{Red: red, Green: green, Blue: blue}, nil
}

// detectBoard reads the device tree model to identify the board.
func detectBoard() string {
	data, err := os.ReadFile(deviceTreeModelPath)
	if err != nil {
		return "unknown"
	}

	// Device tree model contains null bytes, trim them
	return strings.TrimRight(string(data), "\x00")
}
