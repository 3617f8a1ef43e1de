// Package config turns a user-authored TOML file plus environment
// overrides into a validated statusled.Config. Precedence: built-in
// defaults, then the file, then LED_* environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env"
	"github.com/pelletier/go-toml/v2"

	statusled "github.com/Bluscream/rgb-status-led"
	"github.com/Bluscream/rgb-status-led/logging"
)

// File is the raw on-disk configuration schema. Blink periods are integer
// milliseconds so the file never needs duration syntax.
type File struct {
	Brightness     float64 `toml:"brightness" env:"LED_BRIGHTNESS"`
	PriorityMode   string  `toml:"priority_mode" env:"LED_PRIORITY_MODE"`
	OKStateEnabled bool    `toml:"ok_state_enabled" env:"LED_OK_STATE_ENABLED"`
	ErrorBlinkMs   int     `toml:"error_blink_ms" env:"LED_ERROR_BLINK_MS"`
	WarningBlinkMs int     `toml:"warning_blink_ms" env:"LED_WARNING_BLINK_MS"`

	Colors  Colors         `toml:"colors"`
	Logging logging.Config `toml:"logging"`
}

// Colors is the per-level color table.
type Colors struct {
	Error   statusled.Color `toml:"error"`
	Warning statusled.Color `toml:"warning"`
	OK      statusled.Color `toml:"ok"`
	Boot    statusled.Color `toml:"boot"`
	Wifi    statusled.Color `toml:"wifi"`
	API     statusled.Color `toml:"api"`
	OTA     statusled.Color `toml:"ota"`
}

// Defaults returns the raw schema pre-filled with the stock configuration,
// so absent file keys and env vars leave the defaults in place.
func Defaults() File {
	cfg := statusled.DefaultConfig()
	return File{
		Brightness:     cfg.Brightness,
		PriorityMode:   string(cfg.PriorityMode),
		OKStateEnabled: cfg.OKStateEnabled,
		ErrorBlinkMs:   int(cfg.ErrorBlinkPeriod / time.Millisecond),
		WarningBlinkMs: int(cfg.WarningBlinkPeriod / time.Millisecond),
		Colors: Colors{
			Error:   cfg.ErrorColor,
			Warning: cfg.WarningColor,
			OK:      cfg.OKColor,
			Boot:    cfg.BootColor,
			Wifi:    cfg.WifiColor,
			API:     cfg.APIColor,
			OTA:     cfg.OTAColor,
		},
	}
}

// Load reads the configuration with proper precedence: defaults, then the
// TOML file at path (a missing file is fine), then environment variables.
// The result is validated before being returned.
func Load(path string) (statusled.Config, File, error) {
	f := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, &f); err != nil {
				return statusled.Config{}, File{}, fmt.Errorf("failed to parse TOML config: %w", err)
			}
		case os.IsNotExist(err):
			// Run on defaults; embedded hosts often ship without a file.
		default:
			return statusled.Config{}, File{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := env.Parse(&f); err != nil {
		return statusled.Config{}, File{}, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	cfg, err := f.Build()
	if err != nil {
		return statusled.Config{}, File{}, err
	}
	return cfg, f, nil
}

// Build converts the raw schema into a validated controller configuration.
func (f File) Build() (statusled.Config, error) {
	cfg := statusled.Config{
		ErrorColor:         f.Colors.Error,
		WarningColor:       f.Colors.Warning,
		OKColor:            f.Colors.OK,
		BootColor:          f.Colors.Boot,
		WifiColor:          f.Colors.Wifi,
		APIColor:           f.Colors.API,
		OTAColor:           f.Colors.OTA,
		ErrorBlinkPeriod:   time.Duration(f.ErrorBlinkMs) * time.Millisecond,
		WarningBlinkPeriod: time.Duration(f.WarningBlinkMs) * time.Millisecond,
		Brightness:         f.Brightness,
		PriorityMode:       statusled.PriorityMode(f.PriorityMode),
		OKStateEnabled:     f.OKStateEnabled,
	}
	if err := cfg.Validate(); err != nil {
		return statusled.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
