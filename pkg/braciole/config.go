package braciole

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the gadget's TOML configuration. Every field has a sensible
// default; a missing config file just means "stock gadget in Mallow".
type Config struct {
	Display  DisplayConfig  `toml:"display"`
	Touch    TouchConfig    `toml:"touch"`
	Location LocationConfig `toml:"location"`
	Feeds    FeedsConfig    `toml:"feeds"`
	Log      LogConfig      `toml:"log"`
}

// DisplayConfig covers the window and font.
type DisplayConfig struct {
	Title    string `toml:"title"`
	FontPath string `toml:"font_path"`
}

// TouchConfig selects the touch input backend.
type TouchConfig struct {
	// Backend is "sdl" or "evdev". Dev mode always uses sdl.
	Backend string `toml:"backend"`
	// Device is the evdev input device path.
	Device string `toml:"device"`
}

// LocationConfig is the weather lookup position.
type LocationConfig struct {
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
}

// FeedsConfig tunes the background data feeds.
type FeedsConfig struct {
	WeatherRefreshSec int      `toml:"weather_refresh_sec"`
	CryptoRefreshSec  int      `toml:"crypto_refresh_sec"`
	CryptoPairs       []string `toml:"crypto_pairs"`
}

// LogConfig selects the log destination and level.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// DefaultConfig returns the stock configuration: Mallow, Cork, ten-minute
// weather refresh, five-minute crypto refresh, EUR majors.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Title: "braciole",
		},
		Touch: TouchConfig{
			Backend: "sdl",
			Device:  "/dev/input/event1",
		},
		Location: LocationConfig{
			Latitude:  52.1333,
			Longitude: -8.6333,
		},
		Feeds: FeedsConfig{
			WeatherRefreshSec: 600,
			CryptoRefreshSec:  300,
			CryptoPairs:       []string{"BTC-EUR", "ETH-EUR", "LTC-EUR"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads a TOML config file, layering it over the defaults.
// A missing file (or empty path) returns the defaults; a malformed file is
// an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// WeatherRefresh returns the weather poll interval.
func (c Config) WeatherRefresh() time.Duration {
	return secondsOrDefault(c.Feeds.WeatherRefreshSec, 600)
}

// CryptoRefresh returns the crypto poll interval.
func (c Config) CryptoRefresh() time.Duration {
	return secondsOrDefault(c.Feeds.CryptoRefreshSec, 300)
}

func secondsOrDefault(sec, fallback int) time.Duration {
	if sec <= 0 {
		sec = fallback
	}
	return time.Duration(sec) * time.Second
}
