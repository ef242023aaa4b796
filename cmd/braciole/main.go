package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/braciole/pkg/braciole"
	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/feed"
)

func main() {
	configPath := flag.String("config", "/etc/braciole/config.toml", "path to the TOML config file")
	flag.Parse()

	cfg, err := braciole.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	braciole.Init(braciole.Options{
		WindowTitle: cfg.Display.Title,
		FontPath:    cfg.Display.FontPath,
		LogPath:     cfg.Log.Path,
		LogLevel:    cfg.Log.Level,
	})
	defer braciole.Close()

	logger := braciole.GetLogger()

	var touch braciole.TouchSource
	if cfg.Touch.Backend == "evdev" && !constants.IsDevMode() {
		touch, err = braciole.NewEvdevTouchSource(cfg.Touch.Device)
		if err != nil {
			logger.Warn("evdev unavailable, falling back to SDL input",
				"device", cfg.Touch.Device, "error", err)
			touch = braciole.NewSDLTouchSource()
		}
	} else {
		touch = braciole.NewSDLTouchSource()
	}
	defer touch.Close()

	weather := feed.NewWeatherService(
		feed.NewWeatherClient(cfg.Location.Latitude, cfg.Location.Longitude),
		cfg.WeatherRefresh(), logger)
	crypto := feed.NewCryptoService(
		feed.NewCryptoClient(cfg.Feeds.CryptoPairs),
		cfg.CryptoRefresh(), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	controller := braciole.NewController(cfg, touch, weather, crypto)
	if err := controller.Run(ctx); err != nil {
		logger.Error("controller stopped", "error", err)
	}
}
