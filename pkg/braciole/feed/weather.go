// Package feed fetches the gadget's background data: current weather from
// Open-Meteo and crypto spot prices from Coinbase. Each feed runs on its own
// ticker and publishes immutable snapshots through an atomic value, so the
// render loop reads without locking and the input core stays single-owner.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.uber.org/atomic"
)

const openMeteoBaseURL = "https://api.open-meteo.com"

// WeatherSnapshot is the display-ready weather state.
type WeatherSnapshot struct {
	Temp     string // "14C"
	Desc     string // "Partly Cloudy"
	Wind     string // "12km/h"
	Humidity string // "83%"
	Code     int    // WMO weather code, drives the icon
}

// PlaceholderWeather is shown until the first fetch completes.
func PlaceholderWeather() WeatherSnapshot {
	return WeatherSnapshot{Temp: "N/A", Desc: "Loading...", Wind: "0", Humidity: "0"}
}

func errorWeather() WeatherSnapshot {
	return WeatherSnapshot{Temp: "N/A", Desc: "Error", Wind: "N/A", Humidity: "N/A"}
}

// wmoDescriptions maps WMO weather codes to short display strings.
var wmoDescriptions = map[int]string{
	0: "Clear", 1: "Mostly Clear", 2: "Partly Cloudy", 3: "Cloudy",
	45: "Foggy", 48: "Foggy", 51: "Light Rain", 53: "Rain",
	55: "Heavy Rain", 61: "Light Rain", 63: "Rain", 65: "Heavy Rain",
	71: "Light Snow", 73: "Snow", 75: "Heavy Snow", 80: "Showers",
	81: "Showers", 82: "Heavy Showers", 95: "Thunderstorm",
}

// DescribeCode returns the short description for a WMO weather code.
func DescribeCode(code int) string {
	if desc, ok := wmoDescriptions[code]; ok {
		return desc
	}
	return "Unknown"
}

type openMeteoResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		Windspeed   float64 `json:"windspeed"`
		Weathercode int     `json:"weathercode"`
	} `json:"current_weather"`
	Hourly struct {
		RelativeHumidity []float64 `json:"relative_humidity_2m"`
	} `json:"hourly"`
}

// WeatherClient fetches current conditions for a fixed position.
type WeatherClient struct {
	httpClient *http.Client
	baseURL    string
	lat, lon   float64
}

// NewWeatherClient creates a client for the given position.
func NewWeatherClient(lat, lon float64) *WeatherClient {
	return &WeatherClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    openMeteoBaseURL,
		lat:        lat,
		lon:        lon,
	}
}

// Fetch retrieves and converts the current conditions.
func (c *WeatherClient) Fetch(ctx context.Context) (WeatherSnapshot, error) {
	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%v&longitude=%v&current_weather=true&hourly=relative_humidity_2m",
		c.baseURL, c.lat, c.lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return WeatherSnapshot{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return WeatherSnapshot{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return WeatherSnapshot{}, fmt.Errorf("open-meteo: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return WeatherSnapshot{}, err
	}

	return parseWeather(body)
}

func parseWeather(body []byte) (WeatherSnapshot, error) {
	var parsed openMeteoResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return WeatherSnapshot{}, fmt.Errorf("open-meteo: %w", err)
	}

	humidity := 0.0
	if len(parsed.Hourly.RelativeHumidity) > 0 {
		humidity = parsed.Hourly.RelativeHumidity[0]
	}

	return WeatherSnapshot{
		Temp:     fmt.Sprintf("%dC", int(parsed.CurrentWeather.Temperature)),
		Desc:     DescribeCode(parsed.CurrentWeather.Weathercode),
		Wind:     fmt.Sprintf("%dkm/h", int(parsed.CurrentWeather.Windspeed)),
		Humidity: fmt.Sprintf("%d%%", int(humidity)),
		Code:     parsed.CurrentWeather.Weathercode,
	}, nil
}

// WeatherService refreshes the weather on an interval and holds the latest
// snapshot for the render loop.
type WeatherService struct {
	client   *WeatherClient
	interval time.Duration
	logger   *slog.Logger
	snapshot atomic.Value // WeatherSnapshot
	fetched  atomic.Bool
}

// NewWeatherService wraps a client with periodic refresh.
func NewWeatherService(client *WeatherClient, interval time.Duration, logger *slog.Logger) *WeatherService {
	s := &WeatherService{
		client:   client,
		interval: interval,
		logger:   logger,
	}
	s.snapshot.Store(PlaceholderWeather())
	return s
}

// Current returns the latest snapshot. Never blocks.
func (s *WeatherService) Current() WeatherSnapshot {
	return s.snapshot.Load().(WeatherSnapshot)
}

// Run fetches immediately and then on every interval until ctx is done.
// Call in its own goroutine.
func (s *WeatherService) Run(ctx context.Context) {
	s.refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *WeatherService) refresh(ctx context.Context) {
	snapshot, err := s.client.Fetch(ctx)
	if err != nil {
		s.logger.Warn("weather fetch failed", "error", err)
		// Keep showing stale data once we have some; before the first
		// success the placeholder becomes an explicit error state.
		if !s.fetched.Load() {
			s.snapshot.Store(errorWeather())
		}
		return
	}
	s.fetched.Store(true)
	s.snapshot.Store(snapshot)
	s.logger.Debug("weather updated", "desc", snapshot.Desc, "temp", snapshot.Temp)
}
