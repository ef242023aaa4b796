package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOpenMeteoBody = `{
	"current_weather": {
		"temperature": 14.3,
		"windspeed": 12.7,
		"weathercode": 2
	},
	"hourly": {
		"relative_humidity_2m": [83.0, 81.0, 79.5]
	}
}`

func TestParseWeather(t *testing.T) {
	snapshot, err := parseWeather([]byte(sampleOpenMeteoBody))
	require.NoError(t, err)

	assert.Equal(t, "14C", snapshot.Temp)
	assert.Equal(t, "Partly Cloudy", snapshot.Desc)
	assert.Equal(t, "12km/h", snapshot.Wind)
	assert.Equal(t, "83%", snapshot.Humidity)
	assert.Equal(t, 2, snapshot.Code)
}

func TestParseWeatherMissingHumidity(t *testing.T) {
	snapshot, err := parseWeather([]byte(`{"current_weather":{"temperature":5,"windspeed":3,"weathercode":0}}`))
	require.NoError(t, err)
	assert.Equal(t, "0%", snapshot.Humidity)
	assert.Equal(t, "Clear", snapshot.Desc)
}

func TestParseWeatherInvalidJSON(t *testing.T) {
	_, err := parseWeather([]byte("not json"))
	assert.Error(t, err)
}

func TestDescribeCode(t *testing.T) {
	assert.Equal(t, "Clear", DescribeCode(0))
	assert.Equal(t, "Thunderstorm", DescribeCode(95))
	assert.Equal(t, "Unknown", DescribeCode(42))
}

func TestWeatherClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "52.1333", r.URL.Query().Get("latitude"))
		assert.Equal(t, "true", r.URL.Query().Get("current_weather"))
		w.Write([]byte(sampleOpenMeteoBody))
	}))
	defer server.Close()

	client := NewWeatherClient(52.1333, -8.6333)
	client.baseURL = server.URL

	snapshot, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Partly Cloudy", snapshot.Desc)
}

func TestWeatherClientFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewWeatherClient(52.1333, -8.6333)
	client.baseURL = server.URL

	_, err := client.Fetch(context.Background())
	assert.Error(t, err)
}

func TestPlaceholderWeather(t *testing.T) {
	assert.Equal(t, "Loading...", PlaceholderWeather().Desc)
}
