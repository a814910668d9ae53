package mcp

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-mcp-agent/internal/logger"
	"weather-mcp-agent/internal/weather"
)

type stubFetcher struct {
	current  func(location string) (weather.Record, error)
	forecast func(location string, days int) ([]weather.Record, error)
}

func (s *stubFetcher) FetchCurrent(_ context.Context, location string) (weather.Record, error) {
	return s.current(location)
}

func (s *stubFetcher) FetchForecast(_ context.Context, location string, days int) ([]weather.Record, error) {
	return s.forecast(location, days)
}

func newAdapter(fetcher weather.Fetcher) *ToolAdapter {
	return NewToolAdapter(fetcher, logger.NewWithWriter("error", io.Discard))
}

func TestCurrentWeatherTool(t *testing.T) {
	fetcher := &stubFetcher{
		current: func(location string) (weather.Record, error) {
			return weather.Record{
				Location:    location,
				Temperature: 18.5,
				FeelsLike:   17.9,
				Humidity:    65,
				Description: "scattered clouds",
				WindSpeed:   3.2,
				Pressure:    1013,
				Visibility:  10000,
				Timestamp:   time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC),
			}, nil
		},
	}

	result, err := newAdapter(fetcher).CurrentWeather(context.Background(), "Kolkata")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"location":    "Kolkata",
		"temperature": "18.5°C",
		"feels_like":  "17.9°C",
		"humidity":    "65%",
		"description": "scattered clouds",
		"wind_speed":  "3.2 m/s",
		"pressure":    "1013 hPa",
		"visibility":  "10000 m",
		"timestamp":   "2024-01-15T09:00:00Z",
	}, result)
}

func TestCurrentWeatherToolPropagatesFailure(t *testing.T) {
	fetcher := &stubFetcher{
		current: func(location string) (weather.Record, error) {
			return weather.Record{}, fmt.Errorf("%w: provider returned 404", weather.ErrLookup)
		},
	}

	_, err := newAdapter(fetcher).CurrentWeather(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, weather.ErrLookup)
}

func TestForecastToolReturnsRawSlots(t *testing.T) {
	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	var gotDays int
	fetcher := &stubFetcher{
		forecast: func(location string, days int) ([]weather.Record, error) {
			gotDays = days
			return []weather.Record{
				{Location: location, Temperature: 20, Humidity: 60, Description: "clear", WindSpeed: 2, Timestamp: jan15.Add(9 * time.Hour)},
				{Location: location, Temperature: 24, Humidity: 55, Description: "clear", WindSpeed: 3, Timestamp: jan15.Add(15 * time.Hour)},
			}, nil
		},
	}

	result, err := newAdapter(fetcher).Forecast(context.Background(), "Delhi", 3)
	require.NoError(t, err)

	assert.Equal(t, 3, gotDays)
	assert.Equal(t, "Delhi", result.Location)
	// The tool surface returns full per-slot granularity, never daily
	// aggregates.
	require.Len(t, result.Forecast, 2)
	assert.Equal(t, "20°C", result.Forecast[0]["temperature"])
	assert.Equal(t, "2024-01-15T09:00:00Z", result.Forecast[0]["timestamp"])
	assert.NotContains(t, result.Forecast[0], "date")
	assert.NotContains(t, result.Forecast[0], "feels_like")
}

func TestForecastToolPropagatesFailure(t *testing.T) {
	fetcher := &stubFetcher{
		forecast: func(location string, days int) ([]weather.Record, error) {
			return nil, fmt.Errorf("%w: timeout", weather.ErrTransport)
		},
	}

	_, err := newAdapter(fetcher).Forecast(context.Background(), "Delhi", 5)
	assert.ErrorIs(t, err, weather.ErrTransport)
}
