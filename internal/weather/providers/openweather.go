package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"weather-mcp-agent/internal/weather"
)

// slotsPerDay is OpenWeatherMap's forecast cadence: 3-hour slots, 8 per day.
const slotsPerDay = 8

// OpenWeatherClient implements weather.Fetcher against the OpenWeatherMap
// "current weather" and "5 day / 3 hour forecast" endpoints.
type OpenWeatherClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewOpenWeatherClient builds a client around the injected credential and
// HTTP client; the credential is immutable after construction and may be
// empty, in which case every fetch fails with weather.ErrAuth.
func NewOpenWeatherClient(client *http.Client, apiKey, baseURL string) *OpenWeatherClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:         "openweathermap",
		MaxRequests:  5,
		Interval:     1 * time.Minute,
		Timeout:      2 * time.Minute,
		IsSuccessful: isProviderHealthy,
	})

	return &OpenWeatherClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
		circuit: cb,
	}
}

// currentPayload mirrors the subset of the provider's current-weather JSON we
// consume. Temperature is decoded through a pointer so a missing value is
// detected instead of defaulting to zero.
type currentPayload struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      *float64 `json:"temp"`
		FeelsLike float64  `json:"feels_like"`
		Pressure  int      `json:"pressure"`
		Humidity  int      `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility int   `json:"visibility"`
	Dt         int64 `json:"dt"`
}

func (p currentPayload) toRecord(location string) (weather.Record, error) {
	if p.Main.Temp == nil {
		return weather.Record{}, fmt.Errorf("missing temperature in provider payload: %w", weather.ErrFormat)
	}

	desc := ""
	if len(p.Weather) > 0 {
		desc = p.Weather[0].Description
	}

	return weather.Record{
		Location:    location,
		Temperature: *p.Main.Temp,
		FeelsLike:   p.Main.FeelsLike,
		Humidity:    p.Main.Humidity,
		Description: desc,
		WindSpeed:   p.Wind.Speed,
		Pressure:    p.Main.Pressure,
		Visibility:  p.Visibility,
		Timestamp:   time.Unix(p.Dt, 0).UTC(),
	}, nil
}

// FetchCurrent issues exactly one request to the current-weather endpoint.
func (c *OpenWeatherClient) FetchCurrent(ctx context.Context, location string) (weather.Record, error) {
	if c.apiKey == "" {
		return weather.Record{}, fmt.Errorf("%w: OPENWEATHER_API_KEY is not set", weather.ErrAuth)
	}

	resp, err := doRequest(ctx, c.client, c.circuit, func() (*http.Request, error) {
		return c.buildRequest("/weather", location, 0)
	})
	if err != nil {
		return weather.Record{}, err
	}
	defer resp.Body.Close()

	var payload currentPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Record{}, fmt.Errorf("decoding current weather: %v: %w", err, weather.ErrFormat)
	}

	return payload.toRecord(location)
}

// FetchForecast issues exactly one request to the forecast endpoint. days
// bounds the requested horizon via the provider's cnt parameter (8 three-hour
// slots per day); the returned slot list is never truncated locally.
func (c *OpenWeatherClient) FetchForecast(ctx context.Context, location string, days int) ([]weather.Record, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: OPENWEATHER_API_KEY is not set", weather.ErrAuth)
	}
	if days <= 0 {
		days = weather.DefaultForecastDays
	}

	resp, err := doRequest(ctx, c.client, c.circuit, func() (*http.Request, error) {
		return c.buildRequest("/forecast", location, days*slotsPerDay)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		List []currentPayload `json:"list"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding forecast: %v: %w", err, weather.ErrFormat)
	}

	records := make([]weather.Record, 0, len(payload.List))
	for _, item := range payload.List {
		rec, err := item.toRecord(location)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func (c *OpenWeatherClient) buildRequest(path, location string, cnt int) (*http.Request, error) {
	values := url.Values{}
	values.Set("q", location)
	values.Set("appid", c.apiKey)
	values.Set("units", "metric")
	if cnt > 0 {
		values.Set("cnt", strconv.Itoa(cnt))
	}

	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())
	return http.NewRequest(http.MethodGet, u, nil)
}
