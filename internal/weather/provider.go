package weather

import "context"

// DefaultForecastDays is the forecast horizon requested when the caller does
// not supply one.
const DefaultForecastDays = 5

// Fetcher abstracts a weather data source. Each call performs exactly one
// outbound request; there is no retry or backoff.
type Fetcher interface {
	// FetchCurrent returns the current conditions for a location.
	FetchCurrent(ctx context.Context, location string) (Record, error)

	// FetchForecast returns the provider's forecast slots covering up to
	// days calendar days. The slot count and distribution are
	// provider-determined; days is passed through, never truncated locally.
	FetchForecast(ctx context.Context, location string, days int) ([]Record, error)
}
