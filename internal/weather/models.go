package weather

import (
	"time"
)

// Record is a normalized weather observation or forecast slot, created fresh
// from provider output for each request. Nothing retains Records between
// requests.
type Record struct {
	Location    string    `json:"location"`
	Temperature float64   `json:"temperature"` // degrees Celsius
	FeelsLike   float64   `json:"feels_like"`  // degrees Celsius
	Humidity    int       `json:"humidity"`    // percent, 0-100
	Description string    `json:"description"` // provider vocabulary, free text
	WindSpeed   float64   `json:"wind_speed"`  // meters/second
	Pressure    int       `json:"pressure"`    // hectopascals
	Visibility  int       `json:"visibility"`  // meters
	Timestamp   time.Time `json:"timestamp"`   // always UTC
}

// Day returns the calendar-date key used for daily grouping.
func (r Record) Day() string {
	return r.Timestamp.UTC().Format("2006-01-02")
}

// DailySummary collapses all forecast slots of one calendar day into a single
// row suitable for a compact display ("5-day forecast" cards).
type DailySummary struct {
	Date                string `json:"date"` // YYYY-MM-DD
	AverageTemperature  int    `json:"average_temperature"`
	DominantDescription string `json:"dominant_description"`
}
