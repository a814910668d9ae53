package weather

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() Record {
	return Record{
		Location:    "Kolkata",
		Temperature: 18.5,
		FeelsLike:   19.25,
		Humidity:    65,
		Description: "scattered clouds",
		WindSpeed:   3.2,
		Pressure:    1013,
		Visibility:  10000,
		Timestamp:   time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC),
	}
}

func TestCurrentDisplayFields(t *testing.T) {
	view := CurrentDisplay(sampleRecord())

	assert.Equal(t, "Kolkata", view["location"])
	assert.Equal(t, "18.5°C", view["temperature"])
	assert.Equal(t, "19.25°C", view["feels_like"])
	assert.Equal(t, "65%", view["humidity"])
	assert.Equal(t, "scattered clouds", view["description"])
	assert.Equal(t, "3.2 m/s", view["wind_speed"])
	assert.Equal(t, "1013 hPa", view["pressure"])
	assert.Equal(t, "10000 m", view["visibility"])
	assert.Equal(t, "2024-01-15T09:30:00Z", view["timestamp"])
}

func TestSlotDisplayOmitsCurrentOnlyFields(t *testing.T) {
	view := SlotDisplay(sampleRecord())

	assert.Len(t, view, 5)
	assert.Contains(t, view, "timestamp")
	assert.Contains(t, view, "temperature")
	assert.Contains(t, view, "description")
	assert.Contains(t, view, "humidity")
	assert.Contains(t, view, "wind_speed")
	assert.NotContains(t, view, "pressure")
	assert.NotContains(t, view, "visibility")
}

// Formatting then parsing the numeric prefix back out must recover the
// original value.
func TestTemperatureRoundTrip(t *testing.T) {
	for _, temp := range []float64{18.5, -3.25, 0, 27, 31.999} {
		rec := sampleRecord()
		rec.Temperature = temp

		view := CurrentDisplay(rec)
		parsed, err := strconv.ParseFloat(strings.TrimSuffix(view["temperature"], "°C"), 64)
		require.NoError(t, err)
		assert.InDelta(t, temp, parsed, 1e-9)
	}
}
