package weather

import (
	"strconv"
	"time"
)

// Display formatting shared by the tool surface, the HTTP API and the CLI.
// Floats render without trailing zeros so "18.5°C" parses back to 18.5.

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CurrentDisplay renders a Record as the flat display-string mapping used
// for current conditions: every field, unit-suffixed.
func CurrentDisplay(r Record) map[string]string {
	return map[string]string{
		"location":    r.Location,
		"temperature": formatFloat(r.Temperature) + "°C",
		"feels_like":  formatFloat(r.FeelsLike) + "°C",
		"humidity":    strconv.Itoa(r.Humidity) + "%",
		"description": r.Description,
		"wind_speed":  formatFloat(r.WindSpeed) + " m/s",
		"pressure":    strconv.Itoa(r.Pressure) + " hPa",
		"visibility":  strconv.Itoa(r.Visibility) + " m",
		"timestamp":   r.Timestamp.UTC().Format(time.RFC3339),
	}
}

// SlotDisplay renders a forecast slot. Forecast rows carry fewer fields than
// current conditions; that asymmetry is part of the observed contract.
func SlotDisplay(r Record) map[string]string {
	return map[string]string{
		"timestamp":   r.Timestamp.UTC().Format(time.RFC3339),
		"temperature": formatFloat(r.Temperature) + "°C",
		"description": r.Description,
		"humidity":    strconv.Itoa(r.Humidity) + "%",
		"wind_speed":  formatFloat(r.WindSpeed) + " m/s",
	}
}

// SlotDisplays renders a forecast sequence in input order.
func SlotDisplays(records []Record) []map[string]string {
	out := make([]map[string]string, 0, len(records))
	for _, r := range records {
		out = append(out, SlotDisplay(r))
	}
	return out
}
