package weather

import (
	"fmt"
	"math"
)

// AggregateDaily collapses a multi-slot forecast sequence into one summary
// per calendar day. Input slots may arrive in any order; summaries are
// emitted in the order the distinct dates were first encountered, not sorted
// by date.
//
// The average temperature is rounded half away from zero (math.Round).
// The dominant description is the first value to reach the eventual maximum
// occurrence count in a left-to-right scan, so a 1-1 tie resolves to the
// first-encountered description.
func AggregateDaily(records []Record) ([]DailySummary, error) {
	if len(records) == 0 {
		return []DailySummary{}, nil
	}

	type dayGroup struct {
		sumTemp   float64
		count     int
		descCount map[string]int
		leader    string
		leadCount int
	}

	groups := make(map[string]*dayGroup)
	order := make([]string, 0, len(records))

	for _, r := range records {
		if math.IsNaN(r.Temperature) || math.IsInf(r.Temperature, 0) {
			return nil, fmt.Errorf("slot at %s has unusable temperature: %w", r.Timestamp, ErrFormat)
		}

		key := r.Day()
		g, ok := groups[key]
		if !ok {
			g = &dayGroup{descCount: make(map[string]int)}
			groups[key] = g
			order = append(order, key)
		}

		g.sumTemp += r.Temperature
		g.count++

		g.descCount[r.Description]++
		if g.descCount[r.Description] > g.leadCount {
			g.leadCount = g.descCount[r.Description]
			g.leader = r.Description
		}
	}

	summaries := make([]DailySummary, 0, len(order))
	for _, key := range order {
		g := groups[key]
		summaries = append(summaries, DailySummary{
			Date:                key,
			AverageTemperature:  int(math.Round(g.sumTemp / float64(g.count))),
			DominantDescription: g.leader,
		})
	}

	return summaries, nil
}
