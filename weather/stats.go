package weather

import (
	"sort"

	"weather-backend/db"
)

// FieldStats holds the reduction of one numeric field over a window.
type FieldStats struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// StationStatistics is the per-station summary computed over a lookback
// window. Never persisted; recomputed per request.
type StationStatistics struct {
	StationID         string                `json:"stationId"`
	TotalMeasurements int                   `json:"totalMeasurements"`
	Period            string                `json:"period"`
	Fields            map[string]FieldStats `json:"fields"`
	MaxRainfallDayMm  float64               `json:"maxRainfallDayMm"`
}

// statFields maps a statistics field name to its measurement accessor.
// Requested names outside this table are ignored.
var statFields = map[string]func(*db.Measurement) *float64{
	"temp":           func(m *db.Measurement) *float64 { return m.Temp },
	"hum":            func(m *db.Measurement) *float64 { return m.Hum },
	"windSpeedLast":  func(m *db.Measurement) *float64 { return m.WindSpeedLast },
	"barSeaLevel":    func(m *db.Measurement) *float64 { return m.BarSeaLevel },
	"dewPoint":       func(m *db.Measurement) *float64 { return m.DewPoint },
	"windChill":      func(m *db.Measurement) *float64 { return m.WindChill },
	"solarRad":       func(m *db.Measurement) *float64 { return m.SolarRad },
	"uvIndex":        func(m *db.Measurement) *float64 { return m.UVIndex },
	"rainRateLastMm": func(m *db.Measurement) *float64 { return m.RainRateLastMm },
}

// defaultStatFields are the fields summarized by the statistics endpoint.
var defaultStatFields = []string{"temp", "hum", "windSpeedLast", "barSeaLevel"}

// computeFieldStats reduces each requested field to {min, max, avg} over
// the values actually present. A field with zero present values is omitted
// entirely; absent values never contribute to the average denominator.
func computeFieldStats(ms []db.Measurement, fields []string) map[string]FieldStats {
	out := make(map[string]FieldStats)
	for _, name := range fields {
		get, ok := statFields[name]
		if !ok {
			continue
		}

		var count int
		var sum, min, max float64
		for i := range ms {
			v := get(&ms[i])
			if v == nil {
				continue
			}
			if count == 0 {
				min, max = *v, *v
			} else {
				if *v < min {
					min = *v
				}
				if *v > max {
					max = *v
				}
			}
			sum += *v
			count++
		}
		if count > 0 {
			out[name] = FieldStats{Min: min, Max: max, Avg: sum / float64(count)}
		}
	}
	return out
}

// maxDailyRainfall returns the maximum (not the sum) of the per-record
// daily rainfall field, 0.0 when no record reports it. The field is a
// running daily total, so its maximum is the day's accumulation.
func maxDailyRainfall(ms []db.Measurement) float64 {
	max := 0.0
	for i := range ms {
		if v := ms[i].RainfallDayMm; v != nil && *v > max {
			max = *v
		}
	}
	return max
}

// latestPerStation keeps the measurement with the greatest timestamp for
// each station. When timestamps tie the first-encountered measurement
// wins. The result is ordered by station identifier.
func latestPerStation(ms []db.Measurement) []db.Measurement {
	latest := make(map[string]db.Measurement)
	for _, m := range ms {
		cur, ok := latest[m.StationID]
		if !ok || m.Timestamp.After(cur.Timestamp) {
			latest[m.StationID] = m
		}
	}

	out := make([]db.Measurement, 0, len(latest))
	for _, m := range latest {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StationID < out[j].StationID
	})
	return out
}

// groupByStation splits measurements into per-station groups, preserving
// arrival order within each group.
func groupByStation(ms []db.Measurement) map[string][]db.Measurement {
	grouped := make(map[string][]db.Measurement)
	for _, m := range ms {
		grouped[m.StationID] = append(grouped[m.StationID], m)
	}
	return grouped
}
