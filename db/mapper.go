package db

import (
	"sort"
	"strconv"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/query"
)

// Row is the subset of a pivoted Flux record the mapper reads.
type Row interface {
	Time() time.Time
	ValueByKey(key string) any
}

var _ Row = (*query.FluxRecord)(nil)

// textSetters maps text field columns onto a measurement. A value is only
// applied when it actually is a string.
var textSetters = map[string]func(*Measurement, string){
	fieldStationName: func(m *Measurement, v string) { m.StationName = &v },
	"bar_trend":      func(m *Measurement, v string) { m.BarTrend = &v },
}

// numericSetters maps numeric field columns onto a measurement. A value is
// only applied when its runtime type is numeric; anything else on a known
// column is ignored.
var numericSetters = map[string]func(*Measurement, float64){
	// Temperature
	"temp":          func(m *Measurement, v float64) { m.Temp = &v },
	"temp_in":       func(m *Measurement, v float64) { m.TempIn = &v },
	"dew_point":     func(m *Measurement, v float64) { m.DewPoint = &v },
	"dew_point_in":  func(m *Measurement, v float64) { m.DewPointIn = &v },
	"heat_index":    func(m *Measurement, v float64) { m.HeatIndex = &v },
	"heat_index_in": func(m *Measurement, v float64) { m.HeatIndexIn = &v },
	"wind_chill":    func(m *Measurement, v float64) { m.WindChill = &v },
	"wet_bulb":      func(m *Measurement, v float64) { m.WetBulb = &v },
	"wet_bulb_in":   func(m *Measurement, v float64) { m.WetBulbIn = &v },
	"thw_index":     func(m *Measurement, v float64) { m.THWIndex = &v },
	"thsw_index":    func(m *Measurement, v float64) { m.THSWIndex = &v },

	// Humidity
	"hum":    func(m *Measurement, v float64) { m.Hum = &v },
	"hum_in": func(m *Measurement, v float64) { m.HumIn = &v },

	// Pressure
	"bar_absolute":  func(m *Measurement, v float64) { m.BarAbsolute = &v },
	"bar_sea_level": func(m *Measurement, v float64) { m.BarSeaLevel = &v },
	"bar_offset":    func(m *Measurement, v float64) { m.BarOffset = &v },

	// Wind
	"wind_speed_last":                  func(m *Measurement, v float64) { m.WindSpeedLast = &v },
	"wind_speed_avg_last_1_min":        func(m *Measurement, v float64) { m.WindSpeedAvgLast1Min = &v },
	"wind_speed_avg_last_2_min":        func(m *Measurement, v float64) { m.WindSpeedAvgLast2Min = &v },
	"wind_speed_avg_last_10_min":       func(m *Measurement, v float64) { m.WindSpeedAvgLast10Min = &v },
	"wind_speed_hi_last_2_min":         func(m *Measurement, v float64) { m.WindSpeedHiLast2Min = &v },
	"wind_speed_hi_last_10_min":        func(m *Measurement, v float64) { m.WindSpeedHiLast10Min = &v },
	"wind_dir_last":                    func(m *Measurement, v float64) { m.WindDirLast = &v },
	"wind_dir_scalar_avg_last_1_min":   func(m *Measurement, v float64) { m.WindDirScalarAvgLast1Min = &v },
	"wind_dir_scalar_avg_last_2_min":   func(m *Measurement, v float64) { m.WindDirScalarAvgLast2Min = &v },
	"wind_dir_scalar_avg_last_10_min":  func(m *Measurement, v float64) { m.WindDirScalarAvgLast10Min = &v },
	"wind_dir_at_hi_speed_last_2_min":  func(m *Measurement, v float64) { m.WindDirAtHiSpeedLast2Min = &v },
	"wind_dir_at_hi_speed_last_10_min": func(m *Measurement, v float64) { m.WindDirAtHiSpeedLast10Min = &v },
	"wind_run_day":                     func(m *Measurement, v float64) { m.WindRunDay = &v },

	// Rainfall
	"rainfall_daily_mm":           func(m *Measurement, v float64) { m.RainfallDailyMm = &v },
	"rainfall_daily_in":           func(m *Measurement, v float64) { m.RainfallDailyIn = &v },
	"rainfall_day_mm":             func(m *Measurement, v float64) { m.RainfallDayMm = &v },
	"rainfall_month_mm":           func(m *Measurement, v float64) { m.RainfallMonthMm = &v },
	"rainfall_year_mm":            func(m *Measurement, v float64) { m.RainfallYearMm = &v },
	"rainfall_last_15_min_mm":     func(m *Measurement, v float64) { m.RainfallLast15MinMm = &v },
	"rainfall_last_60_min_mm":     func(m *Measurement, v float64) { m.RainfallLast60MinMm = &v },
	"rainfall_last_24_hr_mm":      func(m *Measurement, v float64) { m.RainfallLast24HrMm = &v },
	"rain_rate_last_mm":           func(m *Measurement, v float64) { m.RainRateLastMm = &v },
	"rain_rate_hi_mm":             func(m *Measurement, v float64) { m.RainRateHiMm = &v },
	"rain_rate_hi_last_15_min_mm": func(m *Measurement, v float64) { m.RainRateHiLast15MinMm = &v },

	// Solar radiation and UV
	"solar_rad":        func(m *Measurement, v float64) { m.SolarRad = &v },
	"solar_energy_day": func(m *Measurement, v float64) { m.SolarEnergyDay = &v },
	"uv_index":         func(m *Measurement, v float64) { m.UVIndex = &v },
	"uv_dose_day":      func(m *Measurement, v float64) { m.UVDoseDay = &v },

	// Evapotranspiration
	"et_day":   func(m *Measurement, v float64) { m.ETDay = &v },
	"et_month": func(m *Measurement, v float64) { m.ETMonth = &v },
	"et_year":  func(m *Measurement, v float64) { m.ETYear = &v },
}

// locationSetters handle the per-row location tags. Tags arrive as strings,
// so these accept numeric strings as well as numbers.
var locationSetters = map[string]func(*Measurement, float64){
	fieldLatitude:  func(m *Measurement, v float64) { m.Latitude = &v },
	fieldLongitude: func(m *Measurement, v float64) { m.Longitude = &v },
	fieldElevation: func(m *Measurement, v float64) { m.Elevation = &v },
}

// measurementBuilder merges pivoted rows into one measurement per
// (station, timestamp) pair. Store-side pivoting still leaves one row per
// table shard, so several rows may contribute to the same pair; a repeated
// (station, timestamp, field) triple overwrites, last write wins.
type measurementBuilder struct {
	byKey   map[string]*Measurement
	dropped int
}

func newMeasurementBuilder() *measurementBuilder {
	return &measurementBuilder{byKey: make(map[string]*Measurement)}
}

// Add folds one row into the builder. Rows without a timestamp or station
// identifier are malformed input: dropped, counted, never an error.
func (b *measurementBuilder) Add(r Row) {
	ts := r.Time()
	stationID, _ := r.ValueByKey(tagStationID).(string)
	if ts.IsZero() || stationID == "" {
		b.dropped++
		return
	}

	key := stationID + "_" + strconv.FormatInt(ts.UnixNano(), 10)
	m, ok := b.byKey[key]
	if !ok {
		m = &Measurement{StationID: stationID, Timestamp: ts}
		b.byKey[key] = m
	}

	for field, set := range textSetters {
		if s, ok := r.ValueByKey(field).(string); ok {
			set(m, s)
		}
	}
	for field, set := range numericSetters {
		if v, ok := toFloat(r.ValueByKey(field)); ok {
			set(m, v)
		}
	}
	for field, set := range locationSetters {
		if v, ok := coerceNumeric(r.ValueByKey(field)); ok {
			set(m, v)
		}
	}
}

// Dropped reports how many malformed rows were skipped.
func (b *measurementBuilder) Dropped() int { return b.dropped }

// Measurements finalizes the accumulated entities, sorted by timestamp
// ascending.
func (b *measurementBuilder) Measurements() []Measurement {
	out := make([]Measurement, 0, len(b.byKey))
	for _, m := range b.byKey {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
