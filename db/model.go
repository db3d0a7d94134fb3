package db

import "time"

// Measurement is one observation bundle from one station at one instant.
// Numeric fields are pointers so that "no value reported" stays
// distinguishable from a reported zero.
type Measurement struct {
	StationID   string    `json:"stationId"`
	StationName *string   `json:"stationName,omitempty"`
	Timestamp   time.Time `json:"timestamp"`

	// Temperature
	Temp        *float64 `json:"temp,omitempty"`
	TempIn      *float64 `json:"tempIn,omitempty"`
	DewPoint    *float64 `json:"dewPoint,omitempty"`
	DewPointIn  *float64 `json:"dewPointIn,omitempty"`
	HeatIndex   *float64 `json:"heatIndex,omitempty"`
	HeatIndexIn *float64 `json:"heatIndexIn,omitempty"`
	WindChill   *float64 `json:"windChill,omitempty"`
	WetBulb     *float64 `json:"wetBulb,omitempty"`
	WetBulbIn   *float64 `json:"wetBulbIn,omitempty"`
	THWIndex    *float64 `json:"thwIndex,omitempty"`
	THSWIndex   *float64 `json:"thswIndex,omitempty"`

	// Humidity
	Hum   *float64 `json:"hum,omitempty"`
	HumIn *float64 `json:"humIn,omitempty"`

	// Pressure
	BarAbsolute *float64 `json:"barAbsolute,omitempty"`
	BarSeaLevel *float64 `json:"barSeaLevel,omitempty"`
	BarOffset   *float64 `json:"barOffset,omitempty"`
	BarTrend    *string  `json:"barTrend,omitempty"`

	// Wind
	WindSpeedLast             *float64 `json:"windSpeedLast,omitempty"`
	WindSpeedAvgLast1Min      *float64 `json:"windSpeedAvgLast1Min,omitempty"`
	WindSpeedAvgLast2Min      *float64 `json:"windSpeedAvgLast2Min,omitempty"`
	WindSpeedAvgLast10Min     *float64 `json:"windSpeedAvgLast10Min,omitempty"`
	WindSpeedHiLast2Min       *float64 `json:"windSpeedHiLast2Min,omitempty"`
	WindSpeedHiLast10Min      *float64 `json:"windSpeedHiLast10Min,omitempty"`
	WindDirLast               *float64 `json:"windDirLast,omitempty"`
	WindDirScalarAvgLast1Min  *float64 `json:"windDirScalarAvgLast1Min,omitempty"`
	WindDirScalarAvgLast2Min  *float64 `json:"windDirScalarAvgLast2Min,omitempty"`
	WindDirScalarAvgLast10Min *float64 `json:"windDirScalarAvgLast10Min,omitempty"`
	WindDirAtHiSpeedLast2Min  *float64 `json:"windDirAtHiSpeedLast2Min,omitempty"`
	WindDirAtHiSpeedLast10Min *float64 `json:"windDirAtHiSpeedLast10Min,omitempty"`
	WindRunDay                *float64 `json:"windRunDay,omitempty"`

	// Rainfall
	RainfallDailyMm       *float64 `json:"rainfallDailyMm,omitempty"`
	RainfallDailyIn       *float64 `json:"rainfallDailyIn,omitempty"`
	RainfallDayMm         *float64 `json:"rainfallDayMm,omitempty"`
	RainfallMonthMm       *float64 `json:"rainfallMonthMm,omitempty"`
	RainfallYearMm        *float64 `json:"rainfallYearMm,omitempty"`
	RainfallLast15MinMm   *float64 `json:"rainfallLast15MinMm,omitempty"`
	RainfallLast60MinMm   *float64 `json:"rainfallLast60MinMm,omitempty"`
	RainfallLast24HrMm    *float64 `json:"rainfallLast24HrMm,omitempty"`
	RainRateLastMm        *float64 `json:"rainRateLastMm,omitempty"`
	RainRateHiMm          *float64 `json:"rainRateHiMm,omitempty"`
	RainRateHiLast15MinMm *float64 `json:"rainRateHiLast15MinMm,omitempty"`

	// Solar radiation and UV
	SolarRad       *float64 `json:"solarRad,omitempty"`
	SolarEnergyDay *float64 `json:"solarEnergyDay,omitempty"`
	UVIndex        *float64 `json:"uvIndex,omitempty"`
	UVDoseDay      *float64 `json:"uvDoseDay,omitempty"`

	// Evapotranspiration
	ETDay   *float64 `json:"etDay,omitempty"`
	ETMonth *float64 `json:"etMonth,omitempty"`
	ETYear  *float64 `json:"etYear,omitempty"`

	// Location (tags on the series, copied per row)
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Elevation *float64 `json:"elevation,omitempty"`
}

// StationInfo is the static descriptive record for one station, derived
// from the most recent snapshot in the bucket on each lookup.
type StationInfo struct {
	StationID   string   `json:"stationId"`
	StationName *string  `json:"stationName,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Elevation   *float64 `json:"elevation,omitempty"`
	Active      bool     `json:"active"`
}
