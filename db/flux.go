package db

import (
	"errors"
	"fmt"
	"strings"
)

// Tag and field names as written by the ingestion side.
const (
	tagStationID     = "station_id"
	fieldStationName = "station_name"
	fieldLatitude    = "latitude"
	fieldLongitude   = "longitude"
	fieldElevation   = "elevation"
)

// locationFields are series metadata, not timestamped observations; history
// queries exclude them so they never pivot into measurement columns.
var locationFields = []string{fieldLatitude, fieldLongitude, fieldElevation}

// currentFields is the reduced field set served by the current-conditions
// snapshot.
var currentFields = []string{
	"temp", "wind_chill", "dew_point", "wet_bulb", "hum",
	"wind_speed_last", "wind_dir_last", "rainfall_day_mm", "rainfall_month_mm",
}

// meanFields are the fields averaged store-side for the current-conditions
// response.
var meanFields = []string{"temp", "wind_chill", "dew_point", "wet_bulb", "hum"}

// ErrInvalidLookback is returned when a query is requested with a
// non-positive trailing window. It is a caller error, never sent to the
// store.
var ErrInvalidLookback = errors.New("lookback must be positive")

// fluxQuery describes one read query against the bucket. build renders it
// to a Flux string; nothing here executes anything.
type fluxQuery struct {
	bucket        string
	lookback      string // e.g. "-3d", "-1h"
	stationID     string // equality filter on the station tag when set
	includeFields []string
	excludeFields []string
	distinctTag   string // keep+distinct on this column, for discovery
	last          bool
	mean          bool
	limit         int
	pivotRowKey   string // "_time" or the station tag; empty means no pivot
	sortByTime    bool
}

func (q fluxQuery) build() string {
	var b strings.Builder
	fmt.Fprintf(&b, "from(bucket: %q)\n", q.bucket)
	fmt.Fprintf(&b, "  |> range(start: %s)\n", q.lookback)

	if q.stationID != "" {
		fmt.Fprintf(&b, "  |> filter(fn: (r) => r[%q] == %q)\n", tagStationID, q.stationID)
	}
	if len(q.excludeFields) > 0 {
		conds := make([]string, len(q.excludeFields))
		for i, f := range q.excludeFields {
			conds[i] = fmt.Sprintf("r[\"_field\"] != %q", f)
		}
		fmt.Fprintf(&b, "  |> filter(fn: (r) => %s)\n", strings.Join(conds, " and "))
	}
	if len(q.includeFields) > 0 {
		conds := make([]string, len(q.includeFields))
		for i, f := range q.includeFields {
			conds[i] = fmt.Sprintf("r[\"_field\"] == %q", f)
		}
		fmt.Fprintf(&b, "  |> filter(fn: (r) => %s)\n", strings.Join(conds, " or "))
	}
	if q.distinctTag != "" {
		fmt.Fprintf(&b, "  |> filter(fn: (r) => exists r.%s)\n", q.distinctTag)
		fmt.Fprintf(&b, "  |> keep(columns: [%q])\n", q.distinctTag)
		fmt.Fprintf(&b, "  |> distinct(column: %q)\n", q.distinctTag)
	}
	if q.last {
		b.WriteString("  |> last()\n")
	}
	if q.mean {
		b.WriteString("  |> mean()\n")
	}
	if q.limit > 0 {
		fmt.Fprintf(&b, "  |> limit(n: %d)\n", q.limit)
	}
	if q.pivotRowKey != "" {
		fmt.Fprintf(&b, "  |> pivot(rowKey:[%q], columnKey: [\"_field\"], valueColumn: \"_value\")\n", q.pivotRowKey)
	}
	if q.sortByTime {
		b.WriteString("  |> sort(columns: [\"_time\"], desc: false)\n")
	}
	return b.String()
}

func lookbackDays(days int) (string, error) {
	if days <= 0 {
		return "", fmt.Errorf("%w: %d days", ErrInvalidLookback, days)
	}
	return fmt.Sprintf("-%dd", days), nil
}

// stationMeasurementsFlux queries one station's history over the last N
// days, pivoted to one row per timestamp.
func stationMeasurementsFlux(bucket, stationID string, days int) (string, error) {
	lookback, err := lookbackDays(days)
	if err != nil {
		return "", err
	}
	return fluxQuery{
		bucket:        bucket,
		lookback:      lookback,
		stationID:     stationID,
		excludeFields: locationFields,
		pivotRowKey:   "_time",
		sortByTime:    true,
	}.build(), nil
}

// allStationsMeasurementsFlux queries every station's history over the
// last N days.
func allStationsMeasurementsFlux(bucket string, days int) (string, error) {
	lookback, err := lookbackDays(days)
	if err != nil {
		return "", err
	}
	return fluxQuery{
		bucket:        bucket,
		lookback:      lookback,
		excludeFields: locationFields,
		pivotRowKey:   "_time",
		sortByTime:    true,
	}.build(), nil
}

// latestMeasurementsFlux queries the most recent record per station within
// the trailing hour.
func latestMeasurementsFlux(bucket string) string {
	return fluxQuery{
		bucket:        bucket,
		lookback:      "-1h",
		excludeFields: locationFields,
		last:          true,
		pivotRowKey:   "_time",
	}.build()
}

// activeStationsFlux discovers distinct station identifiers seen within
// the trailing 24 hours.
func activeStationsFlux(bucket string) string {
	return fluxQuery{
		bucket:      bucket,
		lookback:    "-24h",
		distinctTag: tagStationID,
	}.build()
}

// stationInfoFlux fetches a single raw record for one station; its tags
// carry the static name and coordinates.
func stationInfoFlux(bucket, stationID string) string {
	return fluxQuery{
		bucket:    bucket,
		lookback:  "-24h",
		stationID: stationID,
		limit:     1,
	}.build()
}

// currentConditionsFlux queries the most recent values of the reduced
// current-conditions field set for one station.
func currentConditionsFlux(bucket, stationID string) string {
	return fluxQuery{
		bucket:        bucket,
		lookback:      "-1h",
		stationID:     stationID,
		includeFields: currentFields,
		last:          true,
		pivotRowKey:   "_time",
	}.build()
}

// fieldMeansFlux queries store-side means of the averaged field set over
// the last N days, pivoted on the station tag into a single row.
func fieldMeansFlux(bucket, stationID string, days int) (string, error) {
	lookback, err := lookbackDays(days)
	if err != nil {
		return "", err
	}
	return fluxQuery{
		bucket:        bucket,
		lookback:      lookback,
		stationID:     stationID,
		includeFields: meanFields,
		mean:          true,
		pivotRowKey:   tagStationID,
	}.build(), nil
}
