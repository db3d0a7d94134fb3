package db

import (
	"errors"
	"strings"
	"testing"
)

func TestStationMeasurementsFlux(t *testing.T) {
	flux, err := stationMeasurementsFlux("weather", "davis-01", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantParts := []string{
		`from(bucket: "weather")`,
		`range(start: -3d)`,
		`r["station_id"] == "davis-01"`,
		`r["_field"] != "latitude"`,
		`r["_field"] != "longitude"`,
		`r["_field"] != "elevation"`,
		`pivot(rowKey:["_time"]`,
		`sort(columns: ["_time"], desc: false)`,
	}
	for _, part := range wantParts {
		if !strings.Contains(flux, part) {
			t.Errorf("query missing %q:\n%s", part, flux)
		}
	}
}

func TestAllStationsMeasurementsFlux(t *testing.T) {
	flux, err := allStationsMeasurementsFlux("weather", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(flux, "station_id\"] ==") {
		t.Errorf("all-stations query must not filter on station_id:\n%s", flux)
	}
	if !strings.Contains(flux, "range(start: -7d)") {
		t.Errorf("query missing 7 day range:\n%s", flux)
	}
	if !strings.Contains(flux, `pivot(rowKey:["_time"]`) {
		t.Errorf("query missing pivot:\n%s", flux)
	}
}

func TestNonPositiveLookbackRejected(t *testing.T) {
	for _, days := range []int{0, -1, -30} {
		if _, err := stationMeasurementsFlux("weather", "davis-01", days); !errors.Is(err, ErrInvalidLookback) {
			t.Errorf("stationMeasurementsFlux(days=%d) error = %v, want ErrInvalidLookback", days, err)
		}
		if _, err := allStationsMeasurementsFlux("weather", days); !errors.Is(err, ErrInvalidLookback) {
			t.Errorf("allStationsMeasurementsFlux(days=%d) error = %v, want ErrInvalidLookback", days, err)
		}
		if _, err := fieldMeansFlux("weather", "davis-01", days); !errors.Is(err, ErrInvalidLookback) {
			t.Errorf("fieldMeansFlux(days=%d) error = %v, want ErrInvalidLookback", days, err)
		}
	}
}

func TestLatestMeasurementsFlux(t *testing.T) {
	flux := latestMeasurementsFlux("weather")

	wantParts := []string{
		`range(start: -1h)`,
		"|> last()",
		`pivot(rowKey:["_time"]`,
	}
	for _, part := range wantParts {
		if !strings.Contains(flux, part) {
			t.Errorf("query missing %q:\n%s", part, flux)
		}
	}
	if strings.Contains(flux, "sort(") {
		t.Errorf("latest query should not sort:\n%s", flux)
	}
}

func TestActiveStationsFlux(t *testing.T) {
	flux := activeStationsFlux("weather")

	wantParts := []string{
		`range(start: -24h)`,
		"exists r.station_id",
		`keep(columns: ["station_id"])`,
		`distinct(column: "station_id")`,
	}
	for _, part := range wantParts {
		if !strings.Contains(flux, part) {
			t.Errorf("query missing %q:\n%s", part, flux)
		}
	}
	if strings.Contains(flux, "pivot(") {
		t.Errorf("discovery query should not pivot:\n%s", flux)
	}
}

func TestStationInfoFlux(t *testing.T) {
	flux := stationInfoFlux("weather", "davis-01")

	wantParts := []string{
		`range(start: -24h)`,
		`r["station_id"] == "davis-01"`,
		"limit(n: 1)",
	}
	for _, part := range wantParts {
		if !strings.Contains(flux, part) {
			t.Errorf("query missing %q:\n%s", part, flux)
		}
	}
	if strings.Contains(flux, "pivot(") {
		t.Errorf("info query reads raw rows, should not pivot:\n%s", flux)
	}
}

func TestCurrentConditionsFlux(t *testing.T) {
	flux := currentConditionsFlux("weather", "davis-01")

	wantParts := []string{
		`range(start: -1h)`,
		`r["station_id"] == "davis-01"`,
		`r["_field"] == "temp"`,
		`r["_field"] == "rainfall_month_mm"`,
		"|> last()",
		`pivot(rowKey:["_time"]`,
	}
	for _, part := range wantParts {
		if !strings.Contains(flux, part) {
			t.Errorf("query missing %q:\n%s", part, flux)
		}
	}
}

func TestFieldMeansFlux(t *testing.T) {
	flux, err := fieldMeansFlux("weather", "davis-01", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantParts := []string{
		`range(start: -7d)`,
		`r["_field"] == "wet_bulb"`,
		"|> mean()",
		`pivot(rowKey:["station_id"]`,
	}
	for _, part := range wantParts {
		if !strings.Contains(flux, part) {
			t.Errorf("query missing %q:\n%s", part, flux)
		}
	}
}
