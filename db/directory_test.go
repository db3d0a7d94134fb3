package db

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStationListDeduplicatesPreservingOrder(t *testing.T) {
	list := newStationList()
	ids := []any{"davis-02", "davis-01", "davis-02", nil, "", 42, "davis-03", "davis-01"}
	for _, id := range ids {
		list.Add(fakeRow{time.Time{}, map[string]any{"station_id": id}})
	}

	got := list.IDs()
	want := []string{"davis-02", "davis-01", "davis-03"}
	if len(got) != len(want) {
		t.Fatalf("IDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStationListEmpty(t *testing.T) {
	list := newStationList()
	if got := list.IDs(); got == nil || len(got) != 0 {
		t.Errorf("IDs() = %v, want empty non-nil slice", got)
	}
}

func TestStationInfoFromRow(t *testing.T) {
	row := fakeRow{t0, map[string]any{
		"station_id":   "davis-01",
		"station_name": "Cerro Gordo",
		"latitude":     "19.43",
		"longitude":    -99.13,
		"elevation":    "2240",
	}}

	info := stationInfoFromRow("davis-01", row, discardLogger())
	if info.StationID != "davis-01" {
		t.Errorf("stationId = %q, want davis-01", info.StationID)
	}
	if info.StationName == nil || *info.StationName != "Cerro Gordo" {
		t.Errorf("stationName = %v, want Cerro Gordo", info.StationName)
	}
	if info.Latitude == nil || *info.Latitude != 19.43 {
		t.Errorf("latitude = %v, want 19.43", info.Latitude)
	}
	if info.Longitude == nil || *info.Longitude != -99.13 {
		t.Errorf("longitude = %v, want -99.13", info.Longitude)
	}
	if info.Elevation == nil || *info.Elevation != 2240.0 {
		t.Errorf("elevation = %v, want 2240", info.Elevation)
	}
}

func TestStationInfoFromRowOmitsUnparseableFields(t *testing.T) {
	row := fakeRow{t0, map[string]any{
		"station_id": "davis-01",
		"latitude":   "abc",
		"longitude":  -99.13,
	}}

	info := stationInfoFromRow("davis-01", row, discardLogger())
	if info.Latitude != nil {
		t.Errorf("latitude should be omitted on parse failure, got %v", *info.Latitude)
	}
	if info.Longitude == nil || *info.Longitude != -99.13 {
		t.Errorf("longitude = %v, want -99.13", info.Longitude)
	}
	if info.StationName != nil {
		t.Errorf("stationName should be absent, got %v", *info.StationName)
	}
}
