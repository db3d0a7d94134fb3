package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"weather-backend/db"
)

// averageWindowDays is the lookback for the store-side means on the
// current-conditions response.
const averageWindowDays = 7

// Store is the measurement store surface the service consumes.
type Store interface {
	ActiveStations(ctx context.Context) ([]string, error)
	StationBasicInfo(ctx context.Context, stationID string) (db.StationInfo, error)
	StationMeasurements(ctx context.Context, stationID string, days int) ([]db.Measurement, error)
	AllStationsMeasurements(ctx context.Context, days int) ([]db.Measurement, error)
	LatestMeasurements(ctx context.Context) ([]db.Measurement, error)
	CurrentSnapshot(ctx context.Context, stationID string) (*db.Measurement, error)
	FieldMeans(ctx context.Context, stationID string, days int) (map[string]float64, error)
}

// StationData bundles one station's measurement history with header fields
// taken from its most recent measurement.
type StationData struct {
	StationID         string           `json:"stationId"`
	StationName       *string          `json:"stationName,omitempty"`
	Latitude          *float64         `json:"latitude,omitempty"`
	Longitude         *float64         `json:"longitude,omitempty"`
	TotalMeasurements int              `json:"totalMeasurements"`
	Measurements      []db.Measurement `json:"measurements"`
}

// CurrentConditions is the simplified per-station snapshot: latest values
// of the reduced field set plus 7-day averages.
type CurrentConditions struct {
	StationID   string    `json:"stationId"`
	StationName *string   `json:"stationName,omitempty"`
	Timestamp   time.Time `json:"timestamp"`

	Temp            *float64 `json:"temp,omitempty"`
	WindChill       *float64 `json:"windChill,omitempty"`
	DewPoint        *float64 `json:"dewPoint,omitempty"`
	WetBulb         *float64 `json:"wetBulb,omitempty"`
	Hum             *float64 `json:"hum,omitempty"`
	WindSpeedLast   *float64 `json:"windSpeedLast,omitempty"`
	WindDirLast     *float64 `json:"windDirLast,omitempty"`
	RainfallDayMm   *float64 `json:"rainfallDayMm,omitempty"`
	RainfallMonthMm *float64 `json:"rainfallMonthMm,omitempty"`

	TempAvg7Days      *float64 `json:"tempAvg7Days,omitempty"`
	WindChillAvg7Days *float64 `json:"windChillAvg7Days,omitempty"`
	DewPointAvg7Days  *float64 `json:"dewPointAvg7Days,omitempty"`
	WetBulbAvg7Days   *float64 `json:"wetBulbAvg7Days,omitempty"`
	HumAvg7Days       *float64 `json:"humAvg7Days,omitempty"`
}

// Service implements the read-only query operations over the store.
// Stateless; every call builds its result from scratch.
type Service struct {
	store       Store
	defaultDays int
	log         *slog.Logger
}

// NewService creates a Service. defaultDays is used when a caller omits
// the lookback.
func NewService(store Store, defaultDays int, log *slog.Logger) *Service {
	return &Service{store: store, defaultDays: defaultDays, log: log}
}

// DefaultDays returns the configured default lookback.
func (s *Service) DefaultDays() int { return s.defaultDays }

// Stations lists all active stations with their resolved basic info.
func (s *Service) Stations(ctx context.Context) ([]db.StationInfo, error) {
	s.log.Info("fetching all active stations")

	ids, err := s.store.ActiveStations(ctx)
	if err != nil {
		return nil, err
	}

	stations := make([]db.StationInfo, 0, len(ids))
	for _, id := range ids {
		info, err := s.store.StationBasicInfo(ctx, id)
		if err != nil {
			return nil, err
		}
		info.Active = true
		stations = append(stations, info)
	}
	return stations, nil
}

// StationData returns one station's history over the last N days. A
// non-positive day count or an unknown station yields the zero-count
// result carrying only the station identifier, never an error.
func (s *Service) StationData(ctx context.Context, stationID string, days int) (StationData, error) {
	if days <= 0 {
		s.log.Warn("non-positive day count", "stationId", stationID, "days", days)
		return summarize(stationID, nil), nil
	}
	s.log.Info("fetching station data", "stationId", stationID, "days", days)

	ms, err := s.store.StationMeasurements(ctx, stationID, days)
	if err != nil {
		return StationData{}, err
	}
	if len(ms) == 0 {
		s.log.Warn("no measurements found", "stationId", stationID)
	}
	return summarize(stationID, ms), nil
}

// AllStationsData returns every station's history over the last N days,
// keyed by station identifier. Header fields come from each station's
// latest measurement.
func (s *Service) AllStationsData(ctx context.Context, days int) (map[string]StationData, error) {
	if days <= 0 {
		s.log.Warn("non-positive day count", "days", days)
		return map[string]StationData{}, nil
	}
	s.log.Info("fetching data for all stations", "days", days)

	ms, err := s.store.AllStationsMeasurements(ctx, days)
	if err != nil {
		return nil, err
	}

	out := make(map[string]StationData)
	for stationID, group := range groupByStation(ms) {
		out[stationID] = summarize(stationID, group)
	}
	s.log.Info("retrieved data", "stations", len(out))
	return out, nil
}

// Latest returns the most recent measurement per station within the
// trailing hour, one entry per station.
func (s *Service) Latest(ctx context.Context) ([]db.Measurement, error) {
	s.log.Info("fetching latest measurements")

	ms, err := s.store.LatestMeasurements(ctx)
	if err != nil {
		return nil, err
	}
	return latestPerStation(ms), nil
}

// CurrentConditions returns the simplified snapshot for one station, or
// nil when the station reported nothing within the trailing hour.
func (s *Service) CurrentConditions(ctx context.Context, stationID string) (*CurrentConditions, error) {
	s.log.Info("fetching current conditions", "stationId", stationID)

	snap, err := s.store.CurrentSnapshot(ctx, stationID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, nil
	}

	cc := &CurrentConditions{
		StationID:       snap.StationID,
		StationName:     snap.StationName,
		Timestamp:       snap.Timestamp,
		Temp:            snap.Temp,
		WindChill:       snap.WindChill,
		DewPoint:        snap.DewPoint,
		WetBulb:         snap.WetBulb,
		Hum:             snap.Hum,
		WindSpeedLast:   snap.WindSpeedLast,
		WindDirLast:     snap.WindDirLast,
		RainfallDayMm:   snap.RainfallDayMm,
		RainfallMonthMm: snap.RainfallMonthMm,
	}

	means, err := s.store.FieldMeans(ctx, stationID, averageWindowDays)
	if err != nil {
		return nil, err
	}
	averages := []struct {
		field string
		dst   **float64
	}{
		{"temp", &cc.TempAvg7Days},
		{"wind_chill", &cc.WindChillAvg7Days},
		{"dew_point", &cc.DewPointAvg7Days},
		{"wet_bulb", &cc.WetBulbAvg7Days},
		{"hum", &cc.HumAvg7Days},
	}
	for _, a := range averages {
		if v, ok := means[a.field]; ok {
			mean := v
			*a.dst = &mean
		}
	}
	return cc, nil
}

// Statistics computes the per-field summary for one station over the last
// N days. A non-positive day count or an empty window returns nil, the
// "no data" signal for this endpoint.
func (s *Service) Statistics(ctx context.Context, stationID string, days int) (*StationStatistics, error) {
	if days <= 0 {
		s.log.Warn("non-positive day count", "stationId", stationID, "days", days)
		return nil, nil
	}
	s.log.Info("calculating statistics", "stationId", stationID, "days", days)

	ms, err := s.store.StationMeasurements(ctx, stationID, days)
	if err != nil {
		return nil, err
	}
	if len(ms) == 0 {
		return nil, nil
	}

	return &StationStatistics{
		StationID:         stationID,
		TotalMeasurements: len(ms),
		Period:            fmt.Sprintf("%d days", days),
		Fields:            computeFieldStats(ms, defaultStatFields),
		MaxRainfallDayMm:  maxDailyRainfall(ms),
	}, nil
}

// summarize builds the combined response for one station. Header fields
// come from the last measurement by arrival order; an empty input yields
// the canonical zero-count "no data" result.
func summarize(stationID string, ms []db.Measurement) StationData {
	if len(ms) == 0 {
		return StationData{StationID: stationID, Measurements: []db.Measurement{}}
	}
	last := ms[len(ms)-1]
	return StationData{
		StationID:         stationID,
		StationName:       last.StationName,
		Latitude:          last.Latitude,
		Longitude:         last.Longitude,
		TotalMeasurements: len(ms),
		Measurements:      ms,
	}
}
