package db

import (
	"context"
	"fmt"
	"log/slog"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

// Store wraps read access to the measurement bucket. The underlying client
// is thread safe and shared by all requests; queries are synchronous and
// store failures propagate to the caller unrecovered.
type Store struct {
	client influxdb2.Client
	query  api.QueryAPI
	bucket string
	log    *slog.Logger
}

// New creates a Store for the given server, org and bucket.
func New(url, token, org, bucket string, log *slog.Logger) *Store {
	client := influxdb2.NewClient(url, token)
	return &Store{
		client: client,
		query:  client.QueryAPI(org),
		bucket: bucket,
		log:    log,
	}
}

// Close releases the client resources.
func (s *Store) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// queryMeasurements executes a Flux query and assembles the resulting rows
// into measurements.
func (s *Store) queryMeasurements(ctx context.Context, flux string) ([]Measurement, error) {
	res, err := s.query.Query(ctx, flux)
	if err != nil {
		return nil, fmt.Errorf("query measurements: %w", err)
	}

	b := newMeasurementBuilder()
	for res.Next() {
		b.Add(res.Record())
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("read measurements: %w", err)
	}

	if n := b.Dropped(); n > 0 {
		s.log.Warn("dropped malformed rows", "count", n)
	}
	ms := b.Measurements()
	s.log.Debug("retrieved measurements", "count", len(ms))
	return ms, nil
}

// StationMeasurements returns one station's history over the last N days.
func (s *Store) StationMeasurements(ctx context.Context, stationID string, days int) ([]Measurement, error) {
	flux, err := stationMeasurementsFlux(s.bucket, stationID, days)
	if err != nil {
		return nil, err
	}
	return s.queryMeasurements(ctx, flux)
}

// AllStationsMeasurements returns every station's history over the last N
// days.
func (s *Store) AllStationsMeasurements(ctx context.Context, days int) ([]Measurement, error) {
	flux, err := allStationsMeasurementsFlux(s.bucket, days)
	if err != nil {
		return nil, err
	}
	return s.queryMeasurements(ctx, flux)
}

// LatestMeasurements returns the most recent record per station within the
// trailing hour.
func (s *Store) LatestMeasurements(ctx context.Context) ([]Measurement, error) {
	return s.queryMeasurements(ctx, latestMeasurementsFlux(s.bucket))
}

// ActiveStations returns the distinct station identifiers seen within the
// trailing 24 hours, in order of first appearance. An empty bucket yields
// an empty slice, not an error.
func (s *Store) ActiveStations(ctx context.Context) ([]string, error) {
	res, err := s.query.Query(ctx, activeStationsFlux(s.bucket))
	if err != nil {
		return nil, fmt.Errorf("query active stations: %w", err)
	}

	list := newStationList()
	for res.Next() {
		list.Add(res.Record())
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("read active stations: %w", err)
	}

	ids := list.IDs()
	s.log.Debug("found active stations", "count", len(ids))
	return ids, nil
}

// StationBasicInfo resolves a station's static attributes from its most
// recent raw record. When the window holds no row the result carries only
// the station identifier; the caller decides whether that is "not found".
func (s *Store) StationBasicInfo(ctx context.Context, stationID string) (StationInfo, error) {
	res, err := s.query.Query(ctx, stationInfoFlux(s.bucket, stationID))
	if err != nil {
		return StationInfo{}, fmt.Errorf("query station info: %w", err)
	}

	info := StationInfo{StationID: stationID}
	first := true
	for res.Next() {
		// Only the first record matters; further rows repeat the same tags.
		if first {
			info = stationInfoFromRow(stationID, res.Record(), s.log)
			first = false
		}
	}
	if err := res.Err(); err != nil {
		return StationInfo{}, fmt.Errorf("read station info: %w", err)
	}
	return info, nil
}

// CurrentSnapshot returns the latest reduced-field measurement for one
// station, or nil when the trailing hour holds no data.
func (s *Store) CurrentSnapshot(ctx context.Context, stationID string) (*Measurement, error) {
	ms, err := s.queryMeasurements(ctx, currentConditionsFlux(s.bucket, stationID))
	if err != nil {
		return nil, err
	}
	if len(ms) == 0 {
		return nil, nil
	}
	// Measurements are sorted ascending; the snapshot is the newest one.
	latest := ms[len(ms)-1]
	return &latest, nil
}

// FieldMeans returns store-side means of the averaged field set over the
// last N days, keyed by field name. Fields with no data are absent.
func (s *Store) FieldMeans(ctx context.Context, stationID string, days int) (map[string]float64, error) {
	flux, err := fieldMeansFlux(s.bucket, stationID, days)
	if err != nil {
		return nil, err
	}

	res, err := s.query.Query(ctx, flux)
	if err != nil {
		return nil, fmt.Errorf("query field means: %w", err)
	}

	means := make(map[string]float64, len(meanFields))
	for res.Next() {
		for _, field := range meanFields {
			if v, ok := coerceNumeric(res.Record().ValueByKey(field)); ok {
				means[field] = v
			}
		}
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("read field means: %w", err)
	}
	return means, nil
}
