package db

import "log/slog"

// stationList collects distinct station identifiers from discovery rows,
// order-preserving by first appearance.
type stationList struct {
	seen map[string]bool
	ids  []string
}

func newStationList() *stationList {
	return &stationList{seen: make(map[string]bool)}
}

func (l *stationList) Add(r Row) {
	id, ok := r.ValueByKey(tagStationID).(string)
	if !ok || id == "" || l.seen[id] {
		return
	}
	l.seen[id] = true
	l.ids = append(l.ids, id)
}

// IDs returns the collected identifiers; empty slice when the window held
// no data.
func (l *stationList) IDs() []string {
	if l.ids == nil {
		return []string{}
	}
	return l.ids
}

// stationInfoFromRow extracts static station attributes from a single raw
// record. Coordinates arrive as native numbers or numeric strings; a field
// that fails to parse is omitted, logged, and never fails the lookup.
func stationInfoFromRow(stationID string, r Row, log *slog.Logger) StationInfo {
	info := StationInfo{StationID: stationID}

	if name, ok := r.ValueByKey(fieldStationName).(string); ok && name != "" {
		info.StationName = &name
	}

	coords := []struct {
		field string
		dst   **float64
	}{
		{fieldLatitude, &info.Latitude},
		{fieldLongitude, &info.Longitude},
		{fieldElevation, &info.Elevation},
	}
	for _, c := range coords {
		v := r.ValueByKey(c.field)
		if v == nil {
			continue
		}
		f, ok := coerceNumeric(v)
		if !ok {
			log.Warn("cannot parse station field", "stationId", stationID, "field", c.field, "value", v)
			continue
		}
		*c.dst = &f
	}
	return info
}
