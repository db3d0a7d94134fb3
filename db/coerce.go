package db

import "strconv"

// toFloat converts a raw store value to float64 when its runtime type is
// numeric. Strings are not parsed here; measurement fields only accept
// genuinely numeric values.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// coerceNumeric converts a raw store value to float64, additionally
// accepting numeric strings. Tag values always arrive as strings, so
// station metadata read through here.
func coerceNumeric(v any) (float64, bool) {
	if f, ok := toFloat(v); ok {
		return f, true
	}
	if s, ok := v.(string); ok {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
