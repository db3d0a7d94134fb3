package db

import "testing"

func TestToFloat(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
		ok    bool
	}{
		{"float64", 21.5, 21.5, true},
		{"float32", float32(2.5), 2.5, true},
		{"int", 7, 7.0, true},
		{"int64", int64(-3), -3.0, true},
		{"uint64", uint64(12), 12.0, true},
		{"numeric string rejected", "19.43", 0, false},
		{"string", "abc", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toFloat(tt.value)
			if ok != tt.ok {
				t.Fatalf("toFloat(%v) ok = %v, want %v", tt.value, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("toFloat(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestCoerceNumeric(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
		ok    bool
	}{
		{"float64", 19.43, 19.43, true},
		{"int64", int64(420), 420.0, true},
		{"numeric string", "19.43", 19.43, true},
		{"negative string", "-75.2", -75.2, true},
		{"integer string", "1495", 1495.0, true},
		{"garbage string", "abc", 0, false},
		{"empty string", "", 0, false},
		{"nil", nil, 0, false},
		{"bool", false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := coerceNumeric(tt.value)
			if ok != tt.ok {
				t.Fatalf("coerceNumeric(%v) ok = %v, want %v", tt.value, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("coerceNumeric(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
