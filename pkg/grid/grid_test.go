package grid

import "testing"

func TestSnap(t *testing.T) {
	tests := []struct {
		name        string
		value, unit float64
		want        float64
	}{
		{"zero", 0, 10, 0},
		{"rounds down", 14, 10, 10},
		{"half rounds up", 15, 10, 20},
		{"uneven unit", 25, 8, 24},
		{"negative half", -15, 10, -10},
		{"no unit", 13, 0, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Snap(tt.value, tt.unit); got != tt.want {
				t.Errorf("Snap(%v, %v) = %v, want %v", tt.value, tt.unit, got, tt.want)
			}
		})
	}
}

func TestUnit(t *testing.T) {
	if got := Unit(400, 4); got != 100 {
		t.Errorf("Unit(400, 4) = %v, want 100", got)
	}
	if got := Unit(400, 0); got != 0 {
		t.Errorf("Unit(400, 0) = %v, want 0", got)
	}
}
