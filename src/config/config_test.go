package config

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		floors, elevs int
		wantFloors    int
		wantElevs     int
	}{
		{"below bounds", 1, 1, 2, 2},
		{"above bounds", 30, 20, 24, 12},
		{"in range", 5, 3, 5, 3},
		{"negative", -4, -1, 2, 2},
		{"at bounds", 24, 12, 24, 12},
	}
	for _, tt := range tests {
		if got := ClampFloors(tt.floors); got != tt.wantFloors {
			t.Errorf("%s: ClampFloors(%d) = %d, want %d", tt.name, tt.floors, got, tt.wantFloors)
		}
		if got := ClampElevators(tt.elevs); got != tt.wantElevs {
			t.Errorf("%s: ClampElevators(%d) = %d, want %d", tt.name, tt.elevs, got, tt.wantElevs)
		}
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"7", 7},
		{" 7 ", 7},
		{"7 floors", 7},
		{"", MinFloors},
		{"abc", MinFloors},
		{"-3", MinFloors},
		{"99", MaxFloors},
		{"+12", 12},
		{"99999999999999999999", MaxFloors},
		{"+99999999999999999999 floors", MaxFloors},
		{"-99999999999999999999", MinFloors},
	}
	for _, tt := range tests {
		if got := ParseCount(tt.input, MinFloors, MaxFloors); got != tt.want {
			t.Errorf("ParseCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseCountOverflowClampsElevators(t *testing.T) {
	if got := ParseCount("99999999999999999999", MinElevators, MaxElevators); got != MaxElevators {
		t.Errorf("ParseCount overflow = %d, want %d", got, MaxElevators)
	}
	if got := ParseCount("-99999999999999999999", MinElevators, MaxElevators); got != MinElevators {
		t.Errorf("ParseCount negative overflow = %d, want %d", got, MinElevators)
	}
}
