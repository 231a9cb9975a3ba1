package domain

import "testing"

func TestCoordinatesValidate(t *testing.T) {
	tests := []struct {
		name string
		c    Coordinates
		ok   bool
	}{
		{"chicago", Coordinates{Lon: -87.63, Lat: 41.88}, true},
		{"lat too high", Coordinates{Lon: 10, Lat: 91}, false},
		{"lon too low", Coordinates{Lon: -181, Lat: 10}, false},
		{"origin", Coordinates{}, false},
	}

	for _, tt := range tests {
		err := tt.c.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("%s: Validate() = %v, want ok=%v", tt.name, err, tt.ok)
		}
	}
}
