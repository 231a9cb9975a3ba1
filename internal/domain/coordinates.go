package domain

import "fmt"

// Geographic position of a geocoded waypoint.
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat], the order routing APIs expect.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Validate rejects positions outside WGS84 bounds and the (0, 0) point
// geocoders return for unresolved input.
func (c Coordinates) Validate() error {
	switch {
	case c.Lat < -90 || c.Lat > 90:
		return fmt.Errorf("latitude %v out of range", c.Lat)
	case c.Lon < -180 || c.Lon > 180:
		return fmt.Errorf("longitude %v out of range", c.Lon)
	case c.Lat == 0 && c.Lon == 0:
		return fmt.Errorf("null island coordinate")
	}
	return nil
}
