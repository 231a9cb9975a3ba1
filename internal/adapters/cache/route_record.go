package cache

import "trip-log-service/internal/domain"

// routeRecord is the serialized form of a cached route.
type routeRecord struct {
	DistanceMeters  int          `json:"distance_meters"`
	DurationSeconds int          `json:"duration_seconds"`
	Geometry        [][2]float64 `json:"geometry,omitempty"`
}

func toRecord(r domain.Route) routeRecord {
	return routeRecord{
		DistanceMeters:  r.DistanceMeters,
		DurationSeconds: r.DurationSeconds,
		Geometry:        r.Geometry,
	}
}

func (r routeRecord) route() domain.Route {
	return domain.Route{
		DistanceMeters:  r.DistanceMeters,
		DurationSeconds: r.DurationSeconds,
		Geometry:        r.Geometry,
	}
}
