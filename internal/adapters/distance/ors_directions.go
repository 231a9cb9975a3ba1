package distance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"trip-log-service/internal/domain"
	"trip-log-service/internal/platform/obs"
	"trip-log-service/internal/ports"
)

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Features []struct {
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// fetchDirections requests a route through points in order
// (/v2/directions/{profile}/geojson).
func (o *ORSRouteProvider) fetchDirections(
	ctx context.Context,
	points []domain.Coordinates,
) (_ domain.Route, err error) {
	defer obs.Time(ctx, "ors.fetchDirections")(&err)

	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, p.CoordsToList())
	}

	body, err := json.Marshal(directionsRequest{Coordinates: coords})
	if err != nil {
		return domain.Route{}, fmt.Errorf("marshal directions request: %w", err)
	}

	endpoint := o.baseURL + "/v2/directions/" + o.profile + "/geojson"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	})
	if err != nil {
		// ORS answers 404 when no routable point lies near a waypoint.
		var he *httpStatusError
		if errors.As(err, &he) && he.Code == http.StatusNotFound {
			return domain.Route{}, fmt.Errorf("%w: %v", ports.ErrRouteNotFound, err)
		}
		return domain.Route{}, fmt.Errorf("execute directions request: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Route{}, fmt.Errorf("decode directions response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.Route{}, ports.ErrRouteNotFound
	}

	f := decoded.Features[0]
	geometry := make([][2]float64, 0, len(f.Geometry.Coordinates))
	for i, c := range f.Geometry.Coordinates {
		if len(c) < 2 {
			return domain.Route{}, fmt.Errorf("invalid geometry coordinate at %d", i)
		}
		geometry = append(geometry, [2]float64{c[0], c[1]})
	}

	return domain.Route{
		DistanceMeters:  int(f.Properties.Summary.Distance + 0.5),
		DurationSeconds: int(f.Properties.Summary.Duration + 0.5),
		Geometry:        geometry,
	}, nil
}
