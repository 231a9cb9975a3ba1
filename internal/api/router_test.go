package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"trip-log-service/internal/adapters/distance"
	"trip-log-service/internal/adapters/repositories"
	"trip-log-service/internal/api/dto"
	"trip-log-service/internal/domain"
)

type failingProvider struct{}

func (failingProvider) GetRoute(ctx context.Context, waypoints []string) (domain.Route, error) {
	return domain.Route{}, errors.New("upstream timeout")
}

func newTestRouter(t *testing.T) (http.Handler, *repositories.MemoryTripRepository) {
	t.Helper()
	repo := repositories.NewMemoryTripRepository()
	provider := distance.NewMockRouteProvider([]distance.MockRoute{
		{Waypoints: []string{"Golden, CO", "Denver, CO", "Boulder, CO"}, Meters: 885137, Seconds: 32400},
	})
	return NewRouter(Deps{Repo: repo, Provider: provider, AverageSpeedMPH: 55}), repo
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr *bytes.Reader
	if body == "" {
		rdr = bytes.NewReader(nil)
	} else {
		rdr = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, target, rdr)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body=%q)", err, rec.Body.String())
	}
	return v
}

const planBody = `{
	"current_location": "Golden, CO",
	"pickup_location": "Denver, CO",
	"dropoff_location": "Boulder, CO",
	"current_cycle_used": 0,
	"start_at": "2024-03-04T08:00:00Z"
}`

func TestHealth(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a generated X-Request-ID header")
	}
}

func TestHealthReportsStoreFailure(t *testing.T) {
	h := NewRouter(Deps{
		Repo:        repositories.NewMemoryTripRepository(),
		HealthCheck: func(ctx context.Context) error { return errors.New("db down") },
	})

	rec := do(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestRequestIDIsPropagated(t *testing.T) {
	h, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("X-Request-ID = %q, want abc-123", got)
	}
}

func TestCreateAndFetchTrip(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/trips", planBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body=%s)", rec.Code, rec.Body.String())
	}
	created := decode[dto.TripResponse](t, rec)

	if rec.Header().Get("Location") != "/trips/"+created.ID {
		t.Fatalf("Location = %q", rec.Header().Get("Location"))
	}
	if created.Route == nil || created.Route.DistanceMeters != 885137 {
		t.Fatalf("route = %+v", created.Route)
	}

	first := created.Logs[0]
	if first.Status != string(domain.StatusOnDutyNotDriving) || first.Remarks != "Pickup at Denver, CO" {
		t.Fatalf("first entry = %+v", first)
	}
	if first.Date != "2024-03-04" || first.StartTime != "08:00" || first.EndTime != "09:00" {
		t.Fatalf("first entry times = %s %s-%s", first.Date, first.StartTime, first.EndTime)
	}

	last := created.Logs[len(created.Logs)-1]
	if last.Remarks != "Dropoff at Boulder, CO" || last.EndTime != "20:30" {
		t.Fatalf("last entry = %+v", last)
	}
	if created.Summary.RestBreaks != 1 {
		t.Fatalf("rest breaks = %d, want 1", created.Summary.RestBreaks)
	}
	if len(created.DailyLogs) != 1 || created.DailyLogs[0].Hours[string(domain.StatusDriving)] != 10 {
		t.Fatalf("daily logs = %+v", created.DailyLogs)
	}

	rec = do(t, h, http.MethodGet, "/trips/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}
	fetched := decode[dto.TripResponse](t, rec)
	if len(fetched.Logs) != len(created.Logs) {
		t.Fatalf("fetched logs = %d, want %d", len(fetched.Logs), len(created.Logs))
	}

	rec = do(t, h, http.MethodGet, "/trips?limit=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	list := decode[dto.ListTripsResponse](t, rec)
	if len(list.Trips) != 1 || list.Trips[0].ID != created.ID {
		t.Fatalf("list = %+v", list)
	}
	if list.Trips[0].Logs != nil {
		t.Fatal("list entries should not carry logs")
	}
}

func TestTripErrors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"unknown field", http.MethodPost, "/trips", `{"pickup": "x"}`, http.StatusBadRequest},
		{"two objects", http.MethodPost, "/trips", planBody + planBody, http.StatusBadRequest},
		{"missing cycle", http.MethodPost, "/trips", `{"current_location":"a","pickup_location":"b","dropoff_location":"c"}`, http.StatusBadRequest},
		{"cycle at limit", http.MethodPost, "/trips", strings.Replace(planBody, `"current_cycle_used": 0`, `"current_cycle_used": 70`, 1), http.StatusBadRequest},
		{"blank location", http.MethodPost, "/trips", strings.Replace(planBody, `"Golden, CO"`, `"  "`, 1), http.StatusBadRequest},
		{"unknown route", http.MethodPost, "/trips", strings.Replace(planBody, "Boulder", "Atlantis", 1), http.StatusUnprocessableEntity},
		{"missing trip", http.MethodGet, "/trips/nope", "", http.StatusNotFound},
		{"bad method", http.MethodPut, "/trips", "", http.StatusMethodNotAllowed},
		{"bad limit", http.MethodGet, "/trips?limit=abc", "", http.StatusBadRequest},
		{"zero limit", http.MethodGet, "/trips?limit=0", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestRouter(t)
			rec := do(t, h, tt.method, tt.target, tt.body)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (body=%s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestCreateTripRoutingFailure(t *testing.T) {
	h := NewRouter(Deps{
		Repo:     repositories.NewMemoryTripRepository(),
		Provider: failingProvider{},
	})

	rec := do(t, h, http.MethodPost, "/trips", planBody)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "upstream timeout") {
		t.Fatal("internal error detail leaked to client")
	}
}

func TestGenerateSchedule(t *testing.T) {
	h, repo := newTestRouter(t)

	body := `{
		"current_location": "Chicago, IL",
		"pickup_location": "Chicago, IL",
		"dropoff_location": "Chicago, IL",
		"total_distance_miles": 0,
		"total_driving_hours": 0,
		"current_cycle_used": 10,
		"start_at": "2024-03-04T23:30:00Z"
	}`
	rec := do(t, h, http.MethodPost, "/schedules", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%s)", rec.Code, rec.Body.String())
	}
	res := decode[dto.ScheduleResponse](t, rec)

	if len(res.Logs) != 2 {
		t.Fatalf("logs = %d, want pickup and dropoff", len(res.Logs))
	}
	if len(res.DailyLogs) != 2 {
		t.Fatalf("daily logs = %d, want 2 (schedule crosses midnight)", len(res.DailyLogs))
	}
	if got := res.DailyLogs[0].Hours[string(domain.StatusOnDutyNotDriving)]; got != 0.5 {
		t.Fatalf("first day on-duty hours = %v, want 0.5", got)
	}

	trips, _ := repo.ListTrips(context.Background(), 10)
	if len(trips) != 0 {
		t.Fatal("schedules must not be persisted")
	}
}

func TestGenerateScheduleRejectsInvalidInput(t *testing.T) {
	h, _ := newTestRouter(t)

	for _, body := range []string{
		`{"total_driving_hours": -1}`,
		`{"total_distance_miles": 1e12, "total_driving_hours": 5}`,
	} {
		rec := do(t, h, http.MethodPost, "/schedules", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", body, rec.Code)
		}
	}
}
