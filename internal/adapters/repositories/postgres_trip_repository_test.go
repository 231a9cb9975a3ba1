package repositories

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
	"trip-log-service/internal/platform/db"
	"trip-log-service/internal/ports"

	"github.com/google/uuid"
)

// Runs against a real Postgres when TEST_DATABASE_URL is set.
func openTestDB(t *testing.T) *PostgresTripRepository {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, url, db.Pool{MaxConns: 2})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := InitSchema(ctx, conn); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}
	return NewPostgresTripRepository(conn)
}

func TestPostgresTripRepositoryRoundTrip(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	id := uuid.NewString()
	trip := sampleTrip(id, time.Now().UTC().Truncate(time.Microsecond))
	if err := repo.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}
	t.Cleanup(func() { _, _ = repo.DB.Exec(`DELETE FROM trips WHERE id = $1`, id) })

	got, err := repo.GetTrip(ctx, id)
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}

	if got.PickupLocation != trip.PickupLocation || got.CurrentCycleUsed != trip.CurrentCycleUsed {
		t.Fatalf("trip fields mismatch: got %+v", got)
	}
	if len(got.Logs) != len(trip.Logs) {
		t.Fatalf("logs = %d, want %d", len(got.Logs), len(trip.Logs))
	}
	for i := range trip.Logs {
		w, g := trip.Logs[i], got.Logs[i]
		if g.Status != w.Status || !g.Start.Equal(w.Start) || !g.End.Equal(w.End) || g.Remarks != w.Remarks {
			t.Errorf("log %d = %+v, want %+v", i, g, w)
		}
	}
	if got.Route == nil || got.Route.DistanceMeters != 88513 || len(got.Route.Geometry) != 2 {
		t.Fatalf("route = %+v", got.Route)
	}
	if !got.Summary.EndAt.Equal(trip.Summary.EndAt) || got.Summary.Stops != 2 {
		t.Fatalf("summary = %+v", got.Summary)
	}

	list, err := repo.ListTrips(ctx, 100)
	if err != nil {
		t.Fatalf("ListTrips: %v", err)
	}
	found := false
	for _, tr := range list {
		if tr.ID == id {
			found = true
		}
	}
	if !found {
		t.Fatalf("ListTrips did not include %s", id)
	}
}

func TestPostgresTripRepositoryNotFound(t *testing.T) {
	repo := openTestDB(t)

	if _, err := repo.GetTrip(context.Background(), uuid.NewString()); !errors.Is(err, ports.ErrTripNotFound) {
		t.Fatalf("err = %v, want ErrTripNotFound", err)
	}
}
