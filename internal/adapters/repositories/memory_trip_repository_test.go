package repositories

import (
	"context"
	"errors"
	"testing"
	"time"
	"trip-log-service/internal/domain"
	"trip-log-service/internal/ports"
)

func TestMemoryTripRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTripRepository()

	trip := sampleTrip("t-1", time.Date(2024, 3, 4, 7, 0, 0, 0, time.UTC))
	if err := repo.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}

	// Mutating the caller's copy must not affect the stored trip.
	trip.Logs[0].Remarks = "changed"

	got, err := repo.GetTrip(ctx, "t-1")
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	if len(got.Logs) != 3 {
		t.Fatalf("logs = %d, want 3", len(got.Logs))
	}
	if got.Logs[0].Remarks != "Pickup at Denver, CO" {
		t.Fatalf("stored log was aliased: %q", got.Logs[0].Remarks)
	}
}

func TestMemoryTripRepositoryErrors(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTripRepository()

	if _, err := repo.GetTrip(ctx, "missing"); !errors.Is(err, ports.ErrTripNotFound) {
		t.Fatalf("GetTrip(missing) err = %v, want ErrTripNotFound", err)
	}
	if err := repo.CreateTrip(ctx, &domain.Trip{}); err == nil {
		t.Fatal("expected error for empty id")
	}

	trip := sampleTrip("dup", time.Now())
	if err := repo.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}
	if err := repo.CreateTrip(ctx, trip); err == nil {
		t.Fatal("expected error for duplicate id")
	}
}

func TestMemoryTripRepositoryListTrips(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTripRepository()

	base := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		if err := repo.CreateTrip(ctx, sampleTrip(id, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("CreateTrip(%s): %v", id, err)
		}
	}

	tests := []struct {
		limit int
		want  []string
	}{
		{limit: 2, want: []string{"c", "b"}},
		{limit: 10, want: []string{"c", "b", "a"}},
		{limit: 0, want: []string{}},
		{limit: -1, want: []string{}},
	}

	for _, tt := range tests {
		got, err := repo.ListTrips(ctx, tt.limit)
		if err != nil {
			t.Fatalf("ListTrips(%d): %v", tt.limit, err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("ListTrips(%d) len = %d, want %d", tt.limit, len(got), len(tt.want))
		}
		for i, trip := range got {
			if trip.ID != tt.want[i] {
				t.Errorf("ListTrips(%d)[%d] = %s, want %s", tt.limit, i, trip.ID, tt.want[i])
			}
			if trip.Logs != nil {
				t.Errorf("ListTrips(%d)[%d] should omit logs", tt.limit, i)
			}
		}
	}
}
