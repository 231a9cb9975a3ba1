package repositories

import (
	"context"
	"errors"
	"slices"
	"sync"
	"trip-log-service/internal/domain"
	"trip-log-service/internal/ports"
)

// In-memory implementation of the TripRepository port, used when no
// database is configured. Safe for concurrent use.
type MemoryTripRepository struct {
	mu    sync.RWMutex
	trips map[string]*domain.Trip
	order []string
}

func NewMemoryTripRepository() *MemoryTripRepository {
	return &MemoryTripRepository{trips: make(map[string]*domain.Trip)}
}

func (m *MemoryTripRepository) CreateTrip(ctx context.Context, trip *domain.Trip) error {
	if trip == nil || trip.ID == "" {
		return errors.New("create trip: trip id must be non-empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.trips[trip.ID]; ok {
		return errors.New("create trip: duplicate trip id " + trip.ID)
	}

	cp := *trip
	cp.Logs = slices.Clone(trip.Logs)
	m.trips[trip.ID] = &cp
	m.order = append(m.order, trip.ID)
	return nil
}

func (m *MemoryTripRepository) GetTrip(ctx context.Context, id string) (*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.trips[id]
	if !ok {
		return nil, ports.ErrTripNotFound
	}
	cp := *t
	cp.Logs = slices.Clone(t.Logs)
	return &cp, nil
}

func (m *MemoryTripRepository) ListTrips(ctx context.Context, limit int) ([]*domain.Trip, error) {
	if limit <= 0 {
		return []*domain.Trip{}, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Trip, 0, min(limit, len(m.order)))
	for i := len(m.order) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *m.trips[m.order[i]]
		cp.Logs = nil
		out = append(out, &cp)
	}
	return out, nil
}
