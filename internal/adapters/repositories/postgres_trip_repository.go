package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"trip-log-service/internal/domain"
	"trip-log-service/internal/platform/obs"
	"trip-log-service/internal/ports"
)

// Postgres-backed implementation of the TripRepository port. A trip row
// owns its log entries, ordered by seq.
type PostgresTripRepository struct{ DB *sql.DB }

func NewPostgresTripRepository(db *sql.DB) *PostgresTripRepository {
	return &PostgresTripRepository{DB: db}
}

// Persist a trip and all of its log entries in one transaction.
func (p *PostgresTripRepository) CreateTrip(ctx context.Context, trip *domain.Trip) (err error) {
	defer obs.Time(ctx, "trips.CreateTrip")(&err)

	if p.DB == nil {
		return errors.New("postgres trip repository: DB is nil")
	}
	if trip == nil || trip.ID == "" {
		return errors.New("create trip: trip id must be non-empty")
	}

	summary, err := json.Marshal(toSummaryRecord(trip.Summary))
	if err != nil {
		return fmt.Errorf("create trip: encode summary: %w", err)
	}

	var route any
	if rec := toRouteRecord(trip.Route); rec != nil {
		b, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("create trip: encode route: %w", err)
		}
		route = string(b)
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("create trip: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
	INSERT INTO trips (
		id,
		current_location,
		pickup_location,
		dropoff_location,
		current_cycle_used,
		distance_miles,
		driving_hours,
		time_zone,
		summary,
		route,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`,
		trip.ID,
		trip.CurrentLocation,
		trip.PickupLocation,
		trip.DropoffLocation,
		trip.CurrentCycleUsed,
		trip.DistanceMiles,
		trip.DrivingHours,
		trip.Summary.StartAt.Location().String(),
		string(summary),
		route,
		trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create trip: insert trip id=%s: %w", trip.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO log_entries (
		trip_id,
		seq,
		log_date,
		status,
		start_at,
		end_at,
		location,
		remarks
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`)
	if err != nil {
		return fmt.Errorf("create trip: prepare log insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range trip.Logs {
		_, err := stmt.ExecContext(ctx,
			trip.ID,
			i,
			e.Date().Format(time.DateOnly),
			string(e.Status),
			e.Start,
			e.End,
			e.Location,
			e.Remarks,
		)
		if err != nil {
			return fmt.Errorf("create trip: insert log entry #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create trip: commit tx: %w", err)
	}

	return nil
}

// Load a trip with its log entries. Returns ports.ErrTripNotFound when
// no trip has the given id.
func (p *PostgresTripRepository) GetTrip(ctx context.Context, id string) (_ *domain.Trip, err error) {
	defer obs.Time(ctx, "trips.GetTrip")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres trip repository: DB is nil")
	}

	row := p.DB.QueryRowContext(ctx, tripSelect+`
	WHERE id = $1;
	`, id)

	trip, loc, err := scanTrip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get trip id=%s: %w", id, err)
	}

	rows, err := p.DB.QueryContext(ctx, `
	SELECT
		status,
		start_at,
		end_at,
		location,
		remarks
	FROM log_entries
	WHERE trip_id = $1
	ORDER BY seq;
	`, id)
	if err != nil {
		return nil, fmt.Errorf("get trip id=%s: query log_entries table: %w", id, err)
	}
	defer rows.Close()

	logs := make([]domain.DutyInterval, 0, 32)
	for rows.Next() {
		var (
			e      domain.DutyInterval
			status string
		)
		if err := rows.Scan(&status, &e.Start, &e.End, &e.Location, &e.Remarks); err != nil {
			return nil, fmt.Errorf("get trip id=%s: scan log entry: %w", id, err)
		}
		if e.Status, err = parseDutyStatus(status); err != nil {
			return nil, fmt.Errorf("get trip id=%s: %w", id, err)
		}
		e.Start = e.Start.In(loc)
		e.End = e.End.In(loc)
		logs = append(logs, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get trip id=%s: row iteration: %w", id, err)
	}

	trip.Logs = logs
	return trip, nil
}

// Return the most recent trips, newest first, without log entries.
func (p *PostgresTripRepository) ListTrips(ctx context.Context, limit int) (_ []*domain.Trip, err error) {
	defer obs.Time(ctx, "trips.ListTrips")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres trip repository: DB is nil")
	}
	if limit <= 0 {
		return []*domain.Trip{}, nil
	}

	rows, err := p.DB.QueryContext(ctx, tripSelect+`
	ORDER BY created_at DESC, id
	LIMIT $1;
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list trips: query trips table: %w", err)
	}
	defer rows.Close()

	trips := make([]*domain.Trip, 0, limit)
	for rows.Next() {
		trip, _, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("list trips: scan row: %w", err)
		}
		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: row iteration: %w", err)
	}

	return trips, nil
}

const tripSelect = `
	SELECT
		id,
		current_location,
		pickup_location,
		dropoff_location,
		current_cycle_used,
		distance_miles,
		driving_hours,
		time_zone,
		summary,
		route,
		created_at
	FROM trips`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (*domain.Trip, *time.Location, error) {
	var (
		t        domain.Trip
		tz       string
		summary  []byte
		routeRaw []byte
	)
	err := row.Scan(
		&t.ID,
		&t.CurrentLocation,
		&t.PickupLocation,
		&t.DropoffLocation,
		&t.CurrentCycleUsed,
		&t.DistanceMiles,
		&t.DrivingHours,
		&tz,
		&summary,
		&routeRaw,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, nil, err
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}

	var sr summaryRecord
	if err := json.Unmarshal(summary, &sr); err != nil {
		return nil, nil, fmt.Errorf("decode summary: %w", err)
	}
	t.Summary = sr.summary(loc)

	if len(routeRaw) > 0 {
		var rr routeRecord
		if err := json.Unmarshal(routeRaw, &rr); err != nil {
			return nil, nil, fmt.Errorf("decode route: %w", err)
		}
		t.Route = rr.route()
	}

	t.CreatedAt = t.CreatedAt.UTC()
	return &t, loc, nil
}
