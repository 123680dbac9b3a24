package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tripai/tripai-go/internal/model"
)

var ErrTripNotFound = errors.New("trip not found")

// tripColumns is the shared column list scanned by scanTrip.
const tripColumns = `id, user_id, destination, days, budget_min, budget_max, budget_label, itinerary, is_active, created_at`

// TripRepository handles trip persistence operations. Every lookup is scoped
// to the owning user in the WHERE clause, so a trip belonging to another user
// is indistinguishable from one that does not exist.
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new TripRepository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create inserts a new trip row with is_active = FALSE and returns the
// persisted record with its generated ID and timestamp.
func (r *TripRepository) Create(ctx context.Context, trip *model.Trip) (*model.Trip, error) {
	data, err := json.Marshal(trip.Itinerary)
	if err != nil {
		return nil, fmt.Errorf("marshal itinerary: %w", err)
	}

	query := `INSERT INTO trips (user_id, destination, days, budget_min, budget_max, budget_label, itinerary)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		trip.UserID, trip.Destination, trip.Days,
		trip.BudgetMin, trip.BudgetMax, trip.BudgetLabel, data,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, trip.UserID, id)
}

// GetByID retrieves a trip by ID, scoped to the owning user.
func (r *TripRepository) GetByID(ctx context.Context, userID, tripID int64) (*model.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = ? AND user_id = ?`

	trip, err := scanTrip(r.db.QueryRowContext(ctx, query, tripID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	return trip, nil
}

// ListByUser retrieves all trips for a user, newest first.
func (r *TripRepository) ListByUser(ctx context.Context, userID int64) ([]model.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []model.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, *t)
	}

	return trips, rows.Err()
}

// Delete removes a trip by ID, scoped to the owning user.
func (r *TripRepository) Delete(ctx context.Context, userID, tripID int64) error {
	query := `DELETE FROM trips WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, tripID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTripNotFound
	}

	return nil
}

// Activate marks one trip active and every other trip of the same user
// inactive, in a single transaction. A reader never observes zero or two
// active trips for the user mid-transition.
func (r *TripRepository) Activate(ctx context.Context, userID, tripID int64) (*model.Trip, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE trips SET is_active = FALSE WHERE user_id = ?`, userID,
	); err != nil {
		return nil, err
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE trips SET is_active = TRUE WHERE id = ? AND user_id = ?`, tripID, userID,
	)
	if err != nil {
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Rolling back leaves the previously active trip untouched.
		return nil, ErrTripNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, userID, tripID)
}

// scanner is satisfied by both *sql.Row and *sql.Rows, letting scanTrip serve
// QueryRow and Query callers alike.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single trips row into a model.Trip, handling the nullable
// budget columns and the serialized itinerary.
func scanTrip(s scanner) (*model.Trip, error) {
	var (
		t            model.Trip
		budgetMin    sql.NullInt64
		budgetMax    sql.NullInt64
		budgetLabel  sql.NullString
		rawItinerary []byte
	)

	err := s.Scan(
		&t.ID, &t.UserID, &t.Destination, &t.Days,
		&budgetMin, &budgetMax, &budgetLabel, &rawItinerary,
		&t.IsActive, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if budgetMin.Valid {
		t.BudgetMin = &budgetMin.Int64
	}
	if budgetMax.Valid {
		t.BudgetMax = &budgetMax.Int64
	}
	if budgetLabel.Valid {
		t.BudgetLabel = &budgetLabel.String
	}

	if err := json.Unmarshal(rawItinerary, &t.Itinerary); err != nil {
		return nil, fmt.Errorf("unmarshal itinerary for trip %d: %w", t.ID, err)
	}

	return &t, nil
}
