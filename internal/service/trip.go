package service

import (
	"context"
	"errors"

	"github.com/tripai/tripai-go/internal/model"
	"github.com/tripai/tripai-go/internal/repository"
)

var (
	ErrDestinationRequired = errors.New("destination is required")
	ErrDaysInvalid         = errors.New("days must be a positive integer")
	ErrItineraryRequired   = errors.New("itinerary is required")
	ErrBudgetRange         = errors.New("budget bounds must be non-negative and budgetMin must not exceed budgetMax")
	ErrTripNotFound        = errors.New("trip not found")
)

// TripStore defines the persistence operations TripService depends on.
type TripStore interface {
	Create(ctx context.Context, trip *model.Trip) (*model.Trip, error)
	GetByID(ctx context.Context, userID, tripID int64) (*model.Trip, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Trip, error)
	Delete(ctx context.Context, userID, tripID int64) error
	Activate(ctx context.Context, userID, tripID int64) (*model.Trip, error)
}

var _ TripStore = (*repository.TripRepository)(nil)

// TripService handles saved-trip business logic. Saving is always an explicit
// operation on a previously generated itinerary — generation itself never
// touches this service.
type TripService struct {
	store TripStore
}

// NewTripService creates a new TripService.
func NewTripService(store TripStore) *TripService {
	return &TripService{store: store}
}

// Save persists a trip for the user. New trips are created inactive; the
// itinerary content is immutable once saved.
func (s *TripService) Save(ctx context.Context, userID int64, req model.SaveTripRequest) (*model.Trip, error) {
	if req.Destination == "" {
		return nil, ErrDestinationRequired
	}
	if req.Days < 1 {
		return nil, ErrDaysInvalid
	}
	if req.Itinerary == nil {
		return nil, ErrItineraryRequired
	}
	if err := validateBudget(req.BudgetMin, req.BudgetMax); err != nil {
		return nil, err
	}

	trip := &model.Trip{
		UserID:      userID,
		Destination: req.Destination,
		Days:        req.Days,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
		BudgetLabel: req.BudgetLabel,
		Itinerary:   *req.Itinerary,
	}

	return s.store.Create(ctx, trip)
}

// List returns all trips for the user, newest first. Always returns a non-nil
// slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, userID int64) ([]model.Trip, error) {
	trips, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if trips == nil {
		return []model.Trip{}, nil
	}
	return trips, nil
}

// Get returns a single trip. A trip owned by another user reports
// ErrTripNotFound, the same as one that does not exist.
func (s *TripService) Get(ctx context.Context, userID, tripID int64) (*model.Trip, error) {
	trip, err := s.store.GetByID(ctx, userID, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return trip, nil
}

// Delete removes a trip under the same ownership rule as Get.
func (s *TripService) Delete(ctx context.Context, userID, tripID int64) error {
	err := s.store.Delete(ctx, userID, tripID)
	if errors.Is(err, repository.ErrTripNotFound) {
		return ErrTripNotFound
	}
	return err
}

// Activate marks the trip as the user's single active trip.
func (s *TripService) Activate(ctx context.Context, userID, tripID int64) (*model.Trip, error) {
	trip, err := s.store.Activate(ctx, userID, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return trip, nil
}

// validateBudget enforces the budget invariant when both bounds are present.
// A single bound is tolerated and simply ignored downstream.
func validateBudget(min, max *int64) error {
	if min == nil || max == nil {
		return nil
	}
	if *min < 0 || *max < 0 || *min > *max {
		return ErrBudgetRange
	}
	return nil
}
