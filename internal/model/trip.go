package model

import "time"

// Trip represents a saved trip in the database. The itinerary is stored as
// serialized JSON in a TEXT column and unmarshalled on read.
type Trip struct {
	ID          int64
	UserID      int64
	Destination string
	Days        int
	BudgetMin   *int64
	BudgetMax   *int64
	BudgetLabel *string
	Itinerary   Itinerary
	IsActive    bool
	CreatedAt   time.Time
}

// GenerateRequest represents an itinerary generation request.
// Budget fields are optional; the budget is only mentioned to the provider
// when both bounds are present.
type GenerateRequest struct {
	Destination string  `json:"destination"`
	Days        int     `json:"days"`
	BudgetMin   *int64  `json:"budgetMin,omitempty"`
	BudgetMax   *int64  `json:"budgetMax,omitempty"`
	BudgetLabel *string `json:"budgetLabel,omitempty"`
}

// GenerateResponse carries a freshly generated itinerary back to the caller.
// TotalBudget is always computed server-side as the sum of day totals — the
// provider's own arithmetic is never used for the aggregate.
type GenerateResponse struct {
	Itinerary   Itinerary `json:"itinerary"`
	TotalBudget float64   `json:"totalBudget"`
}

// SaveTripRequest represents a request to persist a previously generated
// itinerary together with the parameters it was generated from.
type SaveTripRequest struct {
	Destination string     `json:"destination"`
	Days        int        `json:"days"`
	BudgetMin   *int64     `json:"budgetMin,omitempty"`
	BudgetMax   *int64     `json:"budgetMax,omitempty"`
	BudgetLabel *string    `json:"budgetLabel,omitempty"`
	Itinerary   *Itinerary `json:"itinerary"`
}

// TripResponse represents a trip in API responses.
type TripResponse struct {
	ID          int64     `json:"id"`
	Destination string    `json:"destination"`
	Days        int       `json:"days"`
	BudgetMin   *int64    `json:"budgetMin,omitempty"`
	BudgetMax   *int64    `json:"budgetMax,omitempty"`
	BudgetLabel *string   `json:"budgetLabel,omitempty"`
	Itinerary   Itinerary `json:"itinerary"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}
