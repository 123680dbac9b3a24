// Package itinerary defines the canonical itinerary contract: the prompt sent
// to the generation provider and the validation of whatever text comes back.
// The provider enforces no schema of its own, so this package is the sole
// enforcement point.
package itinerary

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tripai/tripai-go/internal/model"
)

var (
	// ErrMalformed means the provider response did not parse as JSON at all.
	ErrMalformed = errors.New("provider returned invalid JSON")

	// ErrSchema means the response parsed but its top-level shape does not
	// match the itinerary contract (not an object, days missing, and so on).
	ErrSchema = errors.New("provider response does not match the itinerary schema")

	// ErrInvalid means the shape was right but a day entry violates the day
	// rules (non-positive or duplicated day numbers, negative costs).
	ErrInvalid = errors.New("invalid itinerary")
)

// Validate parses raw provider output into an Itinerary and checks it against
// the contract. Day entries are accepted in whatever order the provider
// emitted them and are never re-sorted: day identity is the day field, not the
// position. dayTotal values are taken as emitted — only non-negativity is
// checked, the provider is authoritative for its own per-day arithmetic.
func Validate(raw string) (model.Itinerary, error) {
	var top any
	if err := json.Unmarshal([]byte(raw), &top); err != nil {
		return model.Itinerary{}, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	if _, ok := top.(map[string]any); !ok {
		return model.Itinerary{}, fmt.Errorf("%w: top-level value is not an object", ErrSchema)
	}

	var it model.Itinerary
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		return model.Itinerary{}, fmt.Errorf("%w: %s", ErrSchema, err)
	}

	if strings.TrimSpace(it.Destination) == "" {
		return model.Itinerary{}, fmt.Errorf("%w: destination is required", ErrSchema)
	}
	if it.Days == nil {
		return model.Itinerary{}, fmt.Errorf("%w: days is required", ErrSchema)
	}
	if len(it.Days) == 0 {
		return model.Itinerary{}, fmt.Errorf("%w: days must not be empty", ErrSchema)
	}
	if it.TotalActivities < 0 {
		return model.Itinerary{}, fmt.Errorf("%w: totalActivities must not be negative", ErrInvalid)
	}

	seen := make(map[int]bool, len(it.Days))
	for i, d := range it.Days {
		if d.Day < 1 {
			return model.Itinerary{}, fmt.Errorf("%w: entry %d has non-positive day %d", ErrInvalid, i, d.Day)
		}
		if seen[d.Day] {
			return model.Itinerary{}, fmt.Errorf("%w: day %d appears more than once", ErrInvalid, d.Day)
		}
		seen[d.Day] = true

		if d.DayTotal < 0 {
			return model.Itinerary{}, fmt.Errorf("%w: day %d has negative dayTotal", ErrInvalid, d.Day)
		}
		for _, a := range []*model.Activity{d.Morning, d.Afternoon, d.Evening} {
			if a != nil && a.EstimatedCost < 0 {
				return model.Itinerary{}, fmt.Errorf("%w: day %d has a negative estimatedCost", ErrInvalid, d.Day)
			}
		}
	}

	return it, nil
}

// TotalBudget returns the canonical aggregate cost of an itinerary, computed
// independently as the sum of all dayTotal values. This is the only total ever
// shown to callers — a provider-supplied grand total is never trusted.
func TotalBudget(it model.Itinerary) float64 {
	var total float64
	for _, d := range it.Days {
		total += d.DayTotal
	}
	return total
}
