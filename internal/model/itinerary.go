package model

// Itinerary is the structured travel plan produced by the generation provider.
// Optional descriptive fields stay absent when the provider omits them — no
// defaults are injected.
type Itinerary struct {
	Destination     string    `json:"destination"`
	Country         string    `json:"country,omitempty"`
	Region          string    `json:"region,omitempty"`
	Summary         string    `json:"summary,omitempty"`
	Month           string    `json:"month,omitempty"`
	TotalActivities int       `json:"totalActivities,omitempty"`
	Days            []DayPlan `json:"days"`
}

// DayPlan is one day of an itinerary. Day numbers are 1-indexed and unique
// within the itinerary; entries keep the order the provider emitted them in,
// so callers must index by Day, not by position.
type DayPlan struct {
	Day       int       `json:"day"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	Morning   *Activity `json:"morning,omitempty"`
	Afternoon *Activity `json:"afternoon,omitempty"`
	Evening   *Activity `json:"evening,omitempty"`
	DayTotal  float64   `json:"dayTotal"`
}

// Activity is a single morning/afternoon/evening entry with its estimated cost
// in BRL.
type Activity struct {
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	EstimatedCost float64 `json:"estimatedCost"`
}
