package domain

import "time"

// ChartRecord is a chart saved to history.
type ChartRecord struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`

	// Label is an optional human-readable name.
	Label string `json:"label,omitempty"`

	// Chart is the saved chart.
	Chart *Chart `json:"chart"`

	// CreatedAt is when the record was saved.
	CreatedAt time.Time `json:"created_at"`
}

// HistoryFilter narrows a history listing.
type HistoryFilter struct {
	// Limit caps the number of records; zero means no limit.
	Limit int
}
