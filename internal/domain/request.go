package domain

import "time"

// Represents one itinerary search as submitted by the caller.
// The caller validates the request before the engine runs: Departure and
// Destination are non-empty place names, DurationDays >= 1 and Budget > 0.
// Preferences are free-form tags ("history", "food", ...) matched against
// accommodation and attraction tags during scoring.
type TravelRequest struct {
	Departure    string
	Destination  string
	StartDate    time.Time
	DurationDays int
	Budget       int
	Preferences  []string
}

// Nights returns the number of lodging nights covered by the request.
func (r TravelRequest) Nights() int { return r.DurationDays }
