package domain

import "time"

// Transport mode for a single leg.
type Mode string

const (
	ModeFlight Mode = "flight"
	ModeTrain  Mode = "train"
	ModeBus    Mode = "bus"
	ModeSubway Mode = "subway"
	ModeCar    Mode = "car"
	ModeWalk   Mode = "walk"
)

// Accommodation grade determines the base nightly rate.
type Grade string

const (
	GradeBudget   Grade = "budget"
	GradeStandard Grade = "standard"
	GradeLuxury   Grade = "luxury"
)

// One transport leg between two named locations.
// Options are generated fresh per search cycle and never persisted.
type TransportOption struct {
	Mode            Mode
	Origin          string
	Destination     string
	Cost            int
	DurationMinutes int
	DepartAt        time.Time
	ArriveAt        time.Time
}

// One lodging grade/location pairing covering the whole stay.
// CostPerNight already includes the popular-destination premium; the
// long-stay discount is applied when the full stay is priced.
type AccommodationOption struct {
	Name         string
	Location     string
	CostPerNight int
	Rating       float64
	Tags         []string
}

// One visitable attraction near the destination.
type AttractionOption struct {
	Name         string
	Location     string
	EntranceFee  int
	VisitMinutes int
	Tags         []string
	Rating       float64
}
