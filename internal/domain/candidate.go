package domain

// Per-component cost totals for one candidate. Total always equals the sum
// of the other three fields.
type CostBreakdown struct {
	Transport     int
	Accommodation int
	Attractions   int
	Total         int
}

// One complete itinerary proposal: transport legs, lodging and attraction
// selections with aggregate cost and duration. Candidates are immutable once
// generated except for Score, which is written once per scoring pass.
//
// ID is a deterministic composite of the option indices that produced the
// candidate, so a given option pool always yields the same identifiers.
type RouteCandidate struct {
	ID                   string
	Transports           []TransportOption
	Accommodations       []AccommodationOption
	Attractions          []AttractionOption
	TotalCost            int
	TotalDurationMinutes int
	Breakdown            CostBreakdown
	Score                float64
}

// BudgetUtilization returns TotalCost as a fraction of the given budget.
func (c RouteCandidate) BudgetUtilization(budget int) float64 {
	if budget <= 0 {
		return 0
	}
	return float64(c.TotalCost) / float64(budget)
}

// Tags returns every tag carried by the candidate's accommodations and
// attractions, in selection order. Duplicates are preserved.
func (c RouteCandidate) Tags() []string {
	var tags []string
	for _, a := range c.Accommodations {
		tags = append(tags, a.Tags...)
	}
	for _, a := range c.Attractions {
		tags = append(tags, a.Tags...)
	}
	return tags
}
