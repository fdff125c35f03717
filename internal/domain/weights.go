package domain

// Relative importance of each scoring dimension. Weights are non-negative
// and need not sum to one; the scorer clamps the composite to [0,1].
type ScoringWeights struct {
	Cost       float64
	Time       float64
	Preference float64
	Fatigue    float64
}

// DefaultWeights is the starting point before any adjustment cycles.
func DefaultWeights() ScoringWeights {
	return ScoringWeights{Cost: 0.40, Time: 0.25, Preference: 0.20, Fatigue: 0.15}
}
