package domain

// Outcome of one search invocation: the ranked candidates (best first,
// truncated to the configured top-N), the number of generate/score cycles
// actually performed, and the weights in effect when the search stopped.
// Note is set when the search exhausted its iteration cap without producing
// a satisfactory candidate.
type SearchResult struct {
	Candidates []RouteCandidate
	Iterations int
	Weights    ScoringWeights
	Note       string
}
