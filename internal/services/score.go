package services

import (
	"sort"
	"strings"

	"travel-route-service/internal/domain"
)

// Composite scoring of candidate batches. Sub-scores and the weighted
// composite are all normalized to [0,1]; the time score is relative to the
// longest duration observed in the batch being scored.

// Score assigned to the preference dimension when the request carries no
// preference tags at all.
const neutralPreferenceScore = 0.5

// A trip of this many legs or more earns a fatigue score of zero.
const fatigueLegLimit = 10

// ScoreAndRank scores every candidate with the given weights and returns a
// new slice sorted descending by score. The sort is stable: ties keep their
// generation order, and no candidate is dropped or duplicated.
func ScoreAndRank(candidates []domain.RouteCandidate, req domain.TravelRequest, w domain.ScoringWeights) []domain.RouteCandidate {
	if len(candidates) == 0 {
		return nil
	}

	maxDuration := 0
	for _, c := range candidates {
		if c.TotalDurationMinutes > maxDuration {
			maxDuration = c.TotalDurationMinutes
		}
	}

	ranked := make([]domain.RouteCandidate, len(candidates))
	copy(ranked, candidates)

	for i := range ranked {
		ranked[i].Score = scoreCandidate(ranked[i], req, w, maxDuration)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func scoreCandidate(c domain.RouteCandidate, req domain.TravelRequest, w domain.ScoringWeights, maxDuration int) float64 {
	costScore := 0.0
	if req.Budget > 0 {
		costScore = clamp01(1 - float64(c.TotalCost)/float64(req.Budget))
	}

	timeScore := 1.0
	if maxDuration > 0 {
		timeScore = clamp01(1 - float64(c.TotalDurationMinutes)/float64(maxDuration))
	}

	prefScore := preferenceScore(c.Tags(), req.Preferences)
	fatigueScore := clamp01(1 - float64(len(c.Transports))/float64(fatigueLegLimit))

	composite := costScore*w.Cost +
		timeScore*w.Time +
		prefScore*w.Preference +
		fatigueScore*w.Fatigue
	return clamp01(composite)
}

// preferenceScore is the fraction of request tags matched by at least one
// candidate tag. Matching is case-insensitive substring (request tag inside
// candidate tag). A request without tags scores the neutral 0.5; a candidate
// without tags scores 0.
func preferenceScore(candidateTags, requestTags []string) float64 {
	if len(requestTags) == 0 {
		return neutralPreferenceScore
	}
	if len(candidateTags) == 0 {
		return 0
	}

	lowered := make([]string, len(candidateTags))
	for i, t := range candidateTags {
		lowered[i] = strings.ToLower(t)
	}

	matched := 0
	for _, want := range requestTags {
		want = strings.ToLower(want)
		for _, have := range lowered {
			if strings.Contains(have, want) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(requestTags))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
