package services

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"travel-route-service/internal/domain"
	"travel-route-service/internal/platform/metrics"
	"travel-route-service/internal/platform/obs"
	"travel-route-service/internal/ports"
)

// Budget-utilization thresholds steering weight adjustment.
const (
	highUtilization = 0.9
	lowUtilization  = 0.65
)

// Searcher drives the iterative route search: collect external data once,
// then cycle generate -> score -> adjust weights until the score threshold
// is met or the iteration cap runs out.
//
// A Searcher is safe for concurrent use; every Search invocation operates on
// its own candidate and weight state.
type Searcher struct {
	geocoder    ports.Geocoder
	routes      ports.RouteProvider
	attractions ports.AttractionProvider
	params      Params
	observer    ProgressObserver
}

// NewSearcher wires the engine with its collaborators. A nil observer is
// replaced with a no-op.
func NewSearcher(
	geocoder ports.Geocoder,
	routes ports.RouteProvider,
	attractions ports.AttractionProvider,
	params Params,
	observer ProgressObserver,
) *Searcher {
	if observer == nil {
		observer = noopObserver{}
	}
	return &Searcher{
		geocoder:    geocoder,
		routes:      routes,
		attractions: attractions,
		params:      params,
		observer:    observer,
	}
}

// Search runs one full itinerary search for the request. It returns a
// ranked result (possibly empty, with a note) for every recoverable
// situation; the only hard error is an unresolvable departure or
// destination.
func (s *Searcher) Search(ctx context.Context, req domain.TravelRequest) (_ *domain.SearchResult, err error) {
	ctx = obs.WithSearchID(ctx, uuid.NewString())
	defer obs.Time(ctx, "search")(&err)

	s.observer.OnProgress(StageCollecting, fmt.Sprintf("destination=%s", req.Destination))
	data, err := s.collect(ctx, req)
	if err != nil {
		metrics.SearchOutcomes.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("search: %w", err)
	}

	pool := s.buildPool(ctx, req, data)

	weights := domain.DefaultWeights()
	tolerance := s.params.BudgetTolerance

	var ranked []domain.RouteCandidate
	iterations := 0

	for iterations < s.params.MaxIterations {
		iterations++
		metrics.SearchIterations.Inc()

		s.observer.OnProgress(StageGenerating, fmt.Sprintf("iteration=%d tolerance=%.2f", iterations, tolerance))
		candidates := GenerateCandidates(req, pool, s.params, tolerance)
		metrics.CandidatesGenerated.Add(float64(len(candidates)))

		if len(candidates) == 0 {
			// Recoverable: loosen the cost emphasis and the budget
			// tolerance, then try again until the cap runs out.
			weights, tolerance = s.relax(weights, tolerance)
			s.observer.OnProgress(StageAdjusting, "no feasible combinations, relaxing")
			continue
		}

		s.observer.OnProgress(StageScoring, fmt.Sprintf("candidates=%d", len(candidates)))
		ranked = ScoreAndRank(candidates, req, weights)

		if ranked[0].Score >= s.params.ScoreThreshold {
			break
		}
		if iterations == s.params.MaxIterations {
			break
		}

		weights = adjustWeights(weights, ranked[0].BudgetUtilization(req.Budget), s.params)
		s.observer.OnProgress(StageAdjusting, fmt.Sprintf("cost_weight=%.2f", weights.Cost))
	}

	result := &domain.SearchResult{
		Candidates: topN(ranked, s.params.TopN),
		Iterations: iterations,
		Weights:    weights,
	}

	if len(result.Candidates) == 0 {
		result.Note = "no feasible itineraries found within budget"
		metrics.SearchOutcomes.WithLabelValues("empty").Inc()
	} else {
		metrics.SearchOutcomes.WithLabelValues("found").Inc()
	}

	s.observer.OnProgress(StageDone, fmt.Sprintf("iterations=%d candidates=%d", iterations, len(result.Candidates)))
	return result, nil
}

// relax is the zero-candidate recovery path: pull the cost weight toward its
// floor and widen the budget tolerance within its documented ceiling.
func (s *Searcher) relax(w domain.ScoringWeights, tolerance float64) (domain.ScoringWeights, float64) {
	w.Cost = math.Max(s.params.CostWeightFloor, w.Cost-s.params.CostWeightStep)
	return w, math.Min(s.params.MaxBudgetTolerance, tolerance+s.params.ToleranceRelax)
}

// adjustWeights mutates the weights based on how much of the budget the top
// candidate consumed. High utilization shifts mass from time and preference
// into cost; low utilization shifts cost mass into preference; the middle
// band drifts gently toward preference to explore the space. Every component
// stays non-negative and within its floor/ceiling.
func adjustWeights(w domain.ScoringWeights, utilization float64, p Params) domain.ScoringWeights {
	switch {
	case utilization > highUtilization:
		shift := math.Min(p.CostWeightStep, p.CostWeightCeil-w.Cost)
		if shift > 0 {
			w.Cost += shift
			w.Time = math.Max(0, w.Time-shift/2)
			w.Preference = math.Max(0, w.Preference-shift/2)
		}
	case utilization < lowUtilization:
		shift := math.Min(p.CostWeightStep, w.Cost-p.CostWeightFloor)
		if shift > 0 {
			w.Cost -= shift
			w.Preference = math.Min(p.PreferenceCeil, w.Preference+shift)
		}
	default:
		w.Preference = math.Min(p.PreferenceCeil, w.Preference+p.PreferenceDrift)
		w.Time = math.Max(0, w.Time-p.PreferenceDrift)
	}
	return w
}

func topN(candidates []domain.RouteCandidate, n int) []domain.RouteCandidate {
	if n > 0 && len(candidates) > n {
		candidates = candidates[:n]
	}
	return append([]domain.RouteCandidate(nil), candidates...)
}
