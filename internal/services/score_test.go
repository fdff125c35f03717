package services

import (
	"math"
	"testing"

	"travel-route-service/internal/domain"
)

func TestScoreAndRankOrdersByScore(t *testing.T) {
	req := domain.TravelRequest{Budget: 400000}
	candidates := []domain.RouteCandidate{
		{ID: "pricey", TotalCost: 300000, TotalDurationMinutes: 600},
		{ID: "cheap", TotalCost: 100000, TotalDurationMinutes: 600},
		{ID: "middle", TotalCost: 200000, TotalDurationMinutes: 600},
	}

	ranked := ScoreAndRank(candidates, req, domain.DefaultWeights())

	if len(ranked) != 3 {
		t.Fatalf("got %d ranked candidates, want 3", len(ranked))
	}
	want := []string{"cheap", "middle", "pricey"}
	for i := range want {
		if ranked[i].ID != want[i] {
			t.Fatalf("rank %d = %s, want %s", i, ranked[i].ID, want[i])
		}
	}
	for i := 0; i+1 < len(ranked); i++ {
		if ranked[i].Score < ranked[i+1].Score {
			t.Fatalf("scores not descending: %f < %f", ranked[i].Score, ranked[i+1].Score)
		}
	}

	// Input order untouched.
	if candidates[0].ID != "pricey" || candidates[0].Score != 0 {
		t.Fatal("ScoreAndRank mutated its input")
	}
}

func TestScoreAndRankStableOnTies(t *testing.T) {
	req := domain.TravelRequest{Budget: 400000}
	candidates := []domain.RouteCandidate{
		{ID: "first", TotalCost: 100000, TotalDurationMinutes: 300},
		{ID: "second", TotalCost: 100000, TotalDurationMinutes: 300},
		{ID: "third", TotalCost: 100000, TotalDurationMinutes: 300},
	}

	ranked := ScoreAndRank(candidates, req, domain.DefaultWeights())

	want := []string{"first", "second", "third"}
	for i := range want {
		if ranked[i].ID != want[i] {
			t.Fatalf("tie order broken at %d: got %s, want %s", i, ranked[i].ID, want[i])
		}
	}
}

func TestScoreAndRankEmpty(t *testing.T) {
	if got := ScoreAndRank(nil, domain.TravelRequest{}, domain.DefaultWeights()); got != nil {
		t.Fatalf("empty input should rank to nil, got %v", got)
	}
}

func TestScoresWithinUnitRange(t *testing.T) {
	req := domain.TravelRequest{Budget: 100, Preferences: []string{"beach"}}
	candidates := []domain.RouteCandidate{
		// Way over budget: cost score clamps at zero instead of going negative.
		{ID: "over", TotalCost: 100000, TotalDurationMinutes: 100},
		{ID: "free", TotalCost: 0, TotalDurationMinutes: 0},
	}

	for _, c := range ScoreAndRank(candidates, req, domain.DefaultWeights()) {
		if c.Score < 0 || c.Score > 1 {
			t.Fatalf("candidate %s score %f outside [0,1]", c.ID, c.Score)
		}
	}
}

func TestPreferenceScore(t *testing.T) {
	cases := []struct {
		name          string
		candidateTags []string
		requestTags   []string
		want          float64
	}{
		{"no request tags", []string{"beach"}, nil, 0.5},
		{"no candidate tags", nil, []string{"beach"}, 0},
		{"full match", []string{"beach", "history"}, []string{"beach"}, 1},
		{"half match", []string{"Beach"}, []string{"beach", "food"}, 0.5},
		{"case insensitive", []string{"BEACH"}, []string{"Beach"}, 1},
		{"substring match", []string{"beachfront"}, []string{"beach"}, 1},
		{"no match", []string{"museum"}, []string{"beach"}, 0},
	}

	for _, c := range cases {
		if got := preferenceScore(c.candidateTags, c.requestTags); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("%s: preferenceScore = %f, want %f", c.name, got, c.want)
		}
	}
}

func TestFatigueCapsAtLegLimit(t *testing.T) {
	req := domain.TravelRequest{Budget: 1000000}
	legs := make([]domain.TransportOption, fatigueLegLimit+2)

	weights := domain.ScoringWeights{Fatigue: 1}
	exhausting := domain.RouteCandidate{Transports: legs}

	if got := scoreCandidate(exhausting, req, weights, 0); got != 0 {
		t.Fatalf("fatigue-only score with %d legs = %f, want 0", len(legs), got)
	}

	direct := domain.RouteCandidate{Transports: legs[:1]}
	if got := scoreCandidate(direct, req, weights, 0); got <= 0 {
		t.Fatalf("single-leg fatigue score = %f, want > 0", got)
	}
}
