package services

import (
	"testing"

	"travel-route-service/internal/domain"
)

func TestTransportCostMonotonic(t *testing.T) {
	distances := []float64{0, 10, 50, 99, 100, 101, 150, 299, 300, 301, 499, 500, 501, 800, 1200}
	modes := []domain.Mode{
		domain.ModeFlight, domain.ModeTrain, domain.ModeBus,
		domain.ModeCar, domain.ModeSubway,
	}

	for _, mode := range modes {
		prev := -1
		for _, d := range distances {
			cost := TransportCost(d, mode)
			if cost < prev {
				t.Fatalf("mode %s: cost decreased from %d to %d at %f km", mode, prev, cost, d)
			}
			prev = cost
		}
	}
}

func TestTransportCostFlightSurcharge(t *testing.T) {
	flight := TransportCost(0, domain.ModeFlight)
	if flight != flightSurcharge {
		t.Fatalf("zero-distance flight = %d, want surcharge %d", flight, flightSurcharge)
	}

	if got := TransportCost(0, domain.ModeTrain); got != 0 {
		t.Fatalf("zero-distance train = %d, want 0", got)
	}
}

func TestTransportDuration(t *testing.T) {
	// 700 km by flight: 60 min cruise + 120 min overhead.
	if got := TransportDuration(700, domain.ModeFlight); got != 180 {
		t.Fatalf("flight 700km = %d min, want 180", got)
	}

	// 150 km by train: 60 min cruise + 30 min overhead.
	if got := TransportDuration(150, domain.ModeTrain); got != 90 {
		t.Fatalf("train 150km = %d min, want 90", got)
	}

	if got := TransportDuration(0, domain.ModeCar); got != 0 {
		t.Fatalf("car 0km = %d min, want 0", got)
	}
}

func TestAccommodationCostLongStayDiscount(t *testing.T) {
	// Budget grade, 3 nights, popular: 50000 * 3 * 1.3 * 0.95 = 185250.
	if got := AccommodationCost(domain.GradeBudget, 3, true); got != 185250 {
		t.Fatalf("AccommodationCost(budget, 3, popular) = %d, want 185250", got)
	}

	// Two nights: no long-stay discount.
	if got := AccommodationCost(domain.GradeBudget, 2, false); got != 100000 {
		t.Fatalf("AccommodationCost(budget, 2, regular) = %d, want 100000", got)
	}
}

func TestNightlyRatePopularPremium(t *testing.T) {
	if got := NightlyRate(domain.GradeBudget, true); got != 65000 {
		t.Fatalf("NightlyRate(budget, popular) = %d, want 65000", got)
	}
	if got := NightlyRate(domain.GradeLuxury, false); got != 200000 {
		t.Fatalf("NightlyRate(luxury, regular) = %d, want 200000", got)
	}
}

func TestAttractionFee(t *testing.T) {
	cases := []struct {
		category   string
		popularity float64
		want       int
	}{
		{"Central Park", 4.9, feeFree}, // free keyword wins over popularity
		{"Beach", 4.0, feeFree},
		{"City Museum", 2.0, feeStandard},
		{"Old Temple", 4.8, feeCheap},
		{"Observation Tower", 1.0, feePremium},
		{"unknown", 4.6, feePremium},
		{"unknown", 3.7, feeStandard},
		{"unknown", 1.0, feeCheap},
	}

	for _, c := range cases {
		if got := AttractionFee(c.category, c.popularity); got != c.want {
			t.Fatalf("AttractionFee(%q, %f) = %d, want %d", c.category, c.popularity, got, c.want)
		}
	}
}

func TestRecommendModes(t *testing.T) {
	cases := []struct {
		distance float64
		want     []domain.Mode
	}{
		{10, []domain.Mode{domain.ModeCar}},
		{40, []domain.Mode{domain.ModeBus, domain.ModeCar}},
		{100, []domain.Mode{domain.ModeTrain, domain.ModeBus, domain.ModeCar}},
		{300, []domain.Mode{domain.ModeFlight, domain.ModeTrain, domain.ModeBus, domain.ModeCar}},
		{600, []domain.Mode{domain.ModeFlight, domain.ModeTrain, domain.ModeBus}},
	}

	for _, c := range cases {
		got := RecommendModes(c.distance)
		if len(got) != len(c.want) {
			t.Fatalf("RecommendModes(%f) = %v, want %v", c.distance, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("RecommendModes(%f) = %v, want %v", c.distance, got, c.want)
			}
		}
	}
}
