package services

import (
	"errors"
	"math"
	"testing"

	"travel-route-service/internal/domain"
)

func wp(name string, lat, lon, priority float64) Waypoint {
	return Waypoint{Name: name, Coord: domain.Coordinates{Lat: lat, Lon: lon}, Priority: priority}
}

func orderNames(t Tour) []string {
	names := make([]string, len(t.Order))
	for i, w := range t.Order {
		names[i] = w.Name
	}
	return names
}

func pathDistance(stops []Waypoint) float64 {
	var total float64
	for i := 0; i+1 < len(stops); i++ {
		total += stops[i].Coord.DistanceKm(stops[i+1].Coord)
	}
	return total
}

func TestOptimizeTourNoWaypoints(t *testing.T) {
	start := wp("start", 37.5665, 126.9780, 0)
	end := wp("end", 35.1796, 129.0756, 0)

	tour, err := OptimizeTour(start, end, nil, TourBudget{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := orderNames(tour)
	if len(names) != 2 || names[0] != "start" || names[1] != "end" {
		t.Fatalf("order = %v, want [start end]", names)
	}

	direct := start.Coord.DistanceKm(end.Coord)
	if math.Abs(tour.TotalKm-direct) > 1e-9 {
		t.Fatalf("TotalKm = %f, want direct distance %f", tour.TotalKm, direct)
	}
}

func TestOptimizeTourSingleWaypoint(t *testing.T) {
	start := wp("start", 0, 0, 0)
	end := wp("end", 0, 2, 0)
	mid := wp("mid", 0, 1, 0)

	tour, err := OptimizeTour(start, end, []Waypoint{mid}, TourBudget{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := orderNames(tour)
	if len(names) != 3 || names[1] != "mid" {
		t.Fatalf("order = %v, want [start mid end]", names)
	}
}

// Nearest-neighbor greedily heads to A (closer than B) and ends up doubling
// back: start -> A -> B -> end. 2-opt must reverse the interior segment to
// the strictly shorter start -> B -> A -> end.
func TestOptimizeTourTwoOptUncrosses(t *testing.T) {
	start := wp("start", 0, 0, 0)
	end := wp("end", 0, 3, 0)
	a := wp("A", 0, 1, 0)
	b := wp("B", 0, -1.1, 0)

	tour, err := OptimizeTour(start, end, []Waypoint{a, b}, TourBudget{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := orderNames(tour)
	want := []string{"start", "B", "A", "end"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}

	optimal := pathDistance([]Waypoint{start, b, a, end})
	if math.Abs(tour.TotalKm-optimal) > 1e-6 {
		t.Fatalf("TotalKm = %f, want %f", tour.TotalKm, optimal)
	}

	greedy := pathDistance([]Waypoint{start, a, b, end})
	if tour.TotalKm >= greedy {
		t.Fatalf("2-opt did not improve on greedy tour: %f >= %f", tour.TotalKm, greedy)
	}
}

// Two waypoints mirrored across the start-end axis cost the same in either
// order; the higher-priority one must come first.
func TestOptimizeTourPriorityTieBreak(t *testing.T) {
	start := wp("start", 0, 0, 0)
	end := wp("end", 0, 2, 0)
	low := wp("low", 0.5, 1, 1)
	high := wp("high", -0.5, 1, 5)

	tour, err := OptimizeTour(start, end, []Waypoint{low, high}, TourBudget{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := orderNames(tour)
	want := []string{"start", "high", "low", "end"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}

func TestOptimizeTourDropsLowestPriorityOverBudget(t *testing.T) {
	base := wp("base", 0, 0, 0)
	near := wp("near", 0, 0.01, 5)
	far := wp("far", 0, 0.5, 1)

	budget := TourBudget{AvgSpeedKmh: 40, DwellMinutes: 60, MaxMinutes: 150}

	tour, err := OptimizeTour(base, base, []Waypoint{near, far}, budget)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := orderNames(tour)
	if len(names) != 3 || names[1] != "near" {
		t.Fatalf("order = %v, want [base near base]", names)
	}
}

func TestOptimizeTourInfeasible(t *testing.T) {
	start := wp("start", 0, 0, 0)
	end := wp("end", 10, 10, 0)

	budget := TourBudget{AvgSpeedKmh: 40, DwellMinutes: 60, MaxMinutes: 60}

	_, err := OptimizeTour(start, end, nil, budget)
	if !errors.Is(err, ErrTourInfeasible) {
		t.Fatalf("err = %v, want ErrTourInfeasible", err)
	}
}
