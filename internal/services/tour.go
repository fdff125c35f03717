package services

import (
	"errors"
	"math"

	"travel-route-service/internal/domain"
)

// One stop considered for tour ordering. Priority breaks ties between
// orderings of equal distance (higher priority visited earlier) and decides
// which stop is dropped first when the tour exceeds its time budget.
type Waypoint struct {
	Name     string
	Coord    domain.Coordinates
	Priority float64
}

// An ordered visiting sequence including the fixed start and end.
type Tour struct {
	Order   []Waypoint
	TotalKm float64
}

// Returned when no waypoint subset (including the empty one) fits the
// caller's time budget.
var ErrTourInfeasible = errors.New("tour infeasible within time budget")

// Constraints on total tour time. MaxMinutes <= 0 disables the budget.
type TourBudget struct {
	AvgSpeedKmh  float64
	DwellMinutes int
	MaxMinutes   int
}

// Two orderings within this distance of each other count as equal cost for
// the priority tie-break.
const tourTieEpsilonKm = 1e-6

// OptimizeTour computes a low-total-distance visiting order over the
// waypoints between a fixed start and end: nearest-neighbor construction,
// 2-opt refinement to a local optimum, then a priority tie-break among
// equal-cost adjacent stops.
//
// When a time budget is set and the tour exceeds it, the lowest-priority
// waypoint is dropped and the remainder re-optimized until the budget is met;
// if even the bare start-end tour is over budget, ErrTourInfeasible is
// returned. Matrix build is O(n^2) and 2-opt is O(n^2) per pass, acceptable
// because waypoint counts stay in single digits here.
func OptimizeTour(start, end Waypoint, waypoints []Waypoint, budget TourBudget) (Tour, error) {
	stops := append([]Waypoint(nil), waypoints...)

	for {
		tour := optimizeOnce(start, end, stops)

		if budget.MaxMinutes <= 0 || tourMinutes(tour, len(stops), budget) <= budget.MaxMinutes {
			return tour, nil
		}

		if len(stops) == 0 {
			return Tour{}, ErrTourInfeasible
		}

		stops = dropLowestPriority(stops)
	}
}

func tourMinutes(t Tour, stopCount int, budget TourBudget) int {
	speed := budget.AvgSpeedKmh
	if speed <= 0 {
		speed = 40
	}
	travel := t.TotalKm / speed * 60
	return int(math.Round(travel)) + stopCount*budget.DwellMinutes
}

func dropLowestPriority(stops []Waypoint) []Waypoint {
	lowest := 0
	for i, s := range stops {
		if s.Priority < stops[lowest].Priority {
			lowest = i
		}
	}
	out := make([]Waypoint, 0, len(stops)-1)
	out = append(out, stops[:lowest]...)
	return append(out, stops[lowest+1:]...)
}

// optimizeOnce runs the full ordering pipeline over a fixed waypoint set.
func optimizeOnce(start, end Waypoint, stops []Waypoint) Tour {
	nodes := make([]Waypoint, 0, len(stops)+2)
	nodes = append(nodes, start)
	nodes = append(nodes, stops...)
	nodes = append(nodes, end)

	if len(stops) == 0 {
		return Tour{
			Order:   nodes,
			TotalKm: start.Coord.DistanceKm(end.Coord),
		}
	}

	dist := buildMatrix(nodes)
	order := nearestNeighborOrder(dist)
	order = twoOptImprove(order, dist)
	order = priorityTieBreak(order, nodes, dist)

	tour := Tour{Order: make([]Waypoint, len(order)), TotalKm: pathKm(order, dist)}
	for i, idx := range order {
		tour.Order[i] = nodes[idx]
	}
	return tour
}

// buildMatrix computes the full pairwise distance matrix over the nodes.
func buildMatrix(nodes []Waypoint) [][]float64 {
	n := len(nodes)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = nodes[i].Coord.DistanceKm(nodes[j].Coord)
			}
		}
	}
	return dist
}

// nearestNeighborOrder builds an initial tour greedily from node 0, always
// taking the closest unvisited interior node and reserving the final node
// for the last position. Ties go to the lower index for determinism.
func nearestNeighborOrder(dist [][]float64) []int {
	n := len(dist)
	order := make([]int, 0, n)
	order = append(order, 0)

	visited := make([]bool, n)
	visited[0] = true
	visited[n-1] = true // reserved for the end

	current := 0
	for len(order) < n-1 {
		next := -1
		best := math.Inf(1)
		for j := 1; j < n-1; j++ {
			if !visited[j] && dist[current][j] < best {
				best = dist[current][j]
				next = j
			}
		}
		if next < 0 {
			break
		}
		visited[next] = true
		order = append(order, next)
		current = next
	}

	return append(order, n-1)
}

// twoOptImprove reverses interior sub-segments while any reversal strictly
// shortens the tour. Start and end positions are never moved.
func twoOptImprove(order []int, dist [][]float64) []int {
	best := append([]int(nil), order...)
	bestKm := pathKm(best, dist)
	n := len(best)

	for improved := true; improved; {
		improved = false
		for i := 1; i < n-2; i++ {
			for k := i + 1; k < n-1; k++ {
				candidate := reverseSegment(best, i, k)
				if km := pathKm(candidate, dist); km < bestKm-tourTieEpsilonKm {
					best = candidate
					bestKm = km
					improved = true
				}
			}
		}
	}
	return best
}

func reverseSegment(order []int, i, k int) []int {
	out := make([]int, len(order))
	copy(out, order[:i])
	pos := i
	for j := k; j >= i; j-- {
		out[pos] = order[j]
		pos++
	}
	copy(out[pos:], order[k+1:])
	return out
}

// priorityTieBreak bubbles higher-priority stops earlier whenever swapping
// two adjacent interior stops leaves the total distance unchanged (within
// tolerance). It never trades distance for priority.
func priorityTieBreak(order []int, nodes []Waypoint, dist [][]float64) []int {
	out := append([]int(nil), order...)
	n := len(out)

	for swapped := true; swapped; {
		swapped = false
		for i := 1; i < n-2; i++ {
			a, b := out[i], out[i+1]
			if nodes[b].Priority <= nodes[a].Priority {
				continue
			}
			before := dist[out[i-1]][a] + dist[a][b] + dist[b][out[i+2]]
			after := dist[out[i-1]][b] + dist[b][a] + dist[a][out[i+2]]
			if math.Abs(after-before) <= tourTieEpsilonKm {
				out[i], out[i+1] = b, a
				swapped = true
			}
		}
	}
	return out
}

func pathKm(order []int, dist [][]float64) float64 {
	var total float64
	for i := 0; i+1 < len(order); i++ {
		total += dist[order[i]][order[i+1]]
	}
	return total
}
