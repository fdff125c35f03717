package services

import (
	"fmt"
	"time"

	"travel-route-service/internal/domain"
)

// Bounded option sets feeding candidate generation. Attractions arrive
// already tour-ordered, so a bundle is always a prefix of the list.
type OptionPool struct {
	Outbound    []domain.TransportOption
	Return      []domain.TransportOption
	Stays       []domain.AccommodationOption
	Attractions []domain.AttractionOption
}

// GenerateCandidates cross-products the bounded option sets into itinerary
// candidates, pruning anything that breaks the budget tolerance, the
// minimum-stay gap or leg connectivity. Failing combinations are excluded
// outright, never kept with a penalty score.
//
// Candidate IDs are deterministic composites of the selection indices
// (outbound, return, stay, bundle), so a given pool always produces the
// same IDs in the same order.
func GenerateCandidates(req domain.TravelRequest, pool OptionPool, p Params, tolerance float64) []domain.RouteCandidate {
	outbound := truncate(pool.Outbound, p.MaxOptionsPerList)
	returns := truncate(pool.Return, p.MaxOptionsPerList)
	stays := truncate(pool.Stays, p.MaxOptionsPerList)
	attractions := truncate(pool.Attractions, p.MaxOptionsPerList*2)

	bundles := attractionBundles(attractions, p.MaxAttractionsPerDay*req.DurationDays)
	minTransfer := time.Duration(p.MinTransferMinutes) * time.Minute
	minStayGap := time.Duration(p.MinStayHoursPerDay*req.DurationDays) * time.Hour
	budgetCap := float64(req.Budget) * tolerance

	// One-way searches iterate a single empty return slot.
	hasReturn := len(returns) > 0
	returnCount := len(returns)
	if !hasReturn {
		returnCount = 1
	}

	var candidates []domain.RouteCandidate
	for oi, out := range outbound {
		for ri := 0; ri < returnCount; ri++ {
			legs := []domain.TransportOption{out}
			if hasReturn {
				ret := returns[ri]
				if ret.DepartAt.Sub(out.ArriveAt) < minStayGap {
					continue
				}
				legs = append(legs, ret)
			}
			if !ChainValid(legs, minTransfer) {
				continue
			}

			transportCost := 0
			transportMinutes := 0
			for _, leg := range legs {
				transportCost += leg.Cost
				transportMinutes += leg.DurationMinutes
			}

			for si, stay := range stays {
				stayCost := StayCost(stay.CostPerNight, req.Nights())

				for bi, bundle := range bundles {
					attractionCost := 0
					visitMinutes := 0
					for _, a := range bundle {
						attractionCost += a.EntranceFee
						visitMinutes += a.VisitMinutes
					}

					total := transportCost + stayCost + attractionCost
					if float64(total) > budgetCap {
						continue
					}

					candidates = append(candidates, domain.RouteCandidate{
						ID:                   fmt.Sprintf("o%d-r%d-s%d-a%d", oi, ri, si, bi),
						Transports:           append([]domain.TransportOption(nil), legs...),
						Accommodations:       []domain.AccommodationOption{stay},
						Attractions:          append([]domain.AttractionOption(nil), bundle...),
						TotalCost:            total,
						TotalDurationMinutes: transportMinutes + visitMinutes,
						Breakdown: domain.CostBreakdown{
							Transport:     transportCost,
							Accommodation: stayCost,
							Attractions:   attractionCost,
							Total:         total,
						},
					})
				}
			}
		}
	}

	return candidates
}

func truncate[T any](opts []T, limit int) []T {
	if limit > 0 && len(opts) > limit {
		return opts[:limit]
	}
	return opts
}

// attractionBundles builds up to three prefix selections of the tour-ordered
// attraction list: the full per-trip cap, half of it, and none. Bundle sizes
// are deduplicated, largest first.
func attractionBundles(attractions []domain.AttractionOption, limit int) [][]domain.AttractionOption {
	full := len(attractions)
	if limit >= 0 && full > limit {
		full = limit
	}

	sizes := []int{full, full / 2, 0}
	seen := make(map[int]bool, len(sizes))

	var bundles [][]domain.AttractionOption
	for _, size := range sizes {
		if seen[size] {
			continue
		}
		seen[size] = true
		bundles = append(bundles, attractions[:size])
	}
	return bundles
}
