package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"travel-route-service/internal/domain"
	"travel-route-service/internal/platform/obs"
	"travel-route-service/internal/ports"
)

// Everything the iteration loop needs, gathered once per search.
type collectedData struct {
	origin  ports.Place
	dest    ports.Place
	pois    []ports.AttractionInfo
	route   ports.RouteResult
	popular bool
}

type lookupResult struct {
	kind  string
	place ports.Place
	pois  []ports.AttractionInfo
	err   error
}

// Default visiting time budgeted per attraction.
const attractionVisitMinutes = 90

// Departure times used when composing transport legs.
const (
	outboundHour = 9
	returnHour   = 18
)

// collect resolves both endpoints and the destination's attraction list.
// The three lookups are independent and run concurrently; the loop waits for
// all of them before proceeding. An unresolvable origin or destination is
// fatal; a failed attraction lookup degrades to an empty list.
func (s *Searcher) collect(ctx context.Context, req domain.TravelRequest) (_ collectedData, err error) {
	defer obs.Time(ctx, "search.collect")(&err)

	results := make(chan lookupResult, 3)
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		place, err := s.geocoder.Geocode(ctx, req.Departure)
		results <- lookupResult{kind: "origin", place: place, err: err}
	}()
	go func() {
		defer wg.Done()
		place, err := s.geocoder.Geocode(ctx, req.Destination)
		results <- lookupResult{kind: "dest", place: place, err: err}
	}()
	go func() {
		defer wg.Done()
		// The attraction lookup resolves the destination itself so the
		// three goroutines stay mutually independent. The shared cache
		// makes the duplicate geocode cheap.
		place, err := s.geocoder.Geocode(ctx, req.Destination)
		if err != nil {
			results <- lookupResult{kind: "pois", err: err}
			return
		}
		pois, err := s.attractions.Nearby(ctx, place.Location, s.params.AttractionRadiusKm, req.Preferences)
		results <- lookupResult{kind: "pois", pois: pois, err: err}
	}()

	wg.Wait()
	close(results)

	var data collectedData
	for res := range results {
		switch res.kind {
		case "origin":
			if res.err != nil {
				return collectedData{}, fmt.Errorf("collect: resolve departure %q: %w", req.Departure, res.err)
			}
			data.origin = res.place
		case "dest":
			if res.err != nil {
				return collectedData{}, fmt.Errorf("collect: resolve destination %q: %w", req.Destination, res.err)
			}
			data.dest = res.place
		case "pois":
			if res.err != nil && !errors.Is(res.err, ports.ErrPlaceNotFound) {
				// Degraded places source: proceed without attractions.
				log.Printf("search_id=%s op=search.collect attraction lookup degraded: %v", obs.SearchID(ctx), res.err)
				continue
			}
			data.pois = res.pois
		}
	}

	data.route = s.routeOrEstimate(ctx, data.origin.Location, data.dest.Location)
	data.popular = len(data.pois) >= s.params.PopularPOICount
	return data, nil
}

// routeOrEstimate asks the routing backend for the road route and falls back
// to straight-line distance with a road correction factor when the backend
// is degraded. The search never fails on routing.
func (s *Searcher) routeOrEstimate(ctx context.Context, origin, dest domain.Coordinates) ports.RouteResult {
	route, err := s.routes.Route(ctx, origin, dest)
	if err == nil {
		return route
	}

	log.Printf("search_id=%s op=search.route fallback to straight-line estimate: %v", obs.SearchID(ctx), err)
	km := origin.DistanceKm(dest) * s.params.RoadCorrection
	return ports.RouteResult{
		DistanceKm:      km,
		DurationMinutes: int(math.Round(km / s.params.FallbackSpeedKmh * 60)),
	}
}

// buildPool turns the collected data into the bounded option sets consumed
// by candidate generation. Attractions are normalized into canonical options
// and tour-ordered before bundling.
func (s *Searcher) buildPool(ctx context.Context, req domain.TravelRequest, data collectedData) OptionPool {
	pool := OptionPool{
		Stays:       s.buildStays(req, data),
		Attractions: s.buildAttractions(ctx, req, data),
	}

	outboundDepart := dayAt(req.StartDate, outboundHour)
	returnDepart := dayAt(req.StartDate.AddDate(0, 0, req.DurationDays), returnHour)

	for _, mode := range RecommendModes(data.route.DistanceKm) {
		cost := TransportCost(data.route.DistanceKm, mode)
		minutes := TransportDuration(data.route.DistanceKm, mode)

		pool.Outbound = append(pool.Outbound, domain.TransportOption{
			Mode:            mode,
			Origin:          data.origin.DisplayName,
			Destination:     data.dest.DisplayName,
			Cost:            cost,
			DurationMinutes: minutes,
			DepartAt:        outboundDepart,
			ArriveAt:        outboundDepart.Add(time.Duration(minutes) * time.Minute),
		})
		pool.Return = append(pool.Return, domain.TransportOption{
			Mode:            mode,
			Origin:          data.dest.DisplayName,
			Destination:     data.origin.DisplayName,
			Cost:            cost,
			DurationMinutes: minutes,
			DepartAt:        returnDepart,
			ArriveAt:        returnDepart.Add(time.Duration(minutes) * time.Minute),
		})
	}

	return pool
}

var stayGrades = []struct {
	grade  domain.Grade
	rating float64
	tags   []string
}{
	{domain.GradeBudget, 3.5, []string{"budget", "local"}},
	{domain.GradeStandard, 4.2, []string{"standard", "family"}},
	{domain.GradeLuxury, 4.8, []string{"luxury", "resort"}},
}

func (s *Searcher) buildStays(req domain.TravelRequest, data collectedData) []domain.AccommodationOption {
	stays := make([]domain.AccommodationOption, 0, len(stayGrades))
	for _, g := range stayGrades {
		stays = append(stays, domain.AccommodationOption{
			Name:         fmt.Sprintf("%s stay in %s", capitalize(string(g.grade)), data.dest.DisplayName),
			Location:     data.dest.DisplayName,
			CostPerNight: NightlyRate(g.grade, data.popular),
			Rating:       g.rating,
			Tags:         g.tags,
		})
	}
	return stays
}

// buildAttractions normalizes raw attraction records into canonical options
// and orders them with the tour optimizer (hotel as both start and end).
// Stops that do not fit the sightseeing time budget are dropped by the
// optimizer, lowest priority first.
func (s *Searcher) buildAttractions(ctx context.Context, req domain.TravelRequest, data collectedData) []domain.AttractionOption {
	if len(data.pois) == 0 {
		return nil
	}

	ordered := s.orderPOIs(ctx, req, data)

	options := make([]domain.AttractionOption, 0, len(ordered))
	for _, poi := range ordered {
		options = append(options, domain.AttractionOption{
			Name:         poi.Name,
			Location:     data.dest.DisplayName,
			EntranceFee:  AttractionFee(primaryCategory(poi.Categories), poi.Popularity),
			VisitMinutes: attractionVisitMinutes,
			Tags:         poi.Categories,
			Rating:       poi.Popularity,
		})
	}
	return options
}

func (s *Searcher) orderPOIs(ctx context.Context, req domain.TravelRequest, data collectedData) []ports.AttractionInfo {
	if len(data.pois) < 2 {
		return data.pois
	}

	// Waypoint names carry the POI index so the ordered tour can be mapped
	// back even when attraction names collide.
	base := Waypoint{Name: "base", Coord: data.dest.Location}
	waypoints := make([]Waypoint, len(data.pois))
	for i, poi := range data.pois {
		waypoints[i] = Waypoint{
			Name:     strconv.Itoa(i),
			Coord:    poi.Location,
			Priority: poiPriority(poi, req.Preferences),
		}
	}

	tour, err := OptimizeTour(base, base, waypoints, TourBudget{
		AvgSpeedKmh:  s.params.TourSpeedKmh,
		DwellMinutes: s.params.StopDwellMinutes,
		MaxMinutes:   s.params.TourMinutesPerDay * req.DurationDays,
	})
	if err != nil {
		log.Printf("search_id=%s op=search.tour keeping popularity order: %v", obs.SearchID(ctx), err)
		return data.pois
	}

	ordered := make([]ports.AttractionInfo, 0, len(tour.Order))
	for _, wp := range tour.Order[1 : len(tour.Order)-1] {
		i, err := strconv.Atoi(wp.Name)
		if err != nil {
			continue
		}
		ordered = append(ordered, data.pois[i])
	}
	return ordered
}

// poiPriority ranks a POI by popularity with a bonus when one of its
// categories matches a request preference.
func poiPriority(poi ports.AttractionInfo, preferences []string) float64 {
	priority := poi.Popularity
	for _, pref := range preferences {
		pref = strings.ToLower(pref)
		for _, cat := range poi.Categories {
			if strings.Contains(strings.ToLower(cat), pref) {
				return priority + 2
			}
		}
	}
	return priority
}

func primaryCategory(categories []string) string {
	if len(categories) == 0 {
		return ""
	}
	return categories[0]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func dayAt(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}
