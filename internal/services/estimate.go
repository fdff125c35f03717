package services

import (
	"math"
	"strings"

	"travel-route-service/internal/domain"
)

// Deterministic cost and duration formulas. All functions are total over
// their documented domain (non-negative distance, defined mode/category);
// undefined modes are rejected at the boundary before these run.

// Per-kilometer fares in whole currency units.
var modeRatePerKm = map[domain.Mode]float64{
	domain.ModeFlight: 150,
	domain.ModeTrain:  100,
	domain.ModeBus:    60,
	domain.ModeCar:    80,
	domain.ModeSubway: 20,
	domain.ModeWalk:   0,
}

// Cruising speeds in km/h.
var modeSpeedKmh = map[domain.Mode]float64{
	domain.ModeFlight: 700,
	domain.ModeTrain:  150,
	domain.ModeBus:    70,
	domain.ModeCar:    80,
	domain.ModeSubway: 40,
	domain.ModeWalk:   5,
}

// Fixed boarding/wait overhead in minutes.
var modeOverheadMinutes = map[domain.Mode]int{
	domain.ModeFlight: 120,
	domain.ModeTrain:  30,
	domain.ModeBus:    20,
	domain.ModeSubway: 10,
	domain.ModeCar:    0,
	domain.ModeWalk:   0,
}

const flightSurcharge = 30000

// Long-haul discount brackets. Discounts apply marginally (like tax
// brackets): kilometers beyond each threshold are billed at the discounted
// rate. A flat multiplier would make the fare drop at each threshold, which
// breaks the cost-grows-with-distance invariant.
var distanceBrackets = []struct {
	fromKm float64
	factor float64
}{
	{0, 1.0},
	{100, 0.95},
	{300, 0.90},
	{500, 0.85},
}

// TransportCost returns the fare for traveling distanceKm by mode, rounded
// to the nearest currency unit. Monotonically non-decreasing in distance.
func TransportCost(distanceKm float64, mode domain.Mode) int {
	rate := modeRatePerKm[mode]

	var fare float64
	for i, b := range distanceBrackets {
		upper := math.Inf(1)
		if i+1 < len(distanceBrackets) {
			upper = distanceBrackets[i+1].fromKm
		}
		if distanceKm <= b.fromKm {
			break
		}
		span := math.Min(distanceKm, upper) - b.fromKm
		fare += rate * span * b.factor
	}

	if mode == domain.ModeFlight {
		fare += flightSurcharge
	}
	return int(math.Round(fare))
}

// TransportDuration returns travel time in minutes for distanceKm by mode:
// cruising time plus the fixed boarding/wait overhead.
func TransportDuration(distanceKm float64, mode domain.Mode) int {
	speed := modeSpeedKmh[mode]
	if speed <= 0 {
		return modeOverheadMinutes[mode]
	}
	return int(math.Round(distanceKm/speed*60)) + modeOverheadMinutes[mode]
}

// Base nightly rates by grade.
var gradeNightlyRate = map[domain.Grade]float64{
	domain.GradeBudget:   50000,
	domain.GradeStandard: 100000,
	domain.GradeLuxury:   200000,
}

const (
	popularPremium   = 1.3
	longStayDiscount = 0.95
	longStayNights   = 3
)

// NightlyRate returns the nightly rate for a grade, including the
// popular-destination premium.
func NightlyRate(grade domain.Grade, popular bool) int {
	rate := gradeNightlyRate[grade]
	if popular {
		rate *= popularPremium
	}
	return int(math.Round(rate))
}

// StayCost prices a full stay from a nightly rate, applying the long-stay
// discount for stays of three nights or more.
func StayCost(costPerNight, nights int) int {
	total := float64(costPerNight) * float64(nights)
	if nights >= longStayNights {
		total *= longStayDiscount
	}
	return int(math.Round(total))
}

// AccommodationCost prices a full stay by grade, nights and destination
// popularity.
func AccommodationCost(grade domain.Grade, nights int, popular bool) int {
	return StayCost(NightlyRate(grade, popular), nights)
}

// Entrance fee tiers in currency units.
const (
	feeFree     = 0
	feeCheap    = 3000
	feeStandard = 10000
	feePremium  = 25000
)

var (
	freeCategories     = []string{"park", "beach", "street", "market", "square"}
	cheapCategories    = []string{"temple", "garden", "village"}
	standardCategories = []string{"museum", "palace", "gallery"}
	premiumCategories  = []string{"aquarium", "tower", "resort"}
)

// AttractionFee maps an attraction category and popularity rating to an
// entrance fee tier. Free-category keywords short-circuit to zero; when no
// keyword matches, the popularity rating (0..5) picks a tier.
func AttractionFee(category string, popularity float64) int {
	cat := strings.ToLower(category)

	match := func(keywords []string) bool {
		for _, kw := range keywords {
			if strings.Contains(cat, kw) {
				return true
			}
		}
		return false
	}

	switch {
	case match(freeCategories):
		return feeFree
	case match(cheapCategories):
		return feeCheap
	case match(standardCategories):
		return feeStandard
	case match(premiumCategories):
		return feePremium
	}

	switch {
	case popularity >= 4.5:
		return feePremium
	case popularity >= 3.5:
		return feeStandard
	default:
		return feeCheap
	}
}

// Mode applicability thresholds in kilometers.
const (
	flightMinKm = 300
	trainMinKm  = 50
	busMinKm    = 30
	carMaxKm    = 500
)

// RecommendModes returns every transport mode applicable to the given
// distance, in a fixed order. Candidate generation explores all of them.
func RecommendModes(distanceKm float64) []domain.Mode {
	var modes []domain.Mode
	if distanceKm >= flightMinKm {
		modes = append(modes, domain.ModeFlight)
	}
	if distanceKm >= trainMinKm {
		modes = append(modes, domain.ModeTrain)
	}
	if distanceKm >= busMinKm {
		modes = append(modes, domain.ModeBus)
	}
	if distanceKm <= carMaxKm {
		modes = append(modes, domain.ModeCar)
	}
	return modes
}
