package services

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Params collects the engine's tunable constants. Zero values are never
// used directly; start from DefaultParams and override selectively.
//
// MaxOptionsPerList bounds each input option list before cross-product
// generation. This is a deliberate breadth/runtime trade-off (the product of
// four single-digit lists stays in the low hundreds), not a correctness
// requirement.
type Params struct {
	MaxIterations  int     `yaml:"max_iterations"`
	ScoreThreshold float64 `yaml:"score_threshold"`
	TopN           int     `yaml:"top_n"`

	BudgetTolerance    float64 `yaml:"budget_tolerance"`
	MaxBudgetTolerance float64 `yaml:"max_budget_tolerance"`
	ToleranceRelax     float64 `yaml:"tolerance_relax"`

	MaxOptionsPerList    int `yaml:"max_options_per_list"`
	MaxAttractionsPerDay int `yaml:"max_attractions_per_day"`
	MinTransferMinutes   int `yaml:"min_transfer_minutes"`
	MinStayHoursPerDay   int `yaml:"min_stay_hours_per_day"`

	AttractionRadiusKm float64 `yaml:"attraction_radius_km"`
	PopularPOICount    int     `yaml:"popular_poi_count"`

	CostWeightFloor float64 `yaml:"cost_weight_floor"`
	CostWeightCeil  float64 `yaml:"cost_weight_ceil"`
	PreferenceCeil  float64 `yaml:"preference_ceil"`
	CostWeightStep  float64 `yaml:"cost_weight_step"`
	PreferenceDrift float64 `yaml:"preference_drift"`

	RoadCorrection   float64 `yaml:"road_correction"`
	FallbackSpeedKmh float64 `yaml:"fallback_speed_kmh"`

	TourSpeedKmh      float64 `yaml:"tour_speed_kmh"`
	StopDwellMinutes  int     `yaml:"stop_dwell_minutes"`
	TourMinutesPerDay int     `yaml:"tour_minutes_per_day"`

	CacheTTL time.Duration `yaml:"-"`
}

// DefaultParams returns the engine defaults.
func DefaultParams() Params {
	return Params{
		MaxIterations:  4,
		ScoreThreshold: 0.55,
		TopN:           5,

		BudgetTolerance:    1.0,
		MaxBudgetTolerance: 1.1,
		ToleranceRelax:     0.05,

		MaxOptionsPerList:    5,
		MaxAttractionsPerDay: 2,
		MinTransferMinutes:   30,
		MinStayHoursPerDay:   12,

		AttractionRadiusKm: 30,
		PopularPOICount:    8,

		CostWeightFloor: 0.3,
		CostWeightCeil:  0.7,
		PreferenceCeil:  0.35,
		CostWeightStep:  0.08,
		PreferenceDrift: 0.02,

		RoadCorrection:   1.3,
		FallbackSpeedKmh: 70,

		TourSpeedKmh:      40,
		StopDwellMinutes:  60,
		TourMinutesPerDay: 600,

		CacheTTL: time.Hour,
	}
}

// LoadParams reads a YAML tuning file over the defaults. Fields absent from
// the file keep their default value.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()

	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("load params: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("load params: parse %q: %w", path, err)
	}

	// Durations arrive as strings ("30m", "1h"); yaml cannot decode them
	// into time.Duration directly.
	var raw struct {
		CacheTTL string `yaml:"cache_ttl"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Params{}, fmt.Errorf("load params: parse %q: %w", path, err)
	}
	if raw.CacheTTL != "" {
		ttl, err := time.ParseDuration(raw.CacheTTL)
		if err != nil {
			return Params{}, fmt.Errorf("load params: cache_ttl: %w", err)
		}
		p.CacheTTL = ttl
	}

	return p, nil
}
