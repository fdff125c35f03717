package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the engine. The
	// embedding application decides whether and where to expose it.
	Registry = prometheus.NewRegistry()

	// SearchIterations counts generate/score cycles across all searches.
	SearchIterations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "travel_search_iterations_total", Help: "Total search iterations performed."},
	)

	// CandidatesGenerated counts itinerary candidates produced before scoring.
	CandidatesGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "travel_candidates_generated_total", Help: "Total itinerary candidates generated."},
	)

	// SearchOutcomes counts finished searches by outcome.
	SearchOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "travel_searches_total", Help: "Completed searches by outcome."},
		[]string{"outcome"},
	)

	// CacheRequests counts lookup-cache reads by lookup kind and hit/miss.
	CacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "travel_lookup_cache_requests_total", Help: "Lookup cache reads by kind and result."},
		[]string{"kind", "result"},
	)
)

// RegisterDefault registers the engine collectors on Registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(SearchIterations)
		Registry.MustRegister(CandidatesGenerated)
		Registry.MustRegister(SearchOutcomes)
		Registry.MustRegister(CacheRequests)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
