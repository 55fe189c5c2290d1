// Package metrics exposes prometheus collectors for link resolution runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransitiveSearches counts finished searches, labelled by outcome.
	TransitiveSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "svlinks_transitive_searches_total",
			Help: "Total number of transitive link searches by outcome",
		},
		[]string{"outcome"},
	)

	// SearchIterations measures how many loop iterations a search used.
	// The top bucket sits at the default iteration ceiling.
	SearchIterations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "svlinks_transitive_search_iterations",
			Help:    "Loop iterations used per transitive link search",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	// AssemblyLinks counts assembly links built across runs.
	AssemblyLinks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "svlinks_assembly_links_total",
			Help: "Total number of assembly links built",
		},
	)
)
