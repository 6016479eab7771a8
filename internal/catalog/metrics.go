package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// catalogLoads tracks snapshot reads split by cache hit/miss.
	catalogLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_loads_total",
		Help: "Total number of catalog snapshot reads by cache result",
	}, []string{"cache"})

	// catalogLoadErrors tracks failed catalog reads.
	catalogLoadErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_load_errors_total",
		Help: "Total number of catalog load errors",
	})

	// catalogReplacements tracks whole-collection admin writes.
	catalogReplacements = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_replacements_total",
		Help: "Total number of whole-catalog replacements",
	})

	// catalogSize tracks the product count after each replacement.
	catalogSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_products",
		Help: "Number of products in the current catalog",
	})
)

func recordLoad(hit bool) {
	if hit {
		catalogLoads.WithLabelValues("hit").Inc()
	} else {
		catalogLoads.WithLabelValues("miss").Inc()
	}
}

func recordLoadError() {
	catalogLoadErrors.Inc()
}

func recordReplacement(products int) {
	catalogReplacements.Inc()
	catalogSize.Set(float64(products))
}
