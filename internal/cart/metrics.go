package cart

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// cartMutations counts persisted cart writes.
	cartMutations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Total number of persisted cart mutations",
	})

	// cartLines tracks the line count after the latest mutation.
	cartLines = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cart_lines",
		Help: "Number of cart lines after the latest mutation",
	})
)

func recordMutation(lines int) {
	cartMutations.Inc()
	cartLines.Set(float64(lines))
}
