package pricing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// couponResolutions tracks successful applications by outcome.
	couponResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_coupon_resolutions_total",
		Help: "Total number of successful coupon applications by outcome",
	}, []string{"outcome"})

	// couponRejections tracks failed applications by reason.
	couponRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_coupon_rejections_total",
		Help: "Total number of rejected coupon applications by reason",
	}, []string{"reason"})
)

func recordResolution(outcome Outcome, rejection string) {
	if rejection != "" {
		couponRejections.WithLabelValues(rejection).Inc()
		return
	}
	couponResolutions.WithLabelValues(string(outcome)).Inc()
}
