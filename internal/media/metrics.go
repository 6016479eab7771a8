package media

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "media_uploads_total",
		Help: "Image uploads by outcome",
	}, []string{"outcome"})

	uploadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "media_upload_bytes",
		Help:    "Size of stored images in bytes",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	})
)

func recordUpload(outcome string, bytes int) {
	uploadsTotal.WithLabelValues(outcome).Inc()
	if outcome == "stored" {
		uploadBytes.Observe(float64(bytes))
	}
}
