package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rebuildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recommender_rebuilds_total",
		Help: "Number of index rebuild attempts by result.",
	}, []string{"result"})

	rebuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommender_rebuild_duration_seconds",
		Help:    "Wall time spent fitting the recommendation index.",
		Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
	})

	indexedProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "recommender_indexed_products",
		Help: "Products in the live recommendation index.",
	})

	indexedFeatures = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "recommender_indexed_features",
		Help: "Vocabulary size of the live term model.",
	})

	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recommender_queries_total",
		Help: "Recommendation queries served by operation.",
	}, []string{"operation"})
)
