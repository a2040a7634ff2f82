package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(productLookupsTotal, productLookupLatencyMs)
}

var (
	productLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_lookups_total",
			Help: "Total number of product lookups by outcome.",
		},
		[]string{"outcome"}, // 'ok', 'not_found', 'error'
	)

	productLookupLatencyMs = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "product_lookup_latency_ms",
			Help:    "Upstream product lookup latency distribution in milliseconds.",
			Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000},
		},
	)
)

func IncProductLookup(outcome string) {
	productLookupsTotal.WithLabelValues(outcome).Inc()
}

func ObserveProductLookupLatency(ms float64) {
	productLookupLatencyMs.Observe(ms)
}
