package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"daddeck/internal/services"
	"daddeck/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncRateLimited(tier string)
	ObservePersistenceDuration(duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	rateLimited         *prometheus.CounterVec
	persistenceDuration prometheus.Histogram
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncRateLimited(tier string) {
	m.rateLimited.WithLabelValues(tier).Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, collection services.CollectionServiceInterface, wishlist services.WishlistServiceInterface) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "daddeck_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "daddeck_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "daddeck_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "daddeck_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		rateLimited: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "daddeck_rate_limited_total",
			Help: "Total number of rate limited requests",
		}, []string{"tier"}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "daddeck_persistence_duration_seconds",
			Help:    "Duration of snapshot persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "daddeck_packs_total",
		Help: "Current number of packs in the collection",
	}, func() float64 {
		return float64(collection.PackCount())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "daddeck_cards_total",
		Help: "Current number of cards in the collection",
	}, func() float64 {
		return float64(collection.CardCount())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "daddeck_unique_cards_total",
		Help: "Number of distinct card ids ever observed",
	}, func() float64 {
		return float64(collection.UniqueCardCount())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "daddeck_wishlist_size",
		Help: "Current number of wishlisted cards",
	}, func() float64 {
		return float64(wishlist.Len())
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                  {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) IncCacheHits()                                     {}
func (n *noopMetrics) IncCacheMisses()                                   {}
func (n *noopMetrics) IncRateLimited(_ string)                           {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)        {}
