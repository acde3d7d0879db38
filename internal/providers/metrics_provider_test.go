package providers

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"daddeck/internal/models"
	"daddeck/internal/services"
	"daddeck/internal/structures"
)

// --- minimal mocks for the gauge sources ---

type metricsTestCollection struct{}

func (m *metricsTestCollection) Snapshot() *models.Collection              { return models.NewCollection() }
func (m *metricsTestCollection) Replace(_ *models.Collection)              {}
func (m *metricsTestCollection) Merge(_ *models.Collection) int            { return 0 }
func (m *metricsTestCollection) AddPacks(_ []*models.Pack)                 {}
func (m *metricsTestCollection) AddTradedCards(_ []*models.Card) string    { return "" }
func (m *metricsTestCollection) RemoveCards(_ []string) bool               { return false }
func (m *metricsTestCollection) Owns(_ []string) bool                      { return false }
func (m *metricsTestCollection) View(_ services.ViewQuery) *services.CollectionView {
	return &services.CollectionView{}
}
func (m *metricsTestCollection) PackCount() int       { return 3 }
func (m *metricsTestCollection) CardCount() int       { return 15 }
func (m *metricsTestCollection) UniqueCardCount() int { return 12 }
func (m *metricsTestCollection) Revision() uint64     { return 0 }

type metricsTestWishlist struct{}

func (m *metricsTestWishlist) Add(_ string) bool    { return false }
func (m *metricsTestWishlist) Remove(_ string) bool { return false }
func (m *metricsTestWishlist) Has(_ string) bool    { return false }
func (m *metricsTestWishlist) List() []string       { return nil }
func (m *metricsTestWishlist) Len() int             { return 2 }
func (m *metricsTestWishlist) Save() error          { return nil }
func (m *metricsTestWishlist) Load() error          { return nil }

func swapRegistry() func() {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	return func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	}
}

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf, &metricsTestCollection{}, &metricsTestWishlist{})
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	// Ensure no-op methods don't panic
	m.IncRequestsTotal("/cards", 200)
	m.ObserveRequestDuration("/cards", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncRateLimited("free")
	m.ObservePersistenceDuration(time.Millisecond)
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	defer swapRegistry()()

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, &metricsTestCollection{}, &metricsTestWishlist{})
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_IncrementCounters(t *testing.T) {
	defer swapRegistry()()

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, &metricsTestCollection{}, &metricsTestWishlist{})

	// These should not panic
	m.IncRequestsTotal("/collection", 200)
	m.IncRequestsTotal("/collection", 404)
	m.ObserveRequestDuration("/collection", 5*time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncRateLimited("free")
	m.ObservePersistenceDuration(100 * time.Millisecond)
}

func TestMetricsProvider_GaugesReadServices(t *testing.T) {
	defer swapRegistry()()

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	NewMetricsProvider(conf, &metricsTestCollection{}, &metricsTestWishlist{})

	families, err := prometheus.DefaultGatherer.Gather()
	assert.NoError(t, err)

	values := make(map[string]float64)
	for _, fam := range families {
		for _, metric := range fam.GetMetric() {
			if metric.GetGauge() != nil {
				values[fam.GetName()] = metric.GetGauge().GetValue()
			}
		}
	}
	assert.Equal(t, float64(3), values["daddeck_packs_total"])
	assert.Equal(t, float64(15), values["daddeck_cards_total"])
	assert.Equal(t, float64(12), values["daddeck_unique_cards_total"])
	assert.Equal(t, float64(2), values["daddeck_wishlist_size"])
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{404, "4xx"},
		{429, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
