package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CatalogMetrics records catalog cache load outcomes.
type CatalogMetrics struct {
	duration      prometheus.Histogram
	success       prometheus.Counter
	fallback      prometheus.Counter
	invalidations prometheus.Counter
	inflight      prometheus.Gauge
}

// NewCatalogMetrics registers the catalog metrics on the provided registerer.
func NewCatalogMetrics(reg prometheus.Registerer) *CatalogMetrics {
	if reg == nil {
		return &CatalogMetrics{}
	}
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_load_duration_seconds",
		Help:    "Duration of catalog loads in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	success := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_load_success",
		Help: "Catalog loads that merged remote and seed data.",
	})
	fallback := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_load_fallback",
		Help: "Catalog loads that degraded to seed-only data.",
	})
	invalidations := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_invalidations",
		Help: "Manual catalog cache invalidations.",
	})
	inflight := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_load_inflight",
		Help: "Whether a catalog load is currently running.",
	})
	reg.MustRegister(duration, success, fallback, invalidations, inflight)
	return &CatalogMetrics{
		duration:      duration,
		success:       success,
		fallback:      fallback,
		invalidations: invalidations,
		inflight:      inflight,
	}
}

// ObserveLoad records a completed load and whether it fell back to seed data.
func (c *CatalogMetrics) ObserveLoad(duration time.Duration, fellBack bool) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.Observe(duration.Seconds())
	if fellBack {
		c.fallback.Inc()
		return
	}
	c.success.Inc()
}

// IncInvalidation counts a manual cache invalidation.
func (c *CatalogMetrics) IncInvalidation() {
	if c == nil || c.invalidations == nil {
		return
	}
	c.invalidations.Inc()
}

// LoadStarted marks a load in flight; the returned func clears the gauge.
func (c *CatalogMetrics) LoadStarted() func() {
	if c == nil || c.inflight == nil {
		return func() {}
	}
	c.inflight.Inc()
	return func() { c.inflight.Dec() }
}
