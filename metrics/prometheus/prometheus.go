// Package prometheus provides a Prometheus implementation of metrics.Metrics.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/viant/stringify/metrics"
)

type cacheMetrics struct {
	converterHits   prometheus.Counter
	converterMisses *prometheus.CounterVec
	dateHits        prometheus.Counter
	dateMisses      prometheus.Counter
	dateResets      prometheus.Counter
	dateResetSize   prometheus.Gauge
}

// NewMetrics creates Prometheus metrics registered with reg
func NewMetrics(reg prometheus.Registerer) metrics.Metrics {
	m := &cacheMetrics{
		converterHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stringify_converter_cache_hits_total",
			Help: "Total number of converters served from cache",
		}),
		converterMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stringify_converter_cache_misses_total",
			Help: "Total number of classified types",
		}, []string{"strategy"}),
		dateHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stringify_date_cache_hits_total",
			Help: "Total number of dates served from cache",
		}),
		dateMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stringify_date_cache_misses_total",
			Help: "Total number of rendered dates",
		}),
		dateResets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stringify_date_cache_resets_total",
			Help: "Total number of date cache resets",
		}),
		dateResetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stringify_date_cache_reset_size",
			Help: "Date cache size that triggered the last reset",
		}),
	}
	reg.MustRegister(
		m.converterHits,
		m.converterMisses,
		m.dateHits,
		m.dateMisses,
		m.dateResets,
		m.dateResetSize,
	)
	return m
}

func (m *cacheMetrics) ConverterCacheHit() {
	m.converterHits.Inc()
}

func (m *cacheMetrics) ConverterCacheMiss(strategy string) {
	m.converterMisses.WithLabelValues(strategy).Inc()
}

func (m *cacheMetrics) DateCacheHit() {
	m.dateHits.Inc()
}

func (m *cacheMetrics) DateCacheMiss() {
	m.dateMisses.Inc()
}

func (m *cacheMetrics) DateCacheReset(size int) {
	m.dateResets.Inc()
	m.dateResetSize.Set(float64(size))
}
