// Package metrics wraps a dedicated Prometheus registry behind name-keyed
// registration and recording helpers, so routes can bump metrics without
// holding collector handles.
package metrics

import (
	"github.com/mealmajor/accountd/internal/interfaces"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a name-keyed Prometheus metrics collector.
type Metrics struct {
	Registry   *prometheus.Registry
	counters   map[string]prometheus.Counter
	histograms map[string]prometheus.Histogram
	gauges     map[string]prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with its own registry.
func NewMetrics(serviceName string) interfaces.Metrics {
	return &Metrics{
		Registry:   prometheus.NewRegistry(),
		counters:   make(map[string]prometheus.Counter),
		histograms: make(map[string]prometheus.Histogram),
		gauges:     make(map[string]prometheus.Gauge),
	}
}

// GetRegistry returns the Prometheus registry.
func (m *Metrics) GetRegistry() *prometheus.Registry {
	return m.Registry
}

// RegisterCounter registers a new counter metric.
func (m *Metrics) RegisterCounter(name, help string) {
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: name,
		Help: help,
	})
	m.Registry.MustRegister(counter)
	m.counters[name] = counter
}

// RegisterHistogram registers a new histogram metric.
func (m *Metrics) RegisterHistogram(name, help string, buckets []float64) {
	histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    name,
		Help:    help,
		Buckets: buckets,
	})
	m.Registry.MustRegister(histogram)
	m.histograms[name] = histogram
}

// RegisterGauge registers a new gauge metric.
func (m *Metrics) RegisterGauge(name, help string) {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name,
		Help: help,
	})
	m.Registry.MustRegister(gauge)
	m.gauges[name] = gauge
}

// IncCounter increments a counter by 1. Unknown names are ignored.
func (m *Metrics) IncCounter(name string) {
	if counter, ok := m.counters[name]; ok {
		counter.Inc()
	}
}

// AddCounter adds a value to a counter.
func (m *Metrics) AddCounter(name string, value float64) {
	if counter, ok := m.counters[name]; ok {
		counter.Add(value)
	}
}

// ObserveHistogram observes a value in a histogram.
func (m *Metrics) ObserveHistogram(name string, value float64) {
	if histogram, ok := m.histograms[name]; ok {
		histogram.Observe(value)
	}
}

// SetGauge sets a gauge to a specific value.
func (m *Metrics) SetGauge(name string, value float64) {
	if gauge, ok := m.gauges[name]; ok {
		gauge.Set(value)
	}
}

// IncGauge increments a gauge by 1.
func (m *Metrics) IncGauge(name string) {
	if gauge, ok := m.gauges[name]; ok {
		gauge.Inc()
	}
}

// DecGauge decrements a gauge by 1.
func (m *Metrics) DecGauge(name string) {
	if gauge, ok := m.gauges[name]; ok {
		gauge.Dec()
	}
}
