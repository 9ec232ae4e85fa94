package interfaces

import "github.com/prometheus/client_golang/prometheus"

// Metrics is the registration and recording surface for service metrics.
type Metrics interface {
	GetRegistry() *prometheus.Registry
	// RegisterCounter registers a new counter metric.
	RegisterCounter(name, help string)
	// RegisterHistogram registers a new histogram metric.
	RegisterHistogram(name, help string, buckets []float64)
	// RegisterGauge registers a new gauge metric.
	RegisterGauge(name, help string)
	IncCounter(name string)
	AddCounter(name string, value float64)
	ObserveHistogram(name string, value float64)
	SetGauge(name string, value float64)
	IncGauge(name string)
	DecGauge(name string)
}
