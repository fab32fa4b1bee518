// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "splitter"

// Allocation sources.
const (
	SourceCache    = "cache"
	SourceComputed = "computed"
)

// Metrics holds the service collectors.
type Metrics struct {
	Allocations        *prometheus.CounterVec
	AllocationDuration prometheus.Histogram
	RPCRequests        *prometheus.CounterVec
	RPCDuration        *prometheus.HistogramVec
	WatchStreams       prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Allocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocations_total",
			Help:      "Allocations served, by source.",
		}, []string{"source"}),
		AllocationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "allocation_duration_seconds",
			Help:      "Time to load a snapshot and compute its allocation.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPCs handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency, by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		WatchStreams: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "watch_streams",
			Help:      "Open allocation watch streams.",
		}),
	}
	reg.MustRegister(m.Allocations, m.AllocationDuration, m.RPCRequests, m.RPCDuration, m.WatchStreams)
	return m
}

// NewNop returns collectors that are not registered anywhere.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
