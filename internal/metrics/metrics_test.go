package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Allocations.WithLabelValues(SourceComputed).Inc()
	m.Allocations.WithLabelValues(SourceCache).Add(2)
	m.RPCRequests.WithLabelValues("/splitter.v1.ReceiptService/GetReceipt", "ok").Inc()
	m.AllocationDuration.Observe(0.01)
	m.RPCDuration.WithLabelValues("/splitter.v1.ReceiptService/GetReceipt").Observe(0.02)
	m.WatchStreams.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Allocations.WithLabelValues(SourceComputed)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Allocations.WithLabelValues(SourceCache)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WatchStreams))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"splitter_allocations_total",
		"splitter_allocation_duration_seconds",
		"splitter_rpc_requests_total",
		"splitter_rpc_duration_seconds",
		"splitter_watch_streams",
	}, names)
}

func TestNew_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
