package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

func TestDispatchMetrics_Publish(t *testing.T) {
	m := NewDispatchMetricsWithRegisterer(prometheus.NewRegistry())
	id := kernel.NewUUID()

	err := m.Publish(t.Context(), []order.Event{
		{Kind: order.EventOrderPlaced, OrderID: id},
		{Kind: order.EventStatusChanged, OrderID: id},
		{Kind: order.EventStatusChanged, OrderID: id},
	})

	require.NoError(t, err)
	assert.InDelta(t, 1, testutil.ToFloat64(m.orderEvents.WithLabelValues("order_placed")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.orderEvents.WithLabelValues("status_changed")), 0)
}

func TestDispatchMetrics_ObserveSweep(t *testing.T) {
	m := NewDispatchMetricsWithRegisterer(prometheus.NewRegistry())

	m.ObserveSweep("auto_assign", 3, 1, 0, 120*time.Millisecond)
	m.ObserveSweep("auto_assign", 2, 0, 1, 80*time.Millisecond)

	assert.InDelta(t, 5, testutil.ToFloat64(m.sweepOutcomes.WithLabelValues("auto_assign", "processed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.sweepOutcomes.WithLabelValues("auto_assign", "skipped")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.sweepOutcomes.WithLabelValues("auto_assign", "failed")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.sweepDuration))
}

func TestNewDispatchMetricsWithRegisterer(t *testing.T) {
	t.Run("should reuse collectors registered earlier", func(t *testing.T) {
		registry := prometheus.NewRegistry()
		first := NewDispatchMetricsWithRegisterer(registry)
		second := NewDispatchMetricsWithRegisterer(registry)

		require.NoError(t, first.Publish(t.Context(), []order.Event{{Kind: order.EventRefundDenied}}))

		assert.InDelta(t, 1, testutil.ToFloat64(second.orderEvents.WithLabelValues("refund_denied")), 0)
	})
}
