// Package metrics exposes Prometheus collectors for order events and the
// background dispatch sweeps.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"marketplace/internal/core/domain/model/order"
)

type DispatchMetrics struct {
	orderEvents   *prometheus.CounterVec
	sweepOutcomes *prometheus.CounterVec
	sweepDuration *prometheus.HistogramVec
}

func NewDispatchMetrics() *DispatchMetrics {
	return NewDispatchMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func NewDispatchMetricsWithRegisterer(registerer prometheus.Registerer) *DispatchMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &DispatchMetrics{
		orderEvents: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_order_events_total",
			Help: "Total number of committed order events by kind",
		}, []string{"kind"})),
		sweepOutcomes: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_sweep_orders_total",
			Help: "Orders handled by background sweeps by job and outcome",
		}, []string{"job", "outcome"})),
		sweepDuration: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "marketplace_sweep_duration_seconds",
			Help:    "Duration of background sweeps in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"job"})),
	}
}

// Publish counts events; it never fails.
func (m *DispatchMetrics) Publish(_ context.Context, events []order.Event) error {
	for _, e := range events {
		m.orderEvents.WithLabelValues(string(e.Kind)).Inc()
	}
	return nil
}

func (m *DispatchMetrics) ObserveSweep(job string, processed, skipped, failed int, duration time.Duration) {
	m.sweepOutcomes.WithLabelValues(job, "processed").Add(float64(processed))
	m.sweepOutcomes.WithLabelValues(job, "skipped").Add(float64(skipped))
	m.sweepOutcomes.WithLabelValues(job, "failed").Add(float64(failed))
	m.sweepDuration.WithLabelValues(job).Observe(duration.Seconds())
}

func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) C {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector %T already registered with unexpected type", collector))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector %T: %v", collector, err))
	}
	return collector
}
