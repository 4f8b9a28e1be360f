package capi

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	handlesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "posintset", Name: "handles_created_total", Help: "Sets created through the handle API",
	})
	handlesFinalized = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "posintset", Name: "handles_finalized_total", Help: "Sets released through the handle API",
	})
	invalidHandleCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "posintset", Name: "invalid_handle_calls_total", Help: "Calls made with an unknown or released handle",
	}, []string{"op"})
	rejectedValues = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "posintset", Name: "rejected_values_total", Help: "Reserved values passed to push",
	})
	// Gauges (scrape-time via GaugeFunc).
	liveHandles = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "posintset", Name: "live_handles", Help: "Sets created and not yet finalized",
	}, func() float64 {
		return float64(sets.len())
	})
)

// Register registers the handle API collectors with reg.
// A steadily growing live_handles gauge points at a host that never finalizes.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		handlesCreated, handlesFinalized, invalidHandleCalls, rejectedValues, liveHandles,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
