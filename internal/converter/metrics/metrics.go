package metrics

import (
	"time"

	"updl-converter/internal/converter/trace"
)

// RecordConversion records a finished conversion. kind is the result kind
// (space, multi_scene, empty).
func (r *Registry) RecordConversion(kind string, duration time.Duration, scenes int) {
	r.ConversionsTotal.WithLabelValues(kind).Inc()
	r.ConversionDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if scenes > 0 {
		r.ScenesPerFlow.Observe(float64(scenes))
	}
}

// RecordFailure records a rejected document and the stage that rejected it
func (r *Registry) RecordFailure(op string, duration time.Duration) {
	r.ConversionFailures.WithLabelValues(op).Inc()
	r.ConversionsTotal.WithLabelValues("error").Inc()
	r.ConversionDuration.WithLabelValues("error").Observe(duration.Seconds())
}

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// Trace lets the registry subscribe to converter events.
func (r *Registry) Trace(ev trace.Event) {
	switch ev.Name {
	case trace.GraphDecoded:
		if v, ok := ev.Value("nodes"); ok {
			if n, ok := v.(int); ok {
				r.FlowNodes.Observe(float64(n))
			}
		}
	case trace.ChainCycle:
		r.ChainCycles.Inc()
	}
}
