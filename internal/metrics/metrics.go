package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeConfig       = "config_error"
	OutcomeEmptyResult  = "empty_result"
	OutcomeProvider     = "provider_error"
)

// Recorder tracks prompt requests on its own registry so several instances
// (tests, the serve command) never collide on the global one.
type Recorder struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lofistudio",
			Name:      "prompt_requests_total",
			Help:      "Prompt generation requests by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lofistudio",
			Name:      "prompt_request_duration_seconds",
			Help:      "Latency of completion API calls.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}),
	}
	r.registry.MustRegister(r.requests, r.duration)
	return r
}

// Observe counts one request. Duration is only recorded for requests that
// reached the completion API.
func (r *Recorder) Observe(outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(outcome).Inc()
	if d > 0 {
		r.duration.Observe(d.Seconds())
	}
}

func (r *Recorder) Requests(outcome string) prometheus.Counter {
	return r.requests.WithLabelValues(outcome)
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
