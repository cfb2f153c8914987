package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	SessionsCreated     prometheus.Counter
	OTPIssued           prometheus.Counter
	OTPMismatches       prometheus.Counter
	DocumentsIssued     prometheus.Counter
	FinalizeFailures    *prometheus.CounterVec
	TraceAppendFailures prometheus.Counter
	RequestDuration     *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return newWith(prometheus.DefaultRegisterer)
}

// NewForTest registers against a private registry so parallel tests do not
// collide on duplicate collector registration.
func NewForTest() *Metrics {
	return newWith(prometheus.NewRegistry())
}

func newWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SessionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "vincula_sessions_created_total",
			Help: "Total number of interactive consent sessions created",
		}),
		OTPIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "vincula_otp_issued_total",
			Help: "Total number of verification codes issued",
		}),
		OTPMismatches: factory.NewCounter(prometheus.CounterOpts{
			Name: "vincula_otp_mismatch_total",
			Help: "Total number of submitted codes that did not match",
		}),
		DocumentsIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "vincula_documents_issued_total",
			Help: "Total number of consent documents issued",
		}),
		FinalizeFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vincula_finalize_failures_total",
			Help: "Finalization failures by stage (render, append, delivery, archive)",
		}, []string{"stage"}),
		TraceAppendFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "vincula_trace_append_failures_total",
			Help: "Traceability log rows that could not be appended",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vincula_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}
