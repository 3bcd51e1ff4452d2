package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "helpmynew"

// Metrics owns a registry so that every instance can be created in tests
// without colliding with the process-wide default registerer.
type Metrics struct {
	Registry *prometheus.Registry

	httpInFlight         prometheus.Gauge
	httpRequests         *prometheus.CounterVec
	httpDuration         *prometheus.HistogramVec
	requestTransitions   *prometheus.CounterVec
	paymentFacts         *prometheus.CounterVec
	paymentMismatches    *prometheus.CounterVec
	reconciliationWarns  *prometheus.CounterVec
	webhookRejections    *prometheus.CounterVec
	gatewayDuration      *prometheus.HistogramVec
	sweeperRuns          *prometheus.CounterVec
	sweeperDuration      prometheus.Histogram
	messagePublishErrors prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "path"}),
		requestTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "requests",
			Name:      "transitions_total",
			Help:      "Service request status transitions by origin and result.",
		}, []string{"from", "to", "result"}),
		paymentFacts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "facts_total",
			Help:      "Payment facts applied, by source and outcome.",
		}, []string{"source", "outcome"}),
		paymentMismatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "mismatches_total",
			Help:      "Payment facts whose amount or currency differ from the transaction.",
		}, []string{"source"}),
		reconciliationWarns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "reconciliation_warnings_total",
			Help:      "Settled payments whose request could not be completed.",
		}, []string{"reason"}),
		webhookRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "webhook_rejections_total",
			Help:      "Webhook deliveries rejected before reaching reconciliation.",
		}, []string{"reason"}),
		gatewayDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "call_duration_seconds",
			Help:      "Duration of payment gateway calls.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 11),
		}, []string{"operation", "result"}),
		sweeperRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sweeper",
			Name:      "runs_total",
			Help:      "Pending payment sweeper runs by result.",
		}, []string{"result"}),
		sweeperDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sweeper",
			Name:      "run_duration_seconds",
			Help:      "Duration of pending payment sweeper runs.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		messagePublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "messages",
			Name:      "publish_errors_total",
			Help:      "Messages stored but not handed to the delivery queue.",
		}),
	}

	m.Registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.requestTransitions,
		m.paymentFacts,
		m.paymentMismatches,
		m.reconciliationWarns,
		m.webhookRejections,
		m.gatewayDuration,
		m.sweeperRuns,
		m.sweeperDuration,
		m.messagePublishErrors,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

func (m *Metrics) IncInFlight() {
	if m == nil {
		return
	}
	m.httpInFlight.Inc()
}

func (m *Metrics) DecInFlight() {
	if m == nil {
		return
	}
	m.httpInFlight.Dec()
}

func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordTransition(from, to, result string) {
	if m == nil {
		return
	}
	m.requestTransitions.WithLabelValues(from, to, result).Inc()
}

func (m *Metrics) RecordPaymentFact(source, outcome string) {
	if m == nil {
		return
	}
	m.paymentFacts.WithLabelValues(source, outcome).Inc()
}

func (m *Metrics) RecordPaymentMismatch(source string) {
	if m == nil {
		return
	}
	m.paymentMismatches.WithLabelValues(source).Inc()
}

func (m *Metrics) RecordReconciliationWarning(reason string) {
	if m == nil {
		return
	}
	m.reconciliationWarns.WithLabelValues(reason).Inc()
}

func (m *Metrics) RecordWebhookRejection(reason string) {
	if m == nil {
		return
	}
	m.webhookRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveGatewayCall(operation string, success bool, duration time.Duration) {
	if m == nil {
		return
	}
	result := "error"
	if success {
		result = "ok"
	}
	m.gatewayDuration.WithLabelValues(operation, result).Observe(duration.Seconds())
}

func (m *Metrics) RecordSweeperRun(result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.sweeperRuns.WithLabelValues(result).Inc()
	m.sweeperDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordMessagePublishError() {
	if m == nil {
		return
	}
	m.messagePublishErrors.Inc()
}
