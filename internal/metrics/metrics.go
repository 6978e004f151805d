package metrics

import "github.com/prometheus/client_golang/prometheus"

// Callback outcome label values.
const (
	OutcomeConfirmed         = "confirmed"
	OutcomeConfirmedNoDriver = "confirmed_no_driver"
	OutcomePaymentFailed     = "payment_failed"
	OutcomeDuplicate         = "duplicate"
	OutcomeUnknown           = "unknown_shipment"
)

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by gateways
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by gateways",
	})
}

// Booking groups the orchestrator counters.
type Booking struct {
	ShipmentsCreated      prometheus.Counter
	PaymentRequestsFailed prometheus.Counter
	Callbacks             *prometheus.CounterVec
	NotificationsFailed   prometheus.Counter
}

// NewBooking creates booking counters; they are not registered.
func NewBooking() *Booking {
	return &Booking{
		ShipmentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shipments_created_total",
			Help: "Total number of shipments created",
		}),
		PaymentRequestsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "payment_requests_failed_total",
			Help: "Total number of payment requests that failed after the shipment was stored",
		}),
		Callbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "payment_callbacks_total",
			Help: "Total number of payment callbacks by outcome",
		}, []string{"outcome"}),
		NotificationsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "notifications_failed_total",
			Help: "Total number of notifications that could not be delivered",
		}),
	}
}

// Collectors returns every booking collector for registration.
func (b *Booking) Collectors() []prometheus.Collector {
	return []prometheus.Collector{b.ShipmentsCreated, b.PaymentRequestsFailed, b.Callbacks, b.NotificationsFailed}
}

// Register registers booking collectors with r.
func (b *Booking) Register(r prometheus.Registerer) error {
	for _, c := range b.Collectors() {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// HTTP holds request counters and latency histograms labelled by method, route and status.
type HTTP struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewHTTP creates HTTP collectors; they are not registered.
func NewHTTP() *HTTP {
	labels := []string{"method", "path", "status"}
	return &HTTP{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, labels),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, labels),
	}
}

// Collectors returns HTTP collectors for registration.
func (h *HTTP) Collectors() []prometheus.Collector {
	return []prometheus.Collector{h.Requests, h.Duration}
}
