package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"freight-booking/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	GatewayRetriesTotal    prometheus.Counter `name:"gateway_retries_total"`
	Booking                *metrics.Booking
	HTTP                   *metrics.HTTP
}

// provideMetrics registers collectors with the default registerer,
// reusing collectors that are already registered.
func provideMetrics() (metricsOut, error) {
	reg := prometheus.DefaultRegisterer
	var (
		out metricsOut
		err error
	)

	if out.RateLimitExceededTotal, err = register(reg, "rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.GatewayRetriesTotal, err = register(reg, "gateway_retries_total", metrics.NewGatewayRetriesTotal()); err != nil {
		return metricsOut{}, err
	}

	b := metrics.NewBooking()
	if b.ShipmentsCreated, err = register(reg, "shipments_created_total", b.ShipmentsCreated); err != nil {
		return metricsOut{}, err
	}
	if b.PaymentRequestsFailed, err = register(reg, "payment_requests_failed_total", b.PaymentRequestsFailed); err != nil {
		return metricsOut{}, err
	}
	if b.Callbacks, err = register(reg, "payment_callbacks_total", b.Callbacks); err != nil {
		return metricsOut{}, err
	}
	if b.NotificationsFailed, err = register(reg, "notifications_failed_total", b.NotificationsFailed); err != nil {
		return metricsOut{}, err
	}
	out.Booking = b

	h := metrics.NewHTTP()
	if h.Requests, err = register(reg, "http_requests_total", h.Requests); err != nil {
		return metricsOut{}, err
	}
	if h.Duration, err = register(reg, "http_request_duration_seconds", h.Duration); err != nil {
		return metricsOut{}, err
	}
	out.HTTP = h

	return out, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, name string, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}
