package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"freight-booking/internal/http/handlers"
	"freight-booking/internal/http/middleware"
	"freight-booking/internal/http/middleware/ratelimit"
	"freight-booking/internal/logx"
	"freight-booking/internal/metrics"
)

// Handlers groups the HTTP handlers exposed by the service.
type Handlers struct {
	Base      *handlers.Handlers
	Booking   *handlers.BookingHandler
	Drivers   *handlers.DriverHandler
	Dashboard *handlers.DashboardHandler
}

// Options configures cross-cutting middleware. Zero values are usable.
type Options struct {
	Logger         logx.Logger
	Metrics        *metrics.HTTP
	RateLimit      *ratelimit.Middleware
	MetricsHandler http.Handler
	Timeout        time.Duration
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(h Handlers, opts Options) http.Handler {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Observability(opts.Logger, opts.Metrics))
	if opts.RateLimit != nil {
		r.Use(opts.RateLimit.Handler())
	}
	r.Use(chimw.Timeout(opts.Timeout))

	r.Get("/ping", h.Base.Ping)
	r.Head("/healthcheck", h.Base.HealthcheckHead)
	if opts.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", opts.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.Base.APIRoot)
		r.Get("/status/", h.Base.Status)

		r.Post("/shipments/create/", h.Booking.Create)
		r.Get("/shipments/{id}", h.Booking.Get)
		r.Post("/shipments/{id}/payment", h.Booking.RetryPayment)

		r.Post("/payments/webhook/", h.Booking.PaymentWebhook)
	})

	r.Get("/dashboard/summary/", h.Dashboard.Summary)

	r.Route("/drivers", func(r chi.Router) {
		r.Get("/", h.Drivers.List)
		r.Post("/", h.Drivers.Create)
		r.Get("/{id}", h.Drivers.GetByID)
	})
	r.Post("/notifications/broadcast/", h.Drivers.Broadcast)

	r.NotFound(h.Base.NotFound)
	r.MethodNotAllowed(h.Base.MethodNotAllowed)

	return r
}
