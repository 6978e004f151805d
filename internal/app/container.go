package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"freight-booking/internal/config"
	"freight-booking/internal/gateway/payment"
	"freight-booking/internal/http/handlers"
	"freight-booking/internal/http/middleware/ratelimit"
	"freight-booking/internal/http/pprofserver"
	"freight-booking/internal/http/router"
	"freight-booking/internal/logx"
	"freight-booking/internal/metrics"
	"freight-booking/internal/repository"
	"freight-booking/internal/service/booking"
	"freight-booking/internal/service/dashboard"
	"freight-booking/internal/service/driver"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig func() (*config.Config, error)
	dbConnect  dbConnectFunc
	migrate    func(dsn string) error
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig: config.Load,
		dbConnect:  connectDbWithRetry,
		migrate:    repository.Migrate,
		logFatalf:  log.Fatalf,
	}
}

// WithConfig overrides configuration loading.
func (b *ContainerBuilder) WithConfig(fn func() (*config.Config, error)) *ContainerBuilder {
	if fn != nil {
		b.loadConfig = fn
	}
	return b
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithMigrate sets the schema migration function
func (b *ContainerBuilder) WithMigrate(fn func(dsn string) error) *ContainerBuilder {
	if fn != nil {
		b.migrate = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the HTTP service container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the callback worker container.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

// BuildServices builds a container with stores, gateways and domain services only.
func (b *ContainerBuilder) BuildServices(ctx context.Context) (*dig.Container, error) {
	return b.buildBase(ctx)
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container, err := b.buildBase(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container, err := b.buildBase(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildBase(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerStore(container, storeDeps{connect: b.dbConnect, migrate: b.migrate}); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	if err := registerGateways(container); err != nil {
		return nil, fmt.Errorf("gateways: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the HTTP service container with defaults.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the worker container with defaults.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context, loadConfig func() (*config.Config, error)) error {
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		NewLogger,
		provideMetrics,
	)
}

func registerStore(container *dig.Container, deps storeDeps) error {
	return provideAll(container,
		func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*storeSet, error) {
			return newStoreSet(ctx, cfg, logger, deps)
		},
	)
}

type paymentIn struct {
	dig.In

	Config  *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"gateway_retries_total"`
}

func registerGateways(container *dig.Container) error {
	return provideAll(container,
		func(in paymentIn) *payment.RetryingGateway {
			return payment.NewRetryingGateway(payment.NewMomoMock(), in.Logger, in.Retries, payment.RetryConfig{
				MaxAttempts: in.Config.Payment.MaxAttempts,
				BaseDelay:   in.Config.Payment.BaseDelay,
				MaxDelay:    in.Config.Payment.MaxDelay,
			})
		},
		newNotifierSet,
	)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		func(
			cfg *config.Config,
			st *storeSet,
			gw *payment.RetryingGateway,
			ns *notifierSet,
			m *metrics.Booking,
			logger logx.Logger,
		) *booking.Service {
			return booking.NewService(st.booking, gw, ns.sender, booking.NewTariff(cfg.Tariff), booking.Settings{
				DefaultPhone:     cfg.Booking.DefaultPhone,
				RequirePhone:     cfg.Booking.RequirePhone,
				ExportEmail:      cfg.Notify.ExportEmail,
				OperationTimeout: cfg.Booking.OperationTimeout,
				PaymentTimeout:   cfg.Payment.Timeout,
				NotifyTimeout:    cfg.Notify.Timeout,
			}, m, logger)
		},
		func(cfg *config.Config, st *storeSet, ns *notifierSet, logger logx.Logger) *driver.Service {
			return driver.NewService(st.drivers, ns.sender, cfg.Booking.OperationTimeout, logger)
		},
		func(cfg *config.Config, st *storeSet) *dashboard.Service {
			return dashboard.NewService(st.dashboard, cfg.Booking.OperationTimeout)
		},
	)
}

type routerIn struct {
	dig.In

	Logger    logx.Logger
	Store     *storeSet
	Booking   *booking.Service
	Drivers   *driver.Service
	Dashboard *dashboard.Service
	Metrics   *metrics.HTTP
	RateLimit *ratelimit.Middleware
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Handlers{
		Base:      handlers.New(in.Logger, in.Store.pinger),
		Booking:   handlers.NewBookingHandler(in.Logger, in.Booking),
		Drivers:   handlers.NewDriverHandler(in.Logger, in.Drivers),
		Dashboard: handlers.NewDashboardHandler(in.Logger, in.Dashboard),
	}, router.Options{
		Logger:         in.Logger,
		Metrics:        in.Metrics,
		RateLimit:      in.RateLimit,
		MetricsHandler: promhttp.Handler(),
	})
}

type serversOut struct {
	dig.Out

	Main  *http.Server
	Pprof *http.Server `name:"pprof_server"`
}

func newServers(cfg *config.Config, mux http.Handler) serversOut {
	return serversOut{
		Main: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		Pprof: pprofserver.New(pprofserver.Config{
			Addr: cfg.Pprof.Addr,
			User: cfg.Pprof.User,
			Pass: cfg.Pprof.Pass,
		}),
	}
}

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		newServers,
	)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		newCallbackConsumer,
	)
}
