package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"freight-booking/internal/config"
	"freight-booking/internal/domain"
	"freight-booking/internal/http/handlers"
	"freight-booking/internal/logx"
	"freight-booking/internal/ports/bookingtx"
	"freight-booking/internal/repository"
	"freight-booking/internal/repository/memory"
)

type dbConnectFunc func(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error)

type bookingStore interface {
	bookingtx.Runner
	GetShipment(ctx context.Context, id int64) (*domain.Shipment, error)
}

type driverStore interface {
	GetDriver(ctx context.Context, id int64) (*domain.Driver, error)
	ListDrivers(ctx context.Context, limit, offset *int) ([]domain.Driver, error)
	CreateDriver(ctx context.Context, d *domain.Driver) (int64, error)
}

type summaryStore interface {
	Summary(ctx context.Context) (domain.DashboardSummary, error)
}

// storeSet is the persistence backend selected by config.
type storeSet struct {
	booking   bookingStore
	drivers   driverStore
	dashboard summaryStore
	pinger    handlers.Pinger
	close     func()
}

// Close releases the backend; safe on nil.
func (s *storeSet) Close() {
	if s != nil && s.close != nil {
		s.close()
	}
}

type storeDeps struct {
	connect dbConnectFunc
	migrate func(dsn string) error
}

func newStoreSet(ctx context.Context, cfg *config.Config, logger logx.Logger, deps storeDeps) (*storeSet, error) {
	if cfg.Store == config.StoreMemory {
		m := memory.New()
		logger.Info("using in-memory store")
		return &storeSet{booking: m, drivers: m, dashboard: m, pinger: m, close: func() {}}, nil
	}

	dsn := cfg.DB.DSN()
	pool, err := deps.connect(ctx, logger, dsn, 10, time.Second)
	if err != nil {
		return nil, err
	}
	if cfg.DB.Migrate && deps.migrate != nil {
		if err := deps.migrate(dsn); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("database migrations applied")
	}
	return &storeSet{
		booking:   repository.NewBookingRepo(pool),
		drivers:   repository.NewDriverRepo(pool),
		dashboard: repository.NewDashboardRepo(pool),
		pinger:    pool,
		close:     pool.Close,
	}, nil
}
