package driver

import (
	"context"

	"freight-booking/internal/domain"
)

// driverRepository defines storage operations required by the registry.
type driverRepository interface {
	GetDriver(ctx context.Context, id int64) (*domain.Driver, error)
	ListDrivers(ctx context.Context, limit, offset *int) ([]domain.Driver, error)
	CreateDriver(ctx context.Context, d *domain.Driver) (int64, error)
}

type smsSender interface {
	SendSMS(ctx context.Context, phone, message string) error
}
