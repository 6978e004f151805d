package bookingtx

import (
	"context"

	"freight-booking/internal/domain"
)

// Repository is the transaction-scoped shipment/driver store.
type Repository interface {
	// InsertShipment stores s and sets s.ID, s.CreatedAt and s.UpdatedAt.
	InsertShipment(ctx context.Context, s *domain.Shipment) error
	// GetShipmentForUpdate locks the shipment row until the transaction ends; nil if absent.
	GetShipmentForUpdate(ctx context.Context, id int64) (*domain.Shipment, error)
	// ClaimAvailableDriver flips the first available driver to unavailable and returns it; nil if none.
	ClaimAvailableDriver(ctx context.Context) (*domain.Driver, error)
	// UpdateShipmentStatus moves a pending_payment shipment to status; apperr.ErrConflict if it is no longer pending.
	UpdateShipmentStatus(ctx context.Context, id int64, status domain.ShipmentStatus, driverID *int64) error
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
