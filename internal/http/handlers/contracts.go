package handlers

import (
	"context"

	"freight-booking/internal/domain"
)

type bookingUsecase interface {
	CreateShipment(ctx context.Context, in domain.CreateShipmentInput) (domain.CreateShipmentResult, error)
	RetryPayment(ctx context.Context, shipmentID int64) (domain.CreateShipmentResult, error)
	HandlePaymentCallback(ctx context.Context, cb domain.PaymentCallback) (domain.CallbackResult, error)
	GetShipment(ctx context.Context, id int64) (*domain.Shipment, error)
}

type driverUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Driver, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Driver, error)
	Create(ctx context.Context, d *domain.Driver) (int64, error)
	Broadcast(ctx context.Context, message string) (int, error)
}

type dashboardUsecase interface {
	Summary(ctx context.Context) (domain.DashboardSummary, error)
}

// Pinger reports store health.
type Pinger interface {
	Ping(ctx context.Context) error
}
