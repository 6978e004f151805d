//go:generate mockgen -source=contracts.go -destination=booking_mocks_test.go -package=booking

package booking

import (
	"context"

	"freight-booking/internal/domain"
	"freight-booking/internal/ports/bookingtx"
)

type bookingRepository interface {
	bookingtx.Runner
	GetShipment(ctx context.Context, id int64) (*domain.Shipment, error)
}

type paymentGateway interface {
	InitiatePayment(ctx context.Context, amount int64, phone, reference string) (domain.PaymentResponse, error)
}

type notifier interface {
	SendSMS(ctx context.Context, phone, message string) error
	SendEmail(ctx context.Context, email, subject, body string) error
}

// Tariff prices a shipment in whole currency units.
type Tariff interface {
	Quote(t domain.ShipmentType, weight float64) (int64, error)
}
