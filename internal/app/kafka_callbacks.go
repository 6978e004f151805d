package app

import (
	"context"
	"fmt"

	"freight-booking/internal/apperr"
	"freight-booking/internal/config"
	"freight-booking/internal/domain"
	"freight-booking/internal/logx"
	"freight-booking/internal/service/booking"
	"freight-booking/internal/transport/kafka"
)

type callbackResolver interface {
	HandlePaymentCallback(ctx context.Context, cb domain.PaymentCallback) (domain.CallbackResult, error)
}

// makeCallbackHandler adapts the booking workflow to the Kafka consumer.
// Messages whose transaction id can never match a shipment are dropped; store failures are redelivered.
func makeCallbackHandler(svc callbackResolver) kafka.HandleFunc {
	return func(ctx context.Context, cb domain.PaymentCallback) error {
		if _, err := domain.ParseTransactionID(cb.TransactionID); err != nil {
			return kafka.Permanent(fmt.Errorf("%w: %q: %w", apperr.ErrInvalid, cb.TransactionID, err))
		}
		_, err := svc.HandlePaymentCallback(ctx, cb)
		return err
	}
}

func newCallbackConsumer(cfg *config.Config, logger logx.Logger, svc *booking.Service) (*kafka.Consumer, error) {
	return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.CallbacksTopic, makeCallbackHandler(svc))
}
