package app

import (
	"context"

	"freight-booking/internal/config"
	"freight-booking/internal/gateway/notify"
	"freight-booking/internal/logx"
)

type sender interface {
	SendSMS(ctx context.Context, phone, message string) error
	SendEmail(ctx context.Context, email, subject, body string) error
}

// notifierSet is the notification engine chosen at startup.
type notifierSet struct {
	sender sender
	close  func() error
}

// Close releases the engine; safe on nil.
func (n *notifierSet) Close() error {
	if n == nil || n.close == nil {
		return nil
	}
	return n.close()
}

var newKafkaSender = notify.NewKafkaSender

// newNotifierSet publishes to Kafka when brokers are configured and logs otherwise.
func newNotifierSet(cfg *config.Config, logger logx.Logger) (*notifierSet, error) {
	ks, err := newKafkaSender(logger, cfg.Kafka.Brokers, cfg.Kafka.NotificationsTopic)
	if err != nil {
		return nil, err
	}
	if ks != nil {
		logger.Info("notifications published to kafka", logx.String("topic", cfg.Kafka.NotificationsTopic))
		return &notifierSet{sender: ks, close: ks.Close}, nil
	}
	return &notifierSet{sender: notify.NewLogSender(logger)}, nil
}
