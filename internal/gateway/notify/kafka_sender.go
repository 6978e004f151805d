package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"freight-booking/internal/logx"
)

var newSyncProducer = sarama.NewSyncProducer

// KafkaSender publishes notification events to a topic.
type KafkaSender struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
	now      func() time.Time
	newID    func() string
}

// NewKafkaSender connects a sync producer; it returns nil when brokers or topic are not configured.
func NewKafkaSender(logger logx.Logger, brokers []string, topic string) (*KafkaSender, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3

	producer, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka: new sync producer: %w", err)
	}
	return newKafkaSender(producer, topic, logger), nil
}

func newKafkaSender(producer sarama.SyncProducer, topic string, logger logx.Logger) *KafkaSender {
	if logger == nil {
		logger = logx.Nop()
	}
	return &KafkaSender{
		producer: producer,
		topic:    topic,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// SendSMS publishes an SMS event keyed by phone.
func (s *KafkaSender) SendSMS(ctx context.Context, phone, message string) error {
	return s.publish(ctx, Event{Channel: ChannelSMS, To: phone, Body: message})
}

// SendEmail publishes an email event keyed by address.
func (s *KafkaSender) SendEmail(ctx context.Context, email, subject, body string) error {
	return s.publish(ctx, Event{Channel: ChannelEmail, To: email, Subject: subject, Body: body})
}

func (s *KafkaSender) publish(ctx context.Context, ev Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ev.ID = s.newID()
	ev.CreatedAt = s.now()

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	partition, offset, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(ev.To),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("publish %s notification: %w", ev.Channel, err)
	}

	s.logger.Debug("notification published",
		logx.String("id", ev.ID),
		logx.String("channel", ev.Channel),
		logx.Int("partition", int(partition)),
		logx.Int64("offset", offset),
	)
	return nil
}

// Close closes the producer.
func (s *KafkaSender) Close() error {
	if s == nil {
		return nil
	}
	return s.producer.Close()
}
