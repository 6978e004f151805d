// Package notify delivers SMS and email notifications.
package notify

import (
	"context"

	"freight-booking/internal/logx"
)

// LogSender writes notifications to the log instead of delivering them.
type LogSender struct {
	logger logx.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger logx.Logger) *LogSender {
	if logger == nil {
		logger = logx.Nop()
	}
	return &LogSender{logger: logger.With(logx.String("component", "notify"))}
}

// SendSMS logs the message.
func (s *LogSender) SendSMS(ctx context.Context, phone, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Info("sms sent", logx.String("channel", ChannelSMS), logx.String("to", phone), logx.String("message", message))
	return nil
}

// SendEmail logs the email.
func (s *LogSender) SendEmail(ctx context.Context, email, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Info("email sent",
		logx.String("channel", ChannelEmail),
		logx.String("to", email),
		logx.String("subject", subject),
		logx.String("body", body),
	)
	return nil
}
