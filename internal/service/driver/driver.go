package driver

import (
	"context"
	"strings"
	"time"

	"freight-booking/internal/apperr"
	"freight-booking/internal/domain"
	"freight-booking/internal/logx"
)

// DefaultBroadcastMessage is sent when a broadcast has no message.
const DefaultBroadcastMessage = "Admin broadcast to all drivers"

// Service manages the driver registry. Availability is owned by the booking workflow.
type Service struct {
	repo             driverRepository
	sms              smsSender
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures a driver Service.
func NewService(r driverRepository, sms smsSender, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{repo: r, sms: sms, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateCreate(d *domain.Driver) error {
	if d == nil {
		return apperr.ErrInvalid
	}
	d.Name = strings.TrimSpace(d.Name)
	d.Phone = strings.TrimSpace(d.Phone)
	d.LicenseNumber = strings.TrimSpace(d.LicenseNumber)
	if d.Name == "" || d.LicenseNumber == "" {
		return apperr.ErrInvalid
	}
	if !domain.ValidatePhone(d.Phone) {
		return apperr.ErrInvalid
	}
	return nil
}

// Get retrieves a driver by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Driver, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	d, err := s.repo.GetDriver(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return d, nil
}

// List returns drivers with optional pagination.
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Driver, error) {
	if (limit != nil && *limit < 0) || (offset != nil && *offset < 0) {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListDrivers(ctx, limit, offset)
}

// Create registers a new available driver and returns its generated ID.
func (s *Service) Create(ctx context.Context, d *domain.Driver) (int64, error) {
	if err := validateCreate(d); err != nil {
		return 0, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	id, err := s.repo.CreateDriver(ctx, d)
	if err != nil {
		return 0, err
	}
	s.logger.Info("driver registered", logx.Int64("driver_id", id), logx.String("license", d.LicenseNumber))
	return id, nil
}

// Broadcast sends message to every registered driver and returns how many were notified.
// Delivery failures are logged and skipped.
func (s *Service) Broadcast(ctx context.Context, message string) (int, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		message = DefaultBroadcastMessage
	}

	listCtx, cancel := s.withTimeout(ctx)
	drivers, err := s.repo.ListDrivers(listCtx, nil, nil)
	cancel()
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, d := range drivers {
		if err := s.sms.SendSMS(ctx, d.Phone, message); err != nil {
			s.logger.Warn("broadcast sms failed", logx.Int64("driver_id", d.ID), logx.Err(err))
			continue
		}
		sent++
	}
	s.logger.Info("broadcast sent", logx.Int("drivers", len(drivers)), logx.Int("sent", sent))
	return sent, nil
}
