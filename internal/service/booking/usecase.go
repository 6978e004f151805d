package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"freight-booking/internal/apperr"
	"freight-booking/internal/domain"
	"freight-booking/internal/logx"
	"freight-booking/internal/metrics"
	"freight-booking/internal/ports/bookingtx"
)

// Settings tunes the orchestrator.
type Settings struct {
	// DefaultPhone replaces a missing phone number; empty means the phone is required.
	DefaultPhone string
	RequirePhone bool
	// ExportEmail receives confirmations for shipments without an email.
	ExportEmail      string
	OperationTimeout time.Duration
	PaymentTimeout   time.Duration
	NotifyTimeout    time.Duration
}

// Service runs the booking workflow: create, request payment, resolve the payment callback.
type Service struct {
	repo     bookingRepository
	payments paymentGateway
	notifier notifier
	tariff   Tariff
	settings Settings
	metrics  *metrics.Booking
	logger   logx.Logger
}

// NewService creates a booking Service. Zero timeouts fall back to defaults.
func NewService(
	r bookingRepository,
	p paymentGateway,
	n notifier,
	t Tariff,
	s Settings,
	m *metrics.Booking,
	logger logx.Logger,
) *Service {
	if s.OperationTimeout <= 0 {
		s.OperationTimeout = 3 * time.Second
	}
	if s.PaymentTimeout <= 0 {
		s.PaymentTimeout = 5 * time.Second
	}
	if s.NotifyTimeout <= 0 {
		s.NotifyTimeout = 2 * time.Second
	}
	if m == nil {
		m = metrics.NewBooking()
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:     r,
		payments: p,
		notifier: n,
		tariff:   t,
		settings: s,
		metrics:  m,
		logger:   logger,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.settings.OperationTimeout)
}

// CreateShipment validates the input, stores a pending_payment shipment and requests payment.
// When the payment request fails the shipment stays stored, the returned result carries its id
// and tariff, and the error wraps apperr.ErrGateway.
func (s *Service) CreateShipment(ctx context.Context, in domain.CreateShipmentInput) (domain.CreateShipmentResult, error) {
	sh, err := s.newShipment(in)
	if err != nil {
		return domain.CreateShipmentResult{}, err
	}

	txCtx, cancel := s.withTimeout(ctx)
	err = s.repo.WithTx(txCtx, func(tx bookingtx.Repository) error {
		return tx.InsertShipment(txCtx, sh)
	})
	cancel()
	if err != nil {
		return domain.CreateShipmentResult{}, fmt.Errorf("create shipment: %w", err)
	}
	s.metrics.ShipmentsCreated.Inc()

	s.logger.Info("shipment created",
		logx.String("event", "shipment_created"),
		logx.Int64("shipment_id", sh.ID),
		logx.String("type", string(sh.Type)),
		logx.Float64("weight", sh.Weight),
		logx.Int64("tariff", sh.Tariff),
	)

	result := domain.CreateShipmentResult{
		Status:     sh.Status,
		ShipmentID: sh.ID,
		Tariff:     sh.Tariff,
	}
	payment, err := s.requestPayment(ctx, sh)
	if err != nil {
		return result, err
	}
	result.Payment = payment
	return result, nil
}

// RetryPayment re-issues the payment request for a shipment still awaiting payment.
func (s *Service) RetryPayment(ctx context.Context, shipmentID int64) (domain.CreateShipmentResult, error) {
	sh, err := s.GetShipment(ctx, shipmentID)
	if err != nil {
		return domain.CreateShipmentResult{}, err
	}
	if sh.Status != domain.StatusPendingPayment {
		return domain.CreateShipmentResult{}, fmt.Errorf("shipment %d is %s: %w", sh.ID, sh.Status, apperr.ErrConflict)
	}

	result := domain.CreateShipmentResult{
		Status:     sh.Status,
		ShipmentID: sh.ID,
		Tariff:     sh.Tariff,
	}
	payment, err := s.requestPayment(ctx, sh)
	if err != nil {
		return result, err
	}
	result.Payment = payment
	return result, nil
}

// GetShipment returns a shipment by id.
func (s *Service) GetShipment(ctx context.Context, id int64) (*domain.Shipment, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	sh, err := s.repo.GetShipment(ctx, id)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, apperr.ErrNotFound
	}
	return sh, nil
}

// HandlePaymentCallback resolves a pending shipment from the gateway callback.
// Unknown or already resolved shipments are left untouched and reported with Applied=false.
// Only store failures are returned as errors.
func (s *Service) HandlePaymentCallback(ctx context.Context, cb domain.PaymentCallback) (domain.CallbackResult, error) {
	id, err := domain.ParseTransactionID(cb.TransactionID)
	if err != nil {
		s.metrics.Callbacks.WithLabelValues(metrics.OutcomeUnknown).Inc()
		s.logger.Warn("payment callback ignored",
			logx.String("reason", "bad_transaction_id"),
			logx.String("transaction_id", cb.TransactionID),
		)
		return domain.CallbackResult{}, nil
	}

	var (
		result  = domain.CallbackResult{ShipmentID: id}
		current *domain.Shipment
	)

	txCtx, cancel := s.withTimeout(ctx)
	err = s.repo.WithTx(txCtx, func(tx bookingtx.Repository) error {
		sh, err := tx.GetShipmentForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		current = sh
		if sh == nil || sh.Status.Terminal() {
			return nil
		}

		next := domain.StatusPaymentFailed
		var driver *domain.Driver
		if cb.Succeeded() {
			driver, err = tx.ClaimAvailableDriver(txCtx)
			if err != nil {
				return err
			}
			next = domain.StatusConfirmedNoDriver
			if driver != nil {
				next = domain.StatusConfirmed
			}
		}

		var driverID *int64
		if driver != nil {
			driverID = &driver.ID
			result.DriverName = driver.Name
		}
		if err := tx.UpdateShipmentStatus(txCtx, id, next, driverID); err != nil {
			return err
		}

		result.Status = next
		result.DriverID = driverID
		result.Applied = true
		sh.Status, sh.DriverID = next, driverID
		return nil
	})
	cancel()
	if errors.Is(err, apperr.ErrConflict) {
		// Another callback resolved the shipment between our read and write.
		current, err = s.repo.GetShipment(ctx, id)
		result = domain.CallbackResult{ShipmentID: id}
	}
	if err != nil {
		return domain.CallbackResult{}, fmt.Errorf("handle payment callback %d: %w", id, err)
	}

	switch {
	case current == nil:
		s.metrics.Callbacks.WithLabelValues(metrics.OutcomeUnknown).Inc()
		s.logger.Warn("payment callback ignored",
			logx.String("reason", "unknown_shipment"),
			logx.Int64("shipment_id", id),
		)
		return result, nil
	case !result.Applied:
		s.metrics.Callbacks.WithLabelValues(metrics.OutcomeDuplicate).Inc()
		result.Status = current.Status
		result.DriverID = current.DriverID
		s.logger.Info("payment callback ignored",
			logx.String("reason", "already_resolved"),
			logx.Int64("shipment_id", id),
			logx.String("status", string(current.Status)),
		)
		return result, nil
	}

	s.metrics.Callbacks.WithLabelValues(string(result.Status)).Inc()
	fields := []logx.Field{
		logx.String("event", "payment_callback_applied"),
		logx.Int64("shipment_id", id),
		logx.String("status", string(result.Status)),
	}
	if result.DriverID != nil {
		fields = append(fields, logx.Int64("driver_id", *result.DriverID))
	}
	s.logger.Info("shipment resolved", fields...)

	s.notify(ctx, current, result)
	return result, nil
}

func (s *Service) newShipment(in domain.CreateShipmentInput) (*domain.Shipment, error) {
	weight := 1.0
	if in.Weight != nil {
		weight = *in.Weight
	}
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return nil, fmt.Errorf("weight must be a positive number: %w", apperr.ErrInvalid)
	}

	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		if s.settings.RequirePhone || s.settings.DefaultPhone == "" {
			return nil, fmt.Errorf("phone number is required: %w", apperr.ErrInvalid)
		}
		phone = s.settings.DefaultPhone
	}
	if !domain.ValidatePhone(phone) {
		return nil, fmt.Errorf("malformed phone number: %w", apperr.ErrInvalid)
	}

	t := domain.ParseShipmentType(in.Type)
	tariff, err := s.tariff.Quote(t, weight)
	if err != nil {
		return nil, fmt.Errorf("quote tariff: %w: %w", apperr.ErrInvalid, err)
	}

	return &domain.Shipment{
		Type:   t,
		Weight: weight,
		Phone:  phone,
		Email:  strings.TrimSpace(in.Email),
		Tariff: tariff,
		Status: domain.StatusPendingPayment,
	}, nil
}

func (s *Service) requestPayment(ctx context.Context, sh *domain.Shipment) (domain.PaymentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.settings.PaymentTimeout)
	defer cancel()

	resp, err := s.payments.InitiatePayment(ctx, sh.Tariff, sh.Phone, domain.PaymentReference(sh.ID))
	if err != nil {
		s.metrics.PaymentRequestsFailed.Inc()
		s.logger.Error("payment request failed",
			logx.Int64("shipment_id", sh.ID),
			logx.Int64("amount", sh.Tariff),
			logx.Err(err),
		)
		return domain.PaymentResponse{}, fmt.Errorf("initiate payment for shipment %d: %w: %w", sh.ID, apperr.ErrGateway, err)
	}

	s.logger.Info("payment requested",
		logx.Int64("shipment_id", sh.ID),
		logx.String("transaction_id", resp.TransactionID),
		logx.String("status", resp.Status),
	)
	return resp, nil
}

func (s *Service) notify(ctx context.Context, sh *domain.Shipment, res domain.CallbackResult) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.settings.NotifyTimeout)
	defer cancel()

	if res.Status == domain.StatusPaymentFailed {
		s.sendSMS(ctx, sh, fmt.Sprintf("Payment failed for shipment %d. Please try again.", sh.ID))
		return
	}

	sms := fmt.Sprintf("Your shipment %d is confirmed. A driver will be assigned shortly.", sh.ID)
	body := sms
	if res.DriverName != "" {
		sms = fmt.Sprintf("Your shipment %d is confirmed. Driver: %s", sh.ID, res.DriverName)
		body = fmt.Sprintf("Your shipment %d is confirmed and assigned to driver %s.", sh.ID, res.DriverName)
	}
	s.sendSMS(ctx, sh, sms)

	email := sh.Email
	if email == "" {
		email = s.settings.ExportEmail
	}
	if email == "" {
		return
	}
	if err := s.notifier.SendEmail(ctx, email, "Shipment Confirmed", body); err != nil {
		s.metrics.NotificationsFailed.Inc()
		s.logger.Warn("email notification failed", logx.Int64("shipment_id", sh.ID), logx.Err(err))
	}
}

func (s *Service) sendSMS(ctx context.Context, sh *domain.Shipment, msg string) {
	if err := s.notifier.SendSMS(ctx, sh.Phone, msg); err != nil {
		s.metrics.NotificationsFailed.Inc()
		s.logger.Warn("sms notification failed", logx.Int64("shipment_id", sh.ID), logx.Err(err))
	}
}
