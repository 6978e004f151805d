package payment

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"freight-booking/internal/domain"
)

// Gateway statuses and messages reported by MomoMock.
const (
	StatusPending  = "pending"
	PromptMessage  = "Payment prompt sent to user."
	WebhookMessage = "Payment processed by MomoMock."
	failedCallback = "failed"
)

// MomoMock imitates a mobile money provider: every valid request is accepted as pending.
type MomoMock struct{}

// NewMomoMock creates a MomoMock.
func NewMomoMock() *MomoMock { return &MomoMock{} }

// InitiatePayment sends a (simulated) payment prompt to phone.
func (m *MomoMock) InitiatePayment(ctx context.Context, amount int64, phone, reference string) (domain.PaymentResponse, error) {
	if err := ctx.Err(); err != nil {
		return domain.PaymentResponse{}, status.FromContextError(err).Err()
	}
	if amount <= 0 {
		return domain.PaymentResponse{}, status.Errorf(codes.InvalidArgument, "amount must be positive, got %d", amount)
	}
	if strings.TrimSpace(phone) == "" || strings.TrimSpace(reference) == "" {
		return domain.PaymentResponse{}, status.Error(codes.InvalidArgument, "phone and reference are required")
	}
	return domain.PaymentResponse{
		Status:        StatusPending,
		TransactionID: domain.TransactionPrefix + reference,
		Message:       PromptMessage,
	}, nil
}

// SimulateWebhook builds the callback the provider would send for transactionID.
func (m *MomoMock) SimulateWebhook(transactionID string, success bool) domain.PaymentCallback {
	st := failedCallback
	if success {
		st = domain.CallbackSuccess
	}
	return domain.PaymentCallback{TransactionID: transactionID, Status: st}
}
