package kafka

import (
	"strings"

	"freight-booking/internal/domain"
)

// CallbackDTO is the wire form of a payment callback published by the gateway.
type CallbackDTO struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Message       string `json:"message,omitempty"`
}

// ToDomain converts CallbackDTO to domain.PaymentCallback.
func ToDomain(dto CallbackDTO) domain.PaymentCallback {
	return domain.PaymentCallback{
		TransactionID: strings.TrimSpace(dto.TransactionID),
		Status:        strings.TrimSpace(dto.Status),
	}
}
