package domain

import (
	"errors"
	"strconv"
	"strings"
)

// TransactionPrefix is prepended by the mobile money gateway to the payment reference.
const TransactionPrefix = "MOCK-"

// CallbackSuccess is the only callback status treated as a successful payment.
const CallbackSuccess = "success"

// ErrBadTransactionID is returned when a transaction id does not encode a shipment id.
var ErrBadTransactionID = errors.New("malformed transaction id")

// PaymentResponse is the opaque gateway answer forwarded to the client.
type PaymentResponse struct {
	Status        string
	TransactionID string
	Message       string
}

// PaymentCallback is the asynchronous payment outcome reported by the gateway.
type PaymentCallback struct {
	TransactionID string
	Status        string
}

// Succeeded reports whether the callback confirms the payment.
func (c PaymentCallback) Succeeded() bool {
	return c.Status == CallbackSuccess
}

// CallbackResult describes how a callback was resolved.
// Applied is false when the callback changed nothing (unknown shipment or terminal status).
type CallbackResult struct {
	ShipmentID int64
	Status     ShipmentStatus
	DriverID   *int64
	DriverName string
	Applied    bool
}

// PaymentReference returns the reference sent to the gateway for a shipment.
func PaymentReference(shipmentID int64) string {
	return strconv.FormatInt(shipmentID, 10)
}

// TransactionID returns the gateway transaction id for a shipment.
func TransactionID(shipmentID int64) string {
	return TransactionPrefix + PaymentReference(shipmentID)
}

// ParseTransactionID extracts the shipment id from "MOCK-<id>".
func ParseTransactionID(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, TransactionPrefix) {
		return 0, ErrBadTransactionID
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(s, TransactionPrefix), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrBadTransactionID
	}
	return id, nil
}
