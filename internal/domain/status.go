package domain

import (
	"regexp"
	"strings"
)

type (
	// ShipmentStatus represents the booking state of a shipment.
	ShipmentStatus string
	// ShipmentType represents the tariff class of a shipment.
	ShipmentType string
)

// List of possible shipment statuses
const (
	StatusPendingPayment    ShipmentStatus = "pending_payment"
	StatusConfirmed         ShipmentStatus = "confirmed"
	StatusConfirmedNoDriver ShipmentStatus = "confirmed_no_driver"
	StatusPaymentFailed     ShipmentStatus = "payment_failed"
)

// List of possible shipment types
const (
	TypeDomestic      ShipmentType = "domestic"
	TypeInternational ShipmentType = "international"
)

var allowedStatuses = [...]ShipmentStatus{
	StatusPendingPayment, StatusConfirmed, StatusConfirmedNoDriver, StatusPaymentFailed,
}

// Valid checks if the ShipmentStatus is known.
func (s ShipmentStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further booking transition may leave s.
func (s ShipmentStatus) Terminal() bool {
	switch s {
	case StatusConfirmed, StatusConfirmedNoDriver, StatusPaymentFailed:
		return true
	default:
		return false
	}
}

// Valid checks if the ShipmentType is known.
func (t ShipmentType) Valid() bool {
	return t == TypeDomestic || t == TypeInternational
}

// ParseShipmentType normalizes raw input; absent or unknown values fall back to domestic.
func ParseShipmentType(raw string) ShipmentType {
	t := ShipmentType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return TypeDomestic
	}
	return t
}

// rePhone accepts local (0781234567) and international (+250781234567) numbers.
var rePhone = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
