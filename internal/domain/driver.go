package domain

import "time"

// Driver is a truck driver who can be reserved for a confirmed shipment.
type Driver struct {
	ID            int64
	Name          string
	Phone         string
	LicenseNumber string
	Available     bool
	CreatedAt     time.Time
}
