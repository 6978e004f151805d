package domain

import "time"

// Shipment is a freight booking.
type Shipment struct {
	ID        int64
	Type      ShipmentType
	Weight    float64
	Phone     string
	Email     string
	Tariff    int64
	Status    ShipmentStatus
	DriverID  *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateShipmentInput carries client booking data before defaults are applied.
// A nil Weight means the client did not send one.
type CreateShipmentInput struct {
	Type   string
	Weight *float64
	Phone  string
	Email  string
}

// CreateShipmentResult is returned to the client after booking.
type CreateShipmentResult struct {
	Status     ShipmentStatus
	ShipmentID int64
	Tariff     int64
	Payment    PaymentResponse
}

// DashboardSummary aggregates confirmed bookings and the driver pool.
type DashboardSummary struct {
	ActiveTrucks     int64
	TotalRevenue     int64
	AvailableDrivers int64
}
