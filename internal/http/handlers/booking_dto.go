package handlers

import "time"

type createShipmentRequest struct {
	Type   string   `json:"type"`
	Weight *float64 `json:"weight"`
	Phone  string   `json:"phone_number"`
	Email  string   `json:"email"`
}

type paymentDTO struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

type createShipmentResponse struct {
	Status     string     `json:"status"`
	ShipmentID int64      `json:"shipment_id"`
	Tariff     int64      `json:"tariff"`
	Payment    paymentDTO `json:"payment"`
}

type paymentFailedResponse struct {
	Error      string `json:"error"`
	Status     string `json:"status"`
	ShipmentID int64  `json:"shipment_id"`
	Tariff     int64  `json:"tariff"`
}

type shipmentDTO struct {
	ID        int64     `json:"id"`
	Type      string    `json:"shipment_type"`
	Weight    float64   `json:"weight"`
	Phone     string    `json:"phone_number"`
	Email     string    `json:"email,omitempty"`
	Tariff    int64     `json:"tariff"`
	Status    string    `json:"status"`
	DriverID  *int64    `json:"assigned_driver_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type paymentCallbackRequest struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Message       string `json:"message,omitempty"`
}

type callbackResponse struct {
	Status string `json:"status"`
}
