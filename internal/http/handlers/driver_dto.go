package handlers

import (
	"time"

	"github.com/samber/lo"

	"freight-booking/internal/domain"
)

type driverDTO struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone_number"`
	LicenseNumber string    `json:"license_number"`
	Available     bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
}

type createDriverRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone_number"`
	LicenseNumber string `json:"license_number"`
}

type broadcastRequest struct {
	Message string `json:"message"`
}

type broadcastResponse struct {
	Status      string `json:"status"`
	DriverCount int    `json:"driver_count"`
}

func (req createDriverRequest) toModel() *domain.Driver {
	return &domain.Driver{
		Name:          req.Name,
		Phone:         req.Phone,
		LicenseNumber: req.LicenseNumber,
	}
}

func driverToResponse(d domain.Driver) driverDTO {
	return driverDTO{
		ID:            d.ID,
		Name:          d.Name,
		Phone:         d.Phone,
		LicenseNumber: d.LicenseNumber,
		Available:     d.Available,
		CreatedAt:     d.CreatedAt,
	}
}

func driversToResponse(list []domain.Driver) []driverDTO {
	return lo.Map(list, func(d domain.Driver, _ int) driverDTO { return driverToResponse(d) })
}
