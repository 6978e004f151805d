package handlers

import "freight-booking/internal/domain"

func (req createShipmentRequest) toModel() domain.CreateShipmentInput {
	return domain.CreateShipmentInput{
		Type:   req.Type,
		Weight: req.Weight,
		Phone:  req.Phone,
		Email:  req.Email,
	}
}

func (req paymentCallbackRequest) toModel() domain.PaymentCallback {
	return domain.PaymentCallback{
		TransactionID: req.TransactionID,
		Status:        req.Status,
	}
}

func createResultToResponse(res domain.CreateShipmentResult) createShipmentResponse {
	return createShipmentResponse{
		Status:     string(res.Status),
		ShipmentID: res.ShipmentID,
		Tariff:     res.Tariff,
		Payment: paymentDTO{
			Status:        res.Payment.Status,
			TransactionID: res.Payment.TransactionID,
			Message:       res.Payment.Message,
		},
	}
}

func shipmentToResponse(s domain.Shipment) shipmentDTO {
	return shipmentDTO{
		ID:        s.ID,
		Type:      string(s.Type),
		Weight:    s.Weight,
		Phone:     s.Phone,
		Email:     s.Email,
		Tariff:    s.Tariff,
		Status:    string(s.Status),
		DriverID:  s.DriverID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
