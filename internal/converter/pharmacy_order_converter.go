package converter

import (
	"kist-clinic-backend/internal/delivery/dto"
	"kist-clinic-backend/internal/domain/entity"
)

// PharmacyOrderToResponse converts a PharmacyOrder entity to its DTO.
func PharmacyOrderToResponse(order *entity.PharmacyOrder) *dto.PharmacyOrderResponse {
	if order == nil {
		return nil
	}

	return &dto.PharmacyOrderResponse{
		ID:              order.ID,
		PatientID:       order.PatientID,
		PatientName:     order.Patient.Name,
		MedicineName:    order.MedicineName,
		Quantity:        order.Quantity,
		PricePerUnit:    order.PricePerUnit,
		MedicineImage:   order.MedicineImage,
		TotalAmount:     order.TotalAmount,
		OrderDate:       order.OrderDate,
		Status:          string(order.Status),
		DeliveryAddress: order.DeliveryAddress,
		PaymentMethod:   order.PaymentMethod,
		PaymentStatus:   string(order.PaymentStatus),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

// PharmacyOrdersToResponses converts a slice of PharmacyOrder entities to DTOs.
func PharmacyOrdersToResponses(orders []entity.PharmacyOrder) []dto.PharmacyOrderResponse {
	responses := make([]dto.PharmacyOrderResponse, len(orders))
	for i := range orders {
		responses[i] = *PharmacyOrderToResponse(&orders[i])
	}
	return responses
}
