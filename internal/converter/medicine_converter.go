package converter

import (
	"kist-clinic-backend/internal/delivery/dto"
	"kist-clinic-backend/internal/domain/entity"
)

// MedicineToResponse converts a Medicine entity to its DTO.
func MedicineToResponse(medicine *entity.Medicine) *dto.MedicineResponse {
	if medicine == nil {
		return nil
	}

	return &dto.MedicineResponse{
		ID:          medicine.ID,
		Name:        medicine.Name,
		Description: medicine.Description,
		Price:       medicine.Price,
		Image:       medicine.Image,
		Category:    medicine.Category,
		Stock:       medicine.Stock,
		CreatedAt:   medicine.CreatedAt,
		UpdatedAt:   medicine.UpdatedAt,
	}
}

// MedicinesToResponses converts a slice of Medicine entities to DTOs.
func MedicinesToResponses(medicines []entity.Medicine) []dto.MedicineResponse {
	responses := make([]dto.MedicineResponse, len(medicines))
	for i := range medicines {
		responses[i] = *MedicineToResponse(&medicines[i])
	}
	return responses
}
