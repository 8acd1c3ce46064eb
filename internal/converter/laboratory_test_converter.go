package converter

import (
	"time"

	"kist-clinic-backend/internal/delivery/dto"
	"kist-clinic-backend/internal/domain/entity"
)

// LaboratoryTestToResponse converts a LaboratoryTest entity to its DTO.
func LaboratoryTestToResponse(test *entity.LaboratoryTest) *dto.LaboratoryTestResponse {
	if test == nil {
		return nil
	}

	return &dto.LaboratoryTestResponse{
		ID:              test.ID,
		PatientID:       test.PatientID,
		PatientName:     test.Patient.Name,
		TestName:        test.TestName,
		TestDescription: test.TestDescription,
		TestDate:        test.TestDate.Format(DateLayout),
		TestTime:        test.TestTime,
		Status:          string(test.Status),
		Notes:           test.Notes,
		IsPast:          test.IsPast(time.Now()),
		CreatedAt:       test.CreatedAt,
		UpdatedAt:       test.UpdatedAt,
	}
}

// LaboratoryTestsToResponses converts a slice of LaboratoryTest entities to DTOs.
func LaboratoryTestsToResponses(tests []entity.LaboratoryTest) []dto.LaboratoryTestResponse {
	responses := make([]dto.LaboratoryTestResponse, len(tests))
	for i := range tests {
		responses[i] = *LaboratoryTestToResponse(&tests[i])
	}
	return responses
}
