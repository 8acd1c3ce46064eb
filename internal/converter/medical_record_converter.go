package converter

import (
	"kist-clinic-backend/internal/delivery/dto"
	"kist-clinic-backend/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity to its DTO. The
// file URL is served under /media relative to the API host.
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:          record.ID,
		PatientID:   record.PatientID,
		PatientName: record.Patient.Name,
		Title:       record.Title,
		Description: record.Description,
		FileURL:     "/media/" + record.FilePath,
		FileType:    record.FileType,
		UploadedAt:  record.UploadedAt,
	}
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities to DTOs.
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *MedicalRecordToResponse(&records[i])
	}
	return responses
}
