package converter

import (
	"time"

	"kist-clinic-backend/internal/delivery/dto"
	"kist-clinic-backend/internal/domain/entity"
)

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

// AppointmentToResponse converts an Appointment entity to its DTO.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:                   appointment.ID,
		PatientID:            appointment.PatientID,
		PatientName:          appointment.Patient.Name,
		DoctorName:           appointment.DoctorName,
		DoctorSpecialization: appointment.DoctorSpecialization,
		AppointmentDate:      appointment.AppointmentDate.Format(DateLayout),
		AppointmentTime:      appointment.AppointmentTime,
		Status:               string(appointment.Status),
		Reason:               appointment.Reason,
		Notes:                appointment.Notes,
		IsPast:               appointment.IsPast(time.Now()),
		CreatedAt:            appointment.CreatedAt,
		UpdatedAt:            appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
