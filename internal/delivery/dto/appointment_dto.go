package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorName           string `json:"doctor_name" validate:"required"`
	DoctorSpecialization string `json:"doctor_specialization" validate:"required"`
	AppointmentDate      string `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
	AppointmentTime      string `json:"appointment_time" validate:"required,timeformat"`
	Reason               string `json:"reason" validate:"omitempty"`
	Notes                string `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	DoctorName           string `json:"doctor_name" validate:"omitempty"`
	DoctorSpecialization string `json:"doctor_specialization" validate:"omitempty"`
	AppointmentDate      string `json:"appointment_date" validate:"omitempty"`
	AppointmentTime      string `json:"appointment_time" validate:"omitempty,timeformat"`
	Reason               string `json:"reason" validate:"omitempty"`
	Notes                string `json:"notes" validate:"omitempty"`
}

// UpdateRecordStatusRequest is the staff status override shared by
// appointments and laboratory tests.
type UpdateRecordStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                   uuid.UUID `json:"id"`
	PatientID            uuid.UUID `json:"patient_id"`
	PatientName          string    `json:"patient_name,omitempty"`
	DoctorName           string    `json:"doctor_name"`
	DoctorSpecialization string    `json:"doctor_specialization"`
	AppointmentDate      string    `json:"appointment_date"`
	AppointmentTime      string    `json:"appointment_time"`
	Status               string    `json:"status"`
	Reason               string    `json:"reason,omitempty"`
	Notes                string    `json:"notes,omitempty"`
	IsPast               bool      `json:"is_past"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
