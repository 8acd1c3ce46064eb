package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateLaboratoryTestRequest struct {
	TestName        string `json:"test_name" validate:"required"`
	TestDescription string `json:"test_description" validate:"required"`
	TestDate        string `json:"test_date" validate:"required"` // Format: YYYY-MM-DD
	TestTime        string `json:"test_time" validate:"required,timeformat"`
	Notes           string `json:"notes" validate:"omitempty"`
}

type UpdateLaboratoryTestRequest struct {
	TestName        string `json:"test_name" validate:"omitempty"`
	TestDescription string `json:"test_description" validate:"omitempty"`
	TestDate        string `json:"test_date" validate:"omitempty"`
	TestTime        string `json:"test_time" validate:"omitempty,timeformat"`
	Notes           string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type LaboratoryTestResponse struct {
	ID              uuid.UUID `json:"id"`
	PatientID       uuid.UUID `json:"patient_id"`
	PatientName     string    `json:"patient_name,omitempty"`
	TestName        string    `json:"test_name"`
	TestDescription string    `json:"test_description"`
	TestDate        string    `json:"test_date"`
	TestTime        string    `json:"test_time"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	IsPast          bool      `json:"is_past"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type LaboratoryTestListResponse struct {
	Tests []LaboratoryTestResponse `json:"laboratory_tests"`
	Total int                      `json:"total"`
}
