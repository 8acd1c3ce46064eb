package dto

import (
	"time"

	"github.com/google/uuid"
)

// Medical records are created via multipart upload (title, description and
// the file itself come as form fields), so there is no JSON create request.

type MedicalRecordResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	PatientName string    `json:"patient_name,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	FileURL     string    `json:"file_url"`
	FileType    string    `json:"file_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"medical_records"`
	Total   int                     `json:"total"`
}
