package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// File type values for MedicalRecord. jpeg uploads are normalized to jpg.
const (
	FileTypePDF   = "pdf"
	FileTypeJPG   = "jpg"
	FileTypePNG   = "png"
	FileTypeOther = "other"
)

// MedicalRecord is an uploaded document owned by exactly one patient.
// The backing blob lives outside the database; deleting the row must always
// take the blob with it.
type MedicalRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	FilePath    string    `gorm:"type:text;not null" json:"file_path"`
	FileType    string    `gorm:"type:varchar(10);not null" json:"file_type"`
	UploadedAt  time.Time `gorm:"autoCreateTime;index" json:"uploaded_at"`

	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

// FileTypeFromName derives the stored file type from the uploaded filename
// extension. Content sniffing is deliberately not done.
func FileTypeFromName(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return FileTypePDF
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return FileTypeJPG
	case strings.HasSuffix(lower, ".png"):
		return FileTypePNG
	default:
		return FileTypeOther
	}
}
