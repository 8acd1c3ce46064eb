package entity

import (
	"time"

	"github.com/google/uuid"
)

// LaboratoryTest is a lab work request owned by exactly one patient.
// Unlike appointments it exposes a patient self-service cancel.
type LaboratoryTest struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID    `gorm:"type:uuid;not null;index" json:"patient_id"`
	TestName        string       `gorm:"type:varchar(255);not null" json:"test_name"`
	TestDescription string       `gorm:"type:text;not null" json:"test_description"`
	TestDate        time.Time    `gorm:"type:date;not null;index" json:"test_date"`
	TestTime        string       `gorm:"type:time;not null" json:"test_time"`
	Status          RecordStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes           string       `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (LaboratoryTest) TableName() string {
	return "laboratory_tests"
}

// IsPast reports whether the combined date+time instant is before now.
func (t *LaboratoryTest) IsPast(now time.Time) bool {
	return combineDateAndClock(t.TestDate, t.TestTime).Before(now)
}
