package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeLayout is the strict wall-clock format clinical records accept.
const TimeLayout = "15:04:05"

// Appointment is a consultation request owned by exactly one patient.
type Appointment struct {
	ID                   uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID            uuid.UUID    `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorName           string       `gorm:"type:varchar(255);not null" json:"doctor_name"`
	DoctorSpecialization string       `gorm:"type:varchar(255);not null" json:"doctor_specialization"`
	AppointmentDate      time.Time    `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime      string       `gorm:"type:time;not null" json:"appointment_time"`
	Status               RecordStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Reason               string       `gorm:"type:text" json:"reason,omitempty"`
	Notes                string       `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt            time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPast reports whether the combined date+time instant is before now.
func (a *Appointment) IsPast(now time.Time) bool {
	return combineDateAndClock(a.AppointmentDate, a.AppointmentTime).Before(now)
}

// combineDateAndClock joins a date-only value with an HH:MM:SS wall clock.
// An unparseable clock falls back to midnight; creation validates the format,
// so this only happens for rows written before the strict parse existed.
func combineDateAndClock(date time.Time, clock string) time.Time {
	t, err := time.Parse(TimeLayout, clock)
	if err != nil {
		t = time.Time{}
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, time.Local)
}
