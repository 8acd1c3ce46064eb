package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAppointmentIsPast(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		date  time.Time
		clock string
		want  bool
	}{
		{"yesterday", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), "12:00:00", true},
		{"earlier today", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), "09:30:00", true},
		{"later today", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), "15:00:00", false},
		{"tomorrow", time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), "09:00:00", false},
		{"unparseable clock falls back to midnight", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), "bogus", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{AppointmentDate: tt.date, AppointmentTime: tt.clock}
			if got := a.IsPast(now); got != tt.want {
				t.Errorf("IsPast() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLaboratoryTestIsPast(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)

	lt := &LaboratoryTest{
		TestDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		TestTime: "08:00:00",
	}
	if !lt.IsPast(now) {
		t.Error("IsPast() = false for a test five days ago")
	}

	lt.TestDate = time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	if lt.IsPast(now) {
		t.Error("IsPast() = true for a test five days ahead")
	}
}

func TestUserCanAccess(t *testing.T) {
	owner := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	other := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	patient := &User{ID: owner}
	if !patient.CanAccess(owner) {
		t.Error("owner should access own records")
	}
	if patient.CanAccess(other) {
		t.Error("non-staff should not access foreign records")
	}

	staff := &User{ID: other, IsStaff: true}
	if !staff.CanAccess(owner) {
		t.Error("staff should access any record")
	}
}
