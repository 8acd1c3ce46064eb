package usecase

import (
	"context"
	"testing"
	"time"

	"kist-clinic-backend/internal/delivery/dto"
	"kist-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func createAppointmentRequest(date string) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		DoctorName:           "Dr. Rahimi",
		DoctorSpecialization: "Cardiology",
		AppointmentDate:      date,
		AppointmentTime:      "10:30:00",
		Reason:               "Checkup",
	}
}

func TestAppointmentCreate(t *testing.T) {
	repo := newMockAppointmentRepo()
	uc := NewAppointmentUsecase(testLogger(), repo, &mockAudit{})
	patientID := uuid.New()

	resp, err := uc.Create(context.Background(), patientID, createAppointmentRequest(time.Now().AddDate(0, 0, 3).Format("2006-01-02")))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if resp.PatientID != patientID {
		t.Errorf("PatientID = %s, want %s", resp.PatientID, patientID)
	}
	if resp.Status != string(entity.RecordStatusPending) {
		t.Errorf("Status = %s, want pending", resp.Status)
	}
}

func TestAppointmentCreateDateValidation(t *testing.T) {
	uc := NewAppointmentUsecase(testLogger(), newMockAppointmentRepo(), &mockAudit{})
	patientID := uuid.New()

	// Yesterday is rejected.
	_, err := uc.Create(context.Background(), patientID, createAppointmentRequest(time.Now().AddDate(0, 0, -1).Format("2006-01-02")))
	if err != ErrPastDate {
		t.Errorf("Create(yesterday) error = %v, want ErrPastDate", err)
	}

	// Today is allowed; only the date component counts.
	if _, err := uc.Create(context.Background(), patientID, createAppointmentRequest(time.Now().Format("2006-01-02"))); err != nil {
		t.Errorf("Create(today) error = %v, want nil", err)
	}

	// Malformed dates are their own error.
	_, err = uc.Create(context.Background(), patientID, createAppointmentRequest("15-03-2026"))
	if err != ErrInvalidDateFormat {
		t.Errorf("Create(malformed) error = %v, want ErrInvalidDateFormat", err)
	}
}

func TestAppointmentGetScoping(t *testing.T) {
	repo := newMockAppointmentRepo()
	uc := NewAppointmentUsecase(testLogger(), repo, &mockAudit{})
	owner := uuid.New()

	resp, err := uc.Create(context.Background(), owner, createAppointmentRequest(time.Now().AddDate(0, 0, 3).Format("2006-01-02")))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := uc.Get(context.Background(), entity.OwnerScope(owner), resp.ID); err != nil {
		t.Errorf("Get() by owner error = %v", err)
	}
	if _, err := uc.Get(context.Background(), entity.OwnerScope(uuid.New()), resp.ID); err != ErrAppointmentNotFound {
		t.Errorf("Get() by stranger error = %v, want ErrAppointmentNotFound", err)
	}
	if _, err := uc.Get(context.Background(), entity.StaffScope(uuid.New()), resp.ID); err != nil {
		t.Errorf("Get() by staff error = %v", err)
	}
}

func TestAppointmentUpdateStatus(t *testing.T) {
	repo := newMockAppointmentRepo()
	audit := &mockAudit{}
	uc := NewAppointmentUsecase(testLogger(), repo, audit)
	staffID := uuid.New()

	resp, err := uc.Create(context.Background(), uuid.New(), createAppointmentRequest(time.Now().AddDate(0, 0, 3).Format("2006-01-02")))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := uc.UpdateStatus(context.Background(), staffID, resp.ID, &dto.UpdateRecordStatusRequest{Status: "approved"}); err != ErrInvalidStatus {
		t.Errorf("UpdateStatus(approved) error = %v, want ErrInvalidStatus", err)
	}

	updated, err := uc.UpdateStatus(context.Background(), staffID, resp.ID, &dto.UpdateRecordStatusRequest{Status: "confirmed"})
	if err != nil {
		t.Fatalf("UpdateStatus(confirmed) error = %v", err)
	}
	if updated.Status != string(entity.RecordStatusConfirmed) {
		t.Errorf("Status = %s, want confirmed", updated.Status)
	}
	if len(audit.actions) != 1 || audit.actions[0] != entity.AuditActionAppointmentStatus {
		t.Errorf("audit actions = %v", audit.actions)
	}

	if _, err := uc.UpdateStatus(context.Background(), staffID, uuid.New(), &dto.UpdateRecordStatusRequest{Status: "confirmed"}); err != ErrAppointmentNotFound {
		t.Errorf("UpdateStatus(unknown id) error = %v, want ErrAppointmentNotFound", err)
	}
}

func TestAppointmentDelete(t *testing.T) {
	repo := newMockAppointmentRepo()
	uc := NewAppointmentUsecase(testLogger(), repo, &mockAudit{})
	owner := uuid.New()

	resp, err := uc.Create(context.Background(), owner, createAppointmentRequest(time.Now().AddDate(0, 0, 3).Format("2006-01-02")))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := uc.Delete(context.Background(), entity.OwnerScope(uuid.New()), resp.ID); err != ErrAppointmentNotFound {
		t.Errorf("Delete() by stranger error = %v, want ErrAppointmentNotFound", err)
	}
	if err := uc.Delete(context.Background(), entity.OwnerScope(owner), resp.ID); err != nil {
		t.Errorf("Delete() by owner error = %v", err)
	}
	if err := uc.Delete(context.Background(), entity.OwnerScope(owner), resp.ID); err != ErrAppointmentNotFound {
		t.Errorf("second Delete() error = %v, want ErrAppointmentNotFound", err)
	}
}
