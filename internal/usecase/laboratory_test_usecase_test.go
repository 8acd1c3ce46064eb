package usecase

import (
	"context"
	"testing"
	"time"

	"kist-clinic-backend/internal/delivery/dto"
	"kist-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func newLabTestFixture(repo *mockLabTestRepo, patientID uuid.UUID, status entity.RecordStatus) uuid.UUID {
	id := uuid.New()
	repo.tests[id] = &entity.LaboratoryTest{
		ID:              id,
		PatientID:       patientID,
		TestName:        "Blood panel",
		TestDescription: "Full blood count",
		TestDate:        time.Now().AddDate(0, 0, 7),
		TestTime:        "09:00:00",
		Status:          status,
	}
	return id
}

func TestLabTestCancelFromAnyState(t *testing.T) {
	// Lab tests, unlike pharmacy orders, can always be cancelled.
	for _, status := range []entity.RecordStatus{
		entity.RecordStatusPending,
		entity.RecordStatusConfirmed,
		entity.RecordStatusCompleted,
		entity.RecordStatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			repo := newMockLabTestRepo()
			audit := &mockAudit{}
			uc := NewLaboratoryTestUsecase(testLogger(), repo, audit)
			patientID := uuid.New()
			id := newLabTestFixture(repo, patientID, status)

			resp, err := uc.Cancel(context.Background(), entity.OwnerScope(patientID), id)
			if err != nil {
				t.Fatalf("Cancel() error = %v", err)
			}
			if resp.Status != string(entity.RecordStatusCancelled) {
				t.Errorf("Status = %s, want cancelled", resp.Status)
			}
			if len(audit.actions) != 1 || audit.actions[0] != entity.AuditActionLabTestCancel {
				t.Errorf("audit actions = %v", audit.actions)
			}
		})
	}
}

func TestLabTestCancelScoping(t *testing.T) {
	repo := newMockLabTestRepo()
	uc := NewLaboratoryTestUsecase(testLogger(), repo, &mockAudit{})
	owner := uuid.New()
	id := newLabTestFixture(repo, owner, entity.RecordStatusPending)

	if _, err := uc.Cancel(context.Background(), entity.OwnerScope(uuid.New()), id); err != ErrLabTestNotFound {
		t.Fatalf("Cancel() by stranger error = %v, want ErrLabTestNotFound", err)
	}
}

func TestLabTestCreateRejectsPastDate(t *testing.T) {
	uc := NewLaboratoryTestUsecase(testLogger(), newMockLabTestRepo(), &mockAudit{})

	_, err := uc.Create(context.Background(), uuid.New(), &dto.CreateLaboratoryTestRequest{
		TestName:        "Blood panel",
		TestDescription: "Full blood count",
		TestDate:        time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
		TestTime:        "09:00:00",
	})
	if err != ErrPastDate {
		t.Fatalf("Create() error = %v, want ErrPastDate", err)
	}
}

func TestLabTestUpdateStatusValidation(t *testing.T) {
	repo := newMockLabTestRepo()
	uc := NewLaboratoryTestUsecase(testLogger(), repo, &mockAudit{})
	staffID := uuid.New()
	id := newLabTestFixture(repo, uuid.New(), entity.RecordStatusCancelled)

	if _, err := uc.UpdateStatus(context.Background(), staffID, id, &dto.UpdateRecordStatusRequest{Status: "done"}); err != ErrInvalidStatus {
		t.Fatalf("UpdateStatus(done) error = %v, want ErrInvalidStatus", err)
	}

	// Reopening a cancelled test is an allowed staff correction.
	resp, err := uc.UpdateStatus(context.Background(), staffID, id, &dto.UpdateRecordStatusRequest{Status: "confirmed"})
	if err != nil {
		t.Fatalf("UpdateStatus(confirmed) error = %v", err)
	}
	if resp.Status != string(entity.RecordStatusConfirmed) {
		t.Errorf("Status = %s, want confirmed", resp.Status)
	}
}
