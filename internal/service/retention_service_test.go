package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"kist-clinic-backend/internal/domain/entity"
	"kist-clinic-backend/internal/infrastructure/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// mockRecordRepo is a map-backed MedicalRecordRepository. Deletes can be
// forced to fail per record ID to exercise error isolation.
type mockRecordRepo struct {
	records    map[uuid.UUID]*entity.MedicalRecord
	failDelete map[uuid.UUID]bool
}

func newMockRecordRepo() *mockRecordRepo {
	return &mockRecordRepo{
		records:    make(map[uuid.UUID]*entity.MedicalRecord),
		failDelete: make(map[uuid.UUID]bool),
	}
}

func (m *mockRecordRepo) Create(ctx context.Context, r *entity.MedicalRecord) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	cp := *r
	m.records[r.ID] = &cp
	return nil
}

func (m *mockRecordRepo) FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.MedicalRecord, error) {
	r, ok := m.records[id]
	if !ok || (!scope.Staff && scope.UserID != r.PatientID) {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *mockRecordRepo) List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) ([]entity.MedicalRecord, error) {
	var out []entity.MedicalRecord
	for _, r := range m.records {
		if scope.Staff || scope.UserID == r.PatientID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRecordRepo) FindUploadedBefore(ctx context.Context, cutoff time.Time) ([]entity.MedicalRecord, error) {
	var out []entity.MedicalRecord
	for _, r := range m.records {
		if r.UploadedAt.Before(cutoff) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRecordRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.failDelete[id] {
		return 0, errors.New("forced delete failure")
	}
	if _, ok := m.records[id]; !ok {
		return 0, nil
	}
	delete(m.records, id)
	return 1, nil
}

// mockAuditService records actions without a database.
type mockAuditService struct {
	actions []string
}

func (m *mockAuditService) Record(ctx context.Context, userID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) {
	m.actions = append(m.actions, action)
}

func seedRecord(t *testing.T, repo *mockRecordRepo, blobs *storage.BlobStore, uploadedAt time.Time) *entity.MedicalRecord {
	t.Helper()

	path, err := blobs.SaveMedicalRecord("report.pdf", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("SaveMedicalRecord() error = %v", err)
	}

	record := &entity.MedicalRecord{
		ID:         uuid.New(),
		PatientID:  uuid.New(),
		Title:      "Report",
		FilePath:   path,
		FileType:   entity.FileTypePDF,
		UploadedAt: uploadedAt,
	}
	repo.records[record.ID] = record
	return record
}

func newRetentionFixture() (*RetentionService, *mockRecordRepo, *storage.BlobStore, *mockAuditService) {
	repo := newMockRecordRepo()
	blobs := storage.NewBlobStore(afero.NewMemMapFs(), "media")
	remover := NewMedicalRecordRemover(repo, blobs)
	audit := &mockAuditService{}
	svc := NewRetentionService(testLogger(), repo, remover, audit, 21*24*time.Hour)
	return svc, repo, blobs, audit
}

func TestPurgeOldRecords(t *testing.T) {
	svc, repo, blobs, audit := newRetentionFixture()

	oldRec := seedRecord(t, repo, blobs, time.Now().Add(-30*24*time.Hour))
	edgeRec := seedRecord(t, repo, blobs, time.Now().Add(-22*24*time.Hour))
	freshRec := seedRecord(t, repo, blobs, time.Now().Add(-5*24*time.Hour))

	result, err := svc.PurgeOldRecords(context.Background(), false)
	if err != nil {
		t.Fatalf("PurgeOldRecords() error = %v", err)
	}

	if result.Eligible != 2 || result.Deleted != 2 || result.Failed != 0 {
		t.Fatalf("result = eligible %d deleted %d failed %d, want 2/2/0", result.Eligible, result.Deleted, result.Failed)
	}

	for _, rec := range []*entity.MedicalRecord{oldRec, edgeRec} {
		if _, ok := repo.records[rec.ID]; ok {
			t.Errorf("record %s still present after purge", rec.ID)
		}
		if exists, _ := blobs.Exists(rec.FilePath); exists {
			t.Errorf("blob %s still present after purge", rec.FilePath)
		}
	}

	if _, ok := repo.records[freshRec.ID]; !ok {
		t.Error("fresh record was purged")
	}
	if exists, _ := blobs.Exists(freshRec.FilePath); !exists {
		t.Error("fresh record blob was removed")
	}

	if len(audit.actions) != 2 {
		t.Errorf("audit actions = %v, want two purge entries", audit.actions)
	}
}

func TestPurgeOldRecordsDryRun(t *testing.T) {
	svc, repo, blobs, audit := newRetentionFixture()

	rec := seedRecord(t, repo, blobs, time.Now().Add(-30*24*time.Hour))

	result, err := svc.PurgeOldRecords(context.Background(), true)
	if err != nil {
		t.Fatalf("PurgeOldRecords() error = %v", err)
	}

	if !result.DryRun {
		t.Error("DryRun = false")
	}
	if result.Eligible != 1 || result.Deleted != 0 {
		t.Errorf("result = eligible %d deleted %d, want 1/0", result.Eligible, result.Deleted)
	}
	if len(result.Records) != 1 || result.Records[0].ID != rec.ID {
		t.Errorf("Records = %v, want the eligible record", result.Records)
	}

	if _, ok := repo.records[rec.ID]; !ok {
		t.Error("dry run deleted the record")
	}
	if exists, _ := blobs.Exists(rec.FilePath); !exists {
		t.Error("dry run removed the blob")
	}
	if len(audit.actions) != 0 {
		t.Errorf("dry run wrote audit entries: %v", audit.actions)
	}
}

func TestPurgeOldRecordsErrorIsolation(t *testing.T) {
	svc, repo, blobs, _ := newRetentionFixture()

	bad := seedRecord(t, repo, blobs, time.Now().Add(-30*24*time.Hour))
	good := seedRecord(t, repo, blobs, time.Now().Add(-30*24*time.Hour))
	repo.failDelete[bad.ID] = true

	result, err := svc.PurgeOldRecords(context.Background(), false)
	if err != nil {
		t.Fatalf("PurgeOldRecords() error = %v", err)
	}

	if result.Eligible != 2 || result.Deleted != 1 || result.Failed != 1 {
		t.Fatalf("result = eligible %d deleted %d failed %d, want 2/1/1", result.Eligible, result.Deleted, result.Failed)
	}
	if _, ok := repo.records[good.ID]; ok {
		t.Error("good record survived a run that should delete it")
	}
	if _, ok := repo.records[bad.ID]; !ok {
		t.Error("failing record was removed despite the delete error")
	}
}

func TestPurgeOldRecordsEmpty(t *testing.T) {
	svc, _, _, _ := newRetentionFixture()

	result, err := svc.PurgeOldRecords(context.Background(), false)
	if err != nil {
		t.Fatalf("PurgeOldRecords() error = %v", err)
	}
	if result.Eligible != 0 || result.Deleted != 0 || result.Failed != 0 {
		t.Errorf("result = %+v, want all zero", result)
	}
}
