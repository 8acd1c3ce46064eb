package service

import (
	"context"
	"testing"
	"time"

	"kist-clinic-backend/internal/infrastructure/storage"

	"github.com/spf13/afero"
)

func TestRemoverDeletesRowAndBlob(t *testing.T) {
	repo := newMockRecordRepo()
	blobs := storage.NewBlobStore(afero.NewMemMapFs(), "media")
	remover := NewMedicalRecordRemover(repo, blobs)

	record := seedRecord(t, repo, blobs, time.Now())

	if err := remover.Remove(context.Background(), record); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if _, ok := repo.records[record.ID]; ok {
		t.Error("row still present")
	}
	if exists, _ := blobs.Exists(record.FilePath); exists {
		t.Error("blob still present")
	}
}

func TestRemoverConcurrentDelete(t *testing.T) {
	repo := newMockRecordRepo()
	blobs := storage.NewBlobStore(afero.NewMemMapFs(), "media")
	remover := NewMedicalRecordRemover(repo, blobs)

	record := seedRecord(t, repo, blobs, time.Now())

	// Simulate another path winning the race on the row.
	delete(repo.records, record.ID)

	err := remover.Remove(context.Background(), record)
	if err != ErrRecordAlreadyDeleted {
		t.Fatalf("Remove() error = %v, want ErrRecordAlreadyDeleted", err)
	}

	// The blob is still cleaned up.
	if exists, _ := blobs.Exists(record.FilePath); exists {
		t.Error("blob still present after replayed remove")
	}
}
