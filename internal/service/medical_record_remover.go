package service

import (
	"context"
	"errors"

	"kist-clinic-backend/internal/domain/entity"
	"kist-clinic-backend/internal/domain/repository"
	"kist-clinic-backend/internal/infrastructure/storage"
)

// ErrRecordAlreadyDeleted is returned when the row was gone before we got to
// it (a concurrent delete); the blob is still removed.
var ErrRecordAlreadyDeleted = errors.New("medical record already deleted")

// MedicalRecordRemover is the one place a medical record and its backing
// blob are deleted together. Every deletion path (direct delete, the
// delete_record action, the retention batch) goes through Remove, so the
// blob can never be orphaned by one path forgetting the file.
type MedicalRecordRemover struct {
	recordRepo repository.MedicalRecordRepository
	blobs      *storage.BlobStore
}

func NewMedicalRecordRemover(recordRepo repository.MedicalRecordRepository, blobs *storage.BlobStore) *MedicalRecordRemover {
	return &MedicalRecordRemover{
		recordRepo: recordRepo,
		blobs:      blobs,
	}
}

// Remove deletes the row, then the blob. Blob removal is idempotent, so
// replaying Remove after a partial failure converges.
func (r *MedicalRecordRemover) Remove(ctx context.Context, record *entity.MedicalRecord) error {
	affected, err := r.recordRepo.Delete(ctx, record.ID)
	if err != nil {
		return err
	}

	if err := r.blobs.Remove(record.FilePath); err != nil {
		return err
	}

	if affected == 0 {
		return ErrRecordAlreadyDeleted
	}
	return nil
}
