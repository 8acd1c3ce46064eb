package usecase

import (
	"context"
	"errors"
	"io"

	"kist-clinic-backend/internal/converter"
	"kist-clinic-backend/internal/delivery/dto"
	"kist-clinic-backend/internal/domain/entity"
	"kist-clinic-backend/internal/domain/repository"
	"kist-clinic-backend/internal/infrastructure/storage"
	"kist-clinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrRecordNotFound = errors.New("medical record not found")

type MedicalRecordUsecase interface {
	Create(ctx context.Context, patientID uuid.UUID, title, description, filename string, file io.Reader) (*dto.MedicalRecordResponse, error)
	List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) (*dto.MedicalRecordListResponse, error)
	Get(ctx context.Context, scope entity.Scope, id uuid.UUID) (*dto.MedicalRecordResponse, error)
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error
}

type medicalRecordUsecase struct {
	log        *logrus.Logger
	recordRepo repository.MedicalRecordRepository
	blobs      *storage.BlobStore
	remover    *service.MedicalRecordRemover
	audit      service.AuditService
}

func NewMedicalRecordUsecase(
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	blobs *storage.BlobStore,
	remover *service.MedicalRecordRemover,
	audit service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		log:        log,
		recordRepo: recordRepo,
		blobs:      blobs,
		remover:    remover,
		audit:      audit,
	}
}

// Create stores the uploaded blob first, then the row. If the row insert
// fails the blob is removed again, so a failed upload leaves nothing behind.
func (u *medicalRecordUsecase) Create(ctx context.Context, patientID uuid.UUID, title, description, filename string, file io.Reader) (*dto.MedicalRecordResponse, error) {
	filePath, err := u.blobs.SaveMedicalRecord(filename, file)
	if err != nil {
		u.log.Warnf("Failed to store medical record blob: %+v", err)
		return nil, err
	}

	record := &entity.MedicalRecord{
		PatientID:   patientID,
		Title:       title,
		Description: description,
		FilePath:    filePath,
		FileType:    entity.FileTypeFromName(filename),
	}

	if err := u.recordRepo.Create(ctx, record); err != nil {
		if removeErr := u.blobs.Remove(filePath); removeErr != nil {
			u.log.Errorf("Failed to remove blob after insert failure: %+v", removeErr)
		}
		if isForeignKeyError(err, "patient") {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) (*dto.MedicalRecordListResponse, error) {
	records, err := u.recordRepo.List(ctx, scope, ordering)
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		Records: converter.MedicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

func (u *medicalRecordUsecase) Get(ctx context.Context, scope entity.Scope, id uuid.UUID) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindByID(ctx, scope, id)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	return converter.MedicalRecordToResponse(record), nil
}

// Delete removes the record and its blob through the shared remover. A
// concurrent delete of the same record is treated as success: the caller
// wanted it gone, and it is.
func (u *medicalRecordUsecase) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	record, err := u.recordRepo.FindByID(ctx, scope, id)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return err
	}
	if record == nil {
		return ErrRecordNotFound
	}

	if err := u.remover.Remove(ctx, record); err != nil && !errors.Is(err, service.ErrRecordAlreadyDeleted) {
		u.log.Warnf("Failed to delete medical record: %+v", err)
		return err
	}

	u.audit.Record(ctx, &scope.UserID, entity.AuditActionRecordDelete, "medical_record", id.String(), record.Title, nil)

	return nil
}
