package service

import (
	"context"
	"time"

	"kist-clinic-backend/internal/domain/entity"
	"kist-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PurgedRecord identifies one record the retention job deleted (or would
// delete on a dry run).
type PurgedRecord struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	PatientID  uuid.UUID `json:"patient_id"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// PurgeResult summarizes one retention run. Deleted counts actual deletions
// only; on a dry run it stays zero and Eligible carries the estimate.
type PurgeResult struct {
	DryRun   bool           `json:"dry_run"`
	Cutoff   time.Time      `json:"cutoff"`
	Eligible int            `json:"eligible"`
	Deleted  int            `json:"deleted"`
	Failed   int            `json:"failed"`
	Records  []PurgedRecord `json:"records"`
}

// RetentionService purges medical records older than the retention window.
type RetentionService struct {
	log        *logrus.Logger
	recordRepo repository.MedicalRecordRepository
	remover    *MedicalRecordRemover
	audit      AuditService
	maxAge     time.Duration
}

func NewRetentionService(
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	remover *MedicalRecordRemover,
	audit AuditService,
	maxAge time.Duration,
) *RetentionService {
	return &RetentionService{
		log:        log,
		recordRepo: recordRepo,
		remover:    remover,
		audit:      audit,
		maxAge:     maxAge,
	}
}

// PurgeOldRecords deletes every medical record uploaded before now-maxAge.
// Each record is handled independently: a failure is logged and counted,
// never aborting the rest of the batch. With dryRun set, the eligible
// records are reported and nothing is mutated.
func (s *RetentionService) PurgeOldRecords(ctx context.Context, dryRun bool) (*PurgeResult, error) {
	cutoff := time.Now().Add(-s.maxAge)

	old, err := s.recordRepo.FindUploadedBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	result := &PurgeResult{
		DryRun:   dryRun,
		Cutoff:   cutoff,
		Eligible: len(old),
	}

	if len(old) == 0 {
		s.log.Info("No old medical records to purge")
		return result, nil
	}

	s.log.Infof("Found %d medical records older than %s", len(old), s.maxAge)

	for _, record := range old {
		purged := PurgedRecord{
			ID:         record.ID,
			Title:      record.Title,
			PatientID:  record.PatientID,
			UploadedAt: record.UploadedAt,
		}

		if dryRun {
			s.log.Infof("Would delete record %s: %s (dry run)", record.ID, record.Title)
			result.Records = append(result.Records, purged)
			continue
		}

		if err := s.remover.Remove(ctx, &record); err != nil {
			s.log.Errorf("Error deleting medical record %s: %+v", record.ID, err)
			result.Failed++
			continue
		}

		s.log.Infof("Deleted record %s: %s", record.ID, record.Title)
		result.Deleted++
		result.Records = append(result.Records, purged)
		s.audit.Record(ctx, nil, entity.AuditActionRecordPurge, "medical_record", record.ID.String(), purged, nil)
	}

	return result, nil
}
