package repository

import (
	"context"
	"time"

	"kist-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type MedicalRecordRepository interface {
	Create(ctx context.Context, record *entity.MedicalRecord) error
	FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.MedicalRecord, error)
	List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) ([]entity.MedicalRecord, error)
	FindUploadedBefore(ctx context.Context, cutoff time.Time) ([]entity.MedicalRecord, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
