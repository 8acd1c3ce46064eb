package repository

import (
	"context"

	"kist-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type LaboratoryTestRepository interface {
	Create(ctx context.Context, test *entity.LaboratoryTest) error
	FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.LaboratoryTest, error)
	List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) ([]entity.LaboratoryTest, error)
	Update(ctx context.Context, test *entity.LaboratoryTest) error
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) (int64, error)

	// Cancel sets status to cancelled in one atomic UPDATE, whatever the
	// current status is. Returns affected rows (0 means the row is not
	// visible in the caller's scope).
	Cancel(ctx context.Context, scope entity.Scope, id uuid.UUID) (int64, error)

	// UpdateStatus is the staff escape hatch; no source-state guard.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RecordStatus) (int64, error)
}
