package repository

import (
	"context"

	"kist-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.Appointment, error)
	List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) ([]entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) (int64, error)

	// UpdateStatus sets the status in a single conditional UPDATE and
	// returns the affected row count. No source-state guard: this is the
	// staff escape hatch.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RecordStatus) (int64, error)
}
