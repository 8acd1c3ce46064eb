package repository

import (
	"context"

	"kist-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type PharmacyOrderRepository interface {
	Create(ctx context.Context, order *entity.PharmacyOrder) error
	FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.PharmacyOrder, error)
	List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) ([]entity.PharmacyOrder, error)
	Update(ctx context.Context, order *entity.PharmacyOrder) error
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) (int64, error)

	// Cancel atomically cancels an order ONLY while it is still pending or
	// processing. Returns affected rows: 1 = cancelled, 0 = no longer
	// cancellable (prevents the patient-cancel vs staff-update race).
	Cancel(ctx context.Context, scope entity.Scope, id uuid.UUID) (int64, error)

	// UpdateStatus is the staff operation; the target status is validated by
	// the caller, the source state is deliberately not.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (int64, error)
}
