package repository

import (
	"context"

	"kist-clinic-backend/internal/domain/entity"
)

type MedicineRepository interface {
	Create(ctx context.Context, medicine *entity.Medicine) error
	FindByID(ctx context.Context, id string) (*entity.Medicine, error)
	List(ctx context.Context, filter entity.MedicineFilter) ([]entity.Medicine, error)
	Update(ctx context.Context, medicine *entity.Medicine) error
	Categories(ctx context.Context) ([]string, error)

	// Delete nulls out legacy pharmacy_order_items references pointing at
	// the medicine before removing the row, inside one transaction.
	Delete(ctx context.Context, id string) error
}
