package repository

import (
	"context"
	"errors"

	"kist-clinic-backend/internal/domain/entity"
	domainRepo "kist-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var pharmacyOrderOrderings = map[string]bool{
	"created_at": true,
	"order_date": true,
	"status":     true,
}

type pharmacyOrderRepository struct {
	db *gorm.DB
}

func NewPharmacyOrderRepository(db *gorm.DB) domainRepo.PharmacyOrderRepository {
	return &pharmacyOrderRepository{db: db}
}

func (r *pharmacyOrderRepository) Create(ctx context.Context, order *entity.PharmacyOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *pharmacyOrderRepository) FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.PharmacyOrder, error) {
	var order entity.PharmacyOrder
	err := scoped(r.db.WithContext(ctx), scope).Preload("Patient").Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *pharmacyOrderRepository) List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) ([]entity.PharmacyOrder, error) {
	var orders []entity.PharmacyOrder
	err := scoped(r.db.WithContext(ctx), scope).
		Preload("Patient").
		Order(orderClause(ordering, pharmacyOrderOrderings, "created_at DESC")).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *pharmacyOrderRepository) Update(ctx context.Context, order *entity.PharmacyOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *pharmacyOrderRepository) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) (int64, error) {
	result := scoped(r.db.WithContext(ctx), scope).Where("id = ?", id).Delete(&entity.PharmacyOrder{})
	return result.RowsAffected, result.Error
}

// Cancel atomically cancels the order ONLY while it is still pending or
// processing. Returns affected rows: 1 = cancelled, 0 = the order moved on
// (prevents a lost update between a patient cancel and a staff update).
func (r *pharmacyOrderRepository) Cancel(ctx context.Context, scope entity.Scope, id uuid.UUID) (int64, error) {
	result := scoped(r.db.WithContext(ctx).Model(&entity.PharmacyOrder{}), scope).
		Where("id = ? AND status IN ?", id, []entity.OrderStatus{entity.OrderStatusPending, entity.OrderStatusProcessing}).
		Update("status", entity.OrderStatusCancelled)
	return result.RowsAffected, result.Error
}

func (r *pharmacyOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.PharmacyOrder{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
