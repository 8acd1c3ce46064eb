package repository

import (
	"context"
	"errors"

	"kist-clinic-backend/internal/domain/entity"
	domainRepo "kist-clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

var medicineOrderings = map[string]bool{
	"name":     true,
	"price":    true,
	"category": true,
	"stock":    true,
}

type medicineRepository struct {
	db *gorm.DB
}

func NewMedicineRepository(db *gorm.DB) domainRepo.MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	return r.db.WithContext(ctx).Create(medicine).Error
}

func (r *medicineRepository) FindByID(ctx context.Context, id string) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) List(ctx context.Context, filter entity.MedicineFilter) ([]entity.Medicine, error) {
	q := r.db.WithContext(ctx).Model(&entity.Medicine{})

	if filter.Category != "" {
		q = q.Where("LOWER(category) = LOWER(?)", filter.Category)
	}
	if filter.MinPrice != "" {
		q = q.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != "" {
		q = q.Where("price <= ?", filter.MaxPrice)
	}
	if filter.InStock {
		q = q.Where("stock > 0")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ? OR category ILIKE ?", pattern, pattern, pattern)
	}

	var medicines []entity.Medicine
	err := q.Order(orderClause(filter.Ordering, medicineOrderings, "category ASC, name ASC")).
		Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) Update(ctx context.Context, medicine *entity.Medicine) error {
	return r.db.WithContext(ctx).Save(medicine).Error
}

func (r *medicineRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&entity.Medicine{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Delete clears legacy order-item references before removing the row. The
// pharmacy_order_items table survives from a prior schema generation and
// still carries medicine_code foreign keys.
func (r *medicineRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"UPDATE pharmacy_order_items SET medicine_code = NULL WHERE medicine_code = ?", id,
		).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Medicine{}).Error
	})
}
