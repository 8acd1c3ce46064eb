package repository

import (
	"context"
	"errors"

	"kist-clinic-backend/internal/domain/entity"
	domainRepo "kist-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var laboratoryTestOrderings = map[string]bool{
	"test_date":  true,
	"test_time":  true,
	"created_at": true,
}

type laboratoryTestRepository struct {
	db *gorm.DB
}

func NewLaboratoryTestRepository(db *gorm.DB) domainRepo.LaboratoryTestRepository {
	return &laboratoryTestRepository{db: db}
}

func (r *laboratoryTestRepository) Create(ctx context.Context, test *entity.LaboratoryTest) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *laboratoryTestRepository) FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.LaboratoryTest, error) {
	var test entity.LaboratoryTest
	err := scoped(r.db.WithContext(ctx), scope).Preload("Patient").Where("id = ?", id).First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}

func (r *laboratoryTestRepository) List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) ([]entity.LaboratoryTest, error) {
	var tests []entity.LaboratoryTest
	err := scoped(r.db.WithContext(ctx), scope).
		Preload("Patient").
		Order(orderClause(ordering, laboratoryTestOrderings, "test_date DESC, test_time DESC")).
		Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *laboratoryTestRepository) Update(ctx context.Context, test *entity.LaboratoryTest) error {
	return r.db.WithContext(ctx).Save(test).Error
}

func (r *laboratoryTestRepository) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) (int64, error) {
	result := scoped(r.db.WithContext(ctx), scope).Where("id = ?", id).Delete(&entity.LaboratoryTest{})
	return result.RowsAffected, result.Error
}

// Cancel sets the status to cancelled whatever it currently is. The patient
// self-cancel carries no source-state guard.
func (r *laboratoryTestRepository) Cancel(ctx context.Context, scope entity.Scope, id uuid.UUID) (int64, error) {
	result := scoped(r.db.WithContext(ctx).Model(&entity.LaboratoryTest{}), scope).
		Where("id = ?", id).
		Update("status", entity.RecordStatusCancelled)
	return result.RowsAffected, result.Error
}

func (r *laboratoryTestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RecordStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.LaboratoryTest{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
