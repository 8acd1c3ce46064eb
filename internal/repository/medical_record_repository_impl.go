package repository

import (
	"context"
	"errors"
	"time"

	"kist-clinic-backend/internal/domain/entity"
	domainRepo "kist-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalRecordRepository struct {
	db *gorm.DB
}

func NewMedicalRecordRepository(db *gorm.DB) domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *entity.MedicalRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *medicalRecordRepository) FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := scoped(r.db.WithContext(ctx), scope).Preload("Patient").Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := scoped(r.db.WithContext(ctx), scope).
		Preload("Patient").
		Order(orderClause(ordering, map[string]bool{"uploaded_at": true, "title": true}, "uploaded_at DESC")).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) FindUploadedBefore(ctx context.Context, cutoff time.Time) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := r.db.WithContext(ctx).
		Where("uploaded_at < ?", cutoff).
		Order("uploaded_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.MedicalRecord{})
	return result.RowsAffected, result.Error
}
