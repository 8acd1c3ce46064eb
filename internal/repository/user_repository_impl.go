package repository

import (
	"context"
	"errors"

	"kist-clinic-backend/internal/domain/entity"
	domainRepo "kist-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, scope entity.Scope) ([]entity.User, error) {
	var users []entity.User
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if !scope.Staff {
		q = q.Where("id = ?", scope.UserID)
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// DeleteCascade removes the user and all owned rows in one transaction.
// Medical-record blob paths are collected first so the caller can purge the
// files once the transaction has committed.
func (r *userRepository) DeleteCascade(ctx context.Context, id uuid.UUID) ([]string, error) {
	var filePaths []string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var records []entity.MedicalRecord
		if err := tx.Where("patient_id = ?", id).Find(&records).Error; err != nil {
			return err
		}
		for _, rec := range records {
			filePaths = append(filePaths, rec.FilePath)
		}

		if err := tx.Where("patient_id = ?", id).Delete(&entity.Appointment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", id).Delete(&entity.LaboratoryTest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", id).Delete(&entity.PharmacyOrder{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", id).Delete(&entity.MedicalRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.User{}).Error
	})
	if err != nil {
		return nil, err
	}
	return filePaths, nil
}
