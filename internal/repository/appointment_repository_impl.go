package repository

import (
	"context"
	"errors"

	"kist-clinic-backend/internal/domain/entity"
	domainRepo "kist-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var appointmentOrderings = map[string]bool{
	"appointment_date": true,
	"appointment_time": true,
	"created_at":       true,
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := scoped(r.db.WithContext(ctx), scope).Preload("Patient").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := scoped(r.db.WithContext(ctx), scope).
		Preload("Patient").
		Order(orderClause(ordering, appointmentOrderings, "appointment_date DESC, appointment_time DESC")).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) (int64, error) {
	result := scoped(r.db.WithContext(ctx), scope).Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RecordStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
