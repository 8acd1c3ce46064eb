package usecase

import (
	"context"
	"errors"
	"time"

	"kist-clinic-backend/internal/converter"
	"kist-clinic-backend/internal/delivery/dto"
	"kist-clinic-backend/internal/domain/entity"
	"kist-clinic-backend/internal/domain/repository"
	"kist-clinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPastDate            = errors.New("date cannot be in the past")
	ErrInvalidStatus       = errors.New("invalid status value")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) (*dto.AppointmentListResponse, error)
	Get(ctx context.Context, scope entity.Scope, id uuid.UUID) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, scope entity.Scope, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error
	UpdateStatus(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateRecordStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	audit           service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	audit service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		audit:           audit,
	}
}

// parseFutureDate parses a YYYY-MM-DD value and rejects dates before today.
// Only the date component counts: booking for later today is allowed even if
// the requested wall-clock time has already passed.
func parseFutureDate(value string) (time.Time, error) {
	date, err := time.Parse(converter.DateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return time.Time{}, ErrPastDate
	}

	return date, nil
}

func (u *appointmentUsecase) Create(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := parseFutureDate(req.AppointmentDate)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID:            patientID,
		DoctorName:           req.DoctorName,
		DoctorSpecialization: req.DoctorSpecialization,
		AppointmentDate:      date,
		AppointmentTime:      req.AppointmentTime,
		Status:               entity.RecordStatusPending,
		Reason:               req.Reason,
		Notes:                req.Notes,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.List(ctx, scope, ordering)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) Get(ctx context.Context, scope entity.Scope, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, scope, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, scope entity.Scope, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, scope, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.AppointmentDate != "" {
		date, err := parseFutureDate(req.AppointmentDate)
		if err != nil {
			return nil, err
		}
		appointment.AppointmentDate = date
	}
	if req.AppointmentTime != "" {
		appointment.AppointmentTime = req.AppointmentTime
	}
	if req.DoctorName != "" {
		appointment.DoctorName = req.DoctorName
	}
	if req.DoctorSpecialization != "" {
		appointment.DoctorSpecialization = req.DoctorSpecialization
	}
	if req.Reason != "" {
		appointment.Reason = req.Reason
	}
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	affected, err := u.appointmentRepo.Delete(ctx, scope, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// UpdateStatus is the staff override. The target status must be one of the
// declared values, but any source state is accepted: staff use this to fix
// records, including reopening cancelled ones.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateRecordStatusRequest) (*dto.AppointmentResponse, error) {
	status := entity.RecordStatus(req.Status)
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, entity.StaffScope(actorID), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	oldStatus := appointment.Status

	affected, err := u.appointmentRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentNotFound
	}
	appointment.Status = status

	u.audit.Record(ctx, &actorID, entity.AuditActionAppointmentStatus, "appointment", id.String(), oldStatus, status)

	return converter.AppointmentToResponse(appointment), nil
}
