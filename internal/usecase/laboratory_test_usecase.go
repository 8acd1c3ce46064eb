package usecase

import (
	"context"
	"errors"

	"kist-clinic-backend/internal/converter"
	"kist-clinic-backend/internal/delivery/dto"
	"kist-clinic-backend/internal/domain/entity"
	"kist-clinic-backend/internal/domain/repository"
	"kist-clinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrLabTestNotFound = errors.New("laboratory test not found")

type LaboratoryTestUsecase interface {
	Create(ctx context.Context, patientID uuid.UUID, req *dto.CreateLaboratoryTestRequest) (*dto.LaboratoryTestResponse, error)
	List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) (*dto.LaboratoryTestListResponse, error)
	Get(ctx context.Context, scope entity.Scope, id uuid.UUID) (*dto.LaboratoryTestResponse, error)
	Update(ctx context.Context, scope entity.Scope, id uuid.UUID, req *dto.UpdateLaboratoryTestRequest) (*dto.LaboratoryTestResponse, error)
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error
	Cancel(ctx context.Context, scope entity.Scope, id uuid.UUID) (*dto.LaboratoryTestResponse, error)
	UpdateStatus(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateRecordStatusRequest) (*dto.LaboratoryTestResponse, error)
}

type laboratoryTestUsecase struct {
	log      *logrus.Logger
	testRepo repository.LaboratoryTestRepository
	audit    service.AuditService
}

func NewLaboratoryTestUsecase(
	log *logrus.Logger,
	testRepo repository.LaboratoryTestRepository,
	audit service.AuditService,
) LaboratoryTestUsecase {
	return &laboratoryTestUsecase{
		log:      log,
		testRepo: testRepo,
		audit:    audit,
	}
}

func (u *laboratoryTestUsecase) Create(ctx context.Context, patientID uuid.UUID, req *dto.CreateLaboratoryTestRequest) (*dto.LaboratoryTestResponse, error) {
	date, err := parseFutureDate(req.TestDate)
	if err != nil {
		return nil, err
	}

	test := &entity.LaboratoryTest{
		PatientID:       patientID,
		TestName:        req.TestName,
		TestDescription: req.TestDescription,
		TestDate:        date,
		TestTime:        req.TestTime,
		Status:          entity.RecordStatusPending,
		Notes:           req.Notes,
	}

	if err := u.testRepo.Create(ctx, test); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to create laboratory test: %+v", err)
		return nil, err
	}

	return converter.LaboratoryTestToResponse(test), nil
}

func (u *laboratoryTestUsecase) List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) (*dto.LaboratoryTestListResponse, error) {
	tests, err := u.testRepo.List(ctx, scope, ordering)
	if err != nil {
		u.log.Warnf("Failed to list laboratory tests: %+v", err)
		return nil, err
	}

	return &dto.LaboratoryTestListResponse{
		Tests: converter.LaboratoryTestsToResponses(tests),
		Total: len(tests),
	}, nil
}

func (u *laboratoryTestUsecase) Get(ctx context.Context, scope entity.Scope, id uuid.UUID) (*dto.LaboratoryTestResponse, error) {
	test, err := u.testRepo.FindByID(ctx, scope, id)
	if err != nil {
		u.log.Warnf("Failed to find laboratory test: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrLabTestNotFound
	}

	return converter.LaboratoryTestToResponse(test), nil
}

func (u *laboratoryTestUsecase) Update(ctx context.Context, scope entity.Scope, id uuid.UUID, req *dto.UpdateLaboratoryTestRequest) (*dto.LaboratoryTestResponse, error) {
	test, err := u.testRepo.FindByID(ctx, scope, id)
	if err != nil {
		u.log.Warnf("Failed to find laboratory test: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrLabTestNotFound
	}

	if req.TestDate != "" {
		date, err := parseFutureDate(req.TestDate)
		if err != nil {
			return nil, err
		}
		test.TestDate = date
	}
	if req.TestTime != "" {
		test.TestTime = req.TestTime
	}
	if req.TestName != "" {
		test.TestName = req.TestName
	}
	if req.TestDescription != "" {
		test.TestDescription = req.TestDescription
	}
	if req.Notes != "" {
		test.Notes = req.Notes
	}

	if err := u.testRepo.Update(ctx, test); err != nil {
		u.log.Warnf("Failed to update laboratory test: %+v", err)
		return nil, err
	}

	return converter.LaboratoryTestToResponse(test), nil
}

func (u *laboratoryTestUsecase) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	affected, err := u.testRepo.Delete(ctx, scope, id)
	if err != nil {
		u.log.Warnf("Failed to delete laboratory test: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrLabTestNotFound
	}
	return nil
}

// Cancel is the patient self-service cancel. Unlike pharmacy orders it has
// no status precondition: a lab test can be cancelled from any state,
// completed included.
func (u *laboratoryTestUsecase) Cancel(ctx context.Context, scope entity.Scope, id uuid.UUID) (*dto.LaboratoryTestResponse, error) {
	test, err := u.testRepo.FindByID(ctx, scope, id)
	if err != nil {
		u.log.Warnf("Failed to find laboratory test: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrLabTestNotFound
	}
	oldStatus := test.Status

	affected, err := u.testRepo.Cancel(ctx, scope, id)
	if err != nil {
		u.log.Warnf("Failed to cancel laboratory test: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrLabTestNotFound
	}
	test.Status = entity.RecordStatusCancelled

	u.audit.Record(ctx, &scope.UserID, entity.AuditActionLabTestCancel, "laboratory_test", id.String(), oldStatus, test.Status)

	return converter.LaboratoryTestToResponse(test), nil
}

// UpdateStatus is the staff override; see AppointmentUsecase.UpdateStatus.
func (u *laboratoryTestUsecase) UpdateStatus(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateRecordStatusRequest) (*dto.LaboratoryTestResponse, error) {
	status := entity.RecordStatus(req.Status)
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	test, err := u.testRepo.FindByID(ctx, entity.StaffScope(actorID), id)
	if err != nil {
		u.log.Warnf("Failed to find laboratory test: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrLabTestNotFound
	}
	oldStatus := test.Status

	affected, err := u.testRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		u.log.Warnf("Failed to update laboratory test status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrLabTestNotFound
	}
	test.Status = status

	u.audit.Record(ctx, &actorID, entity.AuditActionLabTestStatus, "laboratory_test", id.String(), oldStatus, status)

	return converter.LaboratoryTestToResponse(test), nil
}
