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

var (
	ErrMedicineNotFound      = errors.New("medicine not found")
	ErrMedicineAlreadyExists = errors.New("medicine with this id already exists")
)

type MedicineUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	List(ctx context.Context, filter entity.MedicineFilter) (*dto.MedicineListResponse, error)
	Get(ctx context.Context, id string) (*dto.MedicineResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error)
	Delete(ctx context.Context, actorID uuid.UUID, id string) error
	Categories(ctx context.Context) ([]string, error)
}

type medicineUsecase struct {
	log          *logrus.Logger
	medicineRepo repository.MedicineRepository
	audit        service.AuditService
}

func NewMedicineUsecase(
	log *logrus.Logger,
	medicineRepo repository.MedicineRepository,
	audit service.AuditService,
) MedicineUsecase {
	return &medicineUsecase{
		log:          log,
		medicineRepo: medicineRepo,
		audit:        audit,
	}
}

func (u *medicineUsecase) Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	if req.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	medicine := &entity.Medicine{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Stock:       req.Stock,
	}

	if err := u.medicineRepo.Create(ctx, medicine); err != nil {
		if isDuplicateKeyError(err, "medicines") {
			return nil, ErrMedicineAlreadyExists
		}
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) List(ctx context.Context, filter entity.MedicineFilter) (*dto.MedicineListResponse, error) {
	medicines, err := u.medicineRepo.List(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list medicines: %+v", err)
		return nil, err
	}

	return &dto.MedicineListResponse{
		Medicines: converter.MedicinesToResponses(medicines),
		Total:     len(medicines),
	}, nil
}

func (u *medicineUsecase) Get(ctx context.Context, id string) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) Update(ctx context.Context, id string, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	if req.Name != "" {
		medicine.Name = req.Name
	}
	if req.Description != "" {
		medicine.Description = req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, ErrNegativePrice
		}
		medicine.Price = *req.Price
	}
	if req.Image != "" {
		medicine.Image = req.Image
	}
	if req.Category != "" {
		medicine.Category = req.Category
	}
	if req.Stock != nil {
		medicine.Stock = *req.Stock
	}

	if err := u.medicineRepo.Update(ctx, medicine); err != nil {
		u.log.Warnf("Failed to update medicine: %+v", err)
		return nil, err
	}

	return converter.MedicineToResponse(medicine), nil
}

// Delete removes a catalog item. Legacy order lines that still reference it
// are detached (reference nulled), never deleted: order history survives the
// catalog item.
func (u *medicineUsecase) Delete(ctx context.Context, actorID uuid.UUID, id string) error {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return err
	}
	if medicine == nil {
		return ErrMedicineNotFound
	}

	if err := u.medicineRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete medicine: %+v", err)
		return err
	}

	u.audit.Record(ctx, &actorID, entity.AuditActionMedicineDelete, "medicine", id, medicine.Name, nil)

	return nil
}

func (u *medicineUsecase) Categories(ctx context.Context) ([]string, error) {
	categories, err := u.medicineRepo.Categories(ctx)
	if err != nil {
		u.log.Warnf("Failed to list medicine categories: %+v", err)
		return nil, err
	}
	return categories, nil
}
