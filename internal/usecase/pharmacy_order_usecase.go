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
	ErrOrderNotFound       = errors.New("pharmacy order not found")
	ErrOrderNotCancellable = errors.New("only pending or processing orders can be cancelled")
	ErrNegativePrice       = errors.New("price cannot be negative")
)

type PharmacyOrderUsecase interface {
	Create(ctx context.Context, patientID uuid.UUID, req *dto.CreatePharmacyOrderRequest) (*dto.PharmacyOrderResponse, error)
	List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) (*dto.PharmacyOrderListResponse, error)
	Get(ctx context.Context, scope entity.Scope, id uuid.UUID) (*dto.PharmacyOrderResponse, error)
	Update(ctx context.Context, scope entity.Scope, id uuid.UUID, req *dto.UpdatePharmacyOrderRequest) (*dto.PharmacyOrderResponse, error)
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error
	Cancel(ctx context.Context, scope entity.Scope, id uuid.UUID) (*dto.PharmacyOrderResponse, error)
	UpdateStatus(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateOrderStatusRequest) (*dto.PharmacyOrderResponse, error)
}

type pharmacyOrderUsecase struct {
	log       *logrus.Logger
	orderRepo repository.PharmacyOrderRepository
	audit     service.AuditService
}

func NewPharmacyOrderUsecase(
	log *logrus.Logger,
	orderRepo repository.PharmacyOrderRepository,
	audit service.AuditService,
) PharmacyOrderUsecase {
	return &pharmacyOrderUsecase{
		log:       log,
		orderRepo: orderRepo,
		audit:     audit,
	}
}

// Create places an order for the authenticated patient. The total is
// computed server-side from price and quantity; clients never send it.
func (u *pharmacyOrderUsecase) Create(ctx context.Context, patientID uuid.UUID, req *dto.CreatePharmacyOrderRequest) (*dto.PharmacyOrderResponse, error) {
	if req.PricePerUnit.IsNegative() {
		return nil, ErrNegativePrice
	}

	order := &entity.PharmacyOrder{
		PatientID:       patientID,
		MedicineName:    req.MedicineName,
		Quantity:        req.Quantity,
		PricePerUnit:    req.PricePerUnit,
		MedicineImage:   req.MedicineImage,
		Status:          entity.OrderStatusPending,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   entity.PaymentStatusPending,
	}
	order.ComputeTotal()

	if err := u.orderRepo.Create(ctx, order); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to create pharmacy order: %+v", err)
		return nil, err
	}

	return converter.PharmacyOrderToResponse(order), nil
}

func (u *pharmacyOrderUsecase) List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) (*dto.PharmacyOrderListResponse, error) {
	orders, err := u.orderRepo.List(ctx, scope, ordering)
	if err != nil {
		u.log.Warnf("Failed to list pharmacy orders: %+v", err)
		return nil, err
	}

	return &dto.PharmacyOrderListResponse{
		Orders: converter.PharmacyOrdersToResponses(orders),
		Total:  len(orders),
	}, nil
}

func (u *pharmacyOrderUsecase) Get(ctx context.Context, scope entity.Scope, id uuid.UUID) (*dto.PharmacyOrderResponse, error) {
	order, err := u.orderRepo.FindByID(ctx, scope, id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy order: %+v", err)
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	return converter.PharmacyOrderToResponse(order), nil
}

// Update edits order fields. The stored total is deliberately left alone:
// it was fixed when the order was placed, and later price or quantity edits
// do not reprice it.
func (u *pharmacyOrderUsecase) Update(ctx context.Context, scope entity.Scope, id uuid.UUID, req *dto.UpdatePharmacyOrderRequest) (*dto.PharmacyOrderResponse, error) {
	order, err := u.orderRepo.FindByID(ctx, scope, id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy order: %+v", err)
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if req.MedicineName != "" {
		order.MedicineName = req.MedicineName
	}
	if req.Quantity != nil {
		order.Quantity = *req.Quantity
	}
	if req.PricePerUnit != nil {
		if req.PricePerUnit.IsNegative() {
			return nil, ErrNegativePrice
		}
		order.PricePerUnit = *req.PricePerUnit
	}
	if req.MedicineImage != "" {
		order.MedicineImage = req.MedicineImage
	}
	if req.DeliveryAddress != "" {
		order.DeliveryAddress = req.DeliveryAddress
	}
	if req.PaymentMethod != "" {
		order.PaymentMethod = req.PaymentMethod
	}
	if req.PaymentStatus != "" {
		order.PaymentStatus = entity.PaymentStatus(req.PaymentStatus)
	}

	if err := u.orderRepo.Update(ctx, order); err != nil {
		u.log.Warnf("Failed to update pharmacy order: %+v", err)
		return nil, err
	}

	return converter.PharmacyOrderToResponse(order), nil
}

func (u *pharmacyOrderUsecase) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	affected, err := u.orderRepo.Delete(ctx, scope, id)
	if err != nil {
		u.log.Warnf("Failed to delete pharmacy order: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// Cancel is the patient self-service cancel, allowed only while the order is
// pending or processing. The check runs inside the conditional UPDATE, so a
// concurrent staff transition to delivered cannot be overwritten.
func (u *pharmacyOrderUsecase) Cancel(ctx context.Context, scope entity.Scope, id uuid.UUID) (*dto.PharmacyOrderResponse, error) {
	order, err := u.orderRepo.FindByID(ctx, scope, id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy order: %+v", err)
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	oldStatus := order.Status

	affected, err := u.orderRepo.Cancel(ctx, scope, id)
	if err != nil {
		u.log.Warnf("Failed to cancel pharmacy order: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrOrderNotCancellable
	}
	order.Status = entity.OrderStatusCancelled

	u.audit.Record(ctx, &scope.UserID, entity.AuditActionOrderCancel, "pharmacy_order", id.String(), oldStatus, order.Status)

	return converter.PharmacyOrderToResponse(order), nil
}

// UpdateStatus is the staff override: target status must be a declared
// value, source state is not checked.
func (u *pharmacyOrderUsecase) UpdateStatus(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateOrderStatusRequest) (*dto.PharmacyOrderResponse, error) {
	status := entity.OrderStatus(req.Status)
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	order, err := u.orderRepo.FindByID(ctx, entity.StaffScope(actorID), id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy order: %+v", err)
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	oldStatus := order.Status

	affected, err := u.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		u.log.Warnf("Failed to update pharmacy order status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrOrderNotFound
	}
	order.Status = status

	u.audit.Record(ctx, &actorID, entity.AuditActionOrderStatus, "pharmacy_order", id.String(), oldStatus, status)

	return converter.PharmacyOrderToResponse(order), nil
}
