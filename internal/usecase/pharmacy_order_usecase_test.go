package usecase

import (
	"context"
	"testing"

	"kist-clinic-backend/internal/delivery/dto"
	"kist-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newOrderFixture(repo *mockOrderRepo, patientID uuid.UUID, status entity.OrderStatus) uuid.UUID {
	id := uuid.New()
	repo.orders[id] = &entity.PharmacyOrder{
		ID:           id,
		PatientID:    patientID,
		MedicineName: "Paracetamol",
		Quantity:     2,
		PricePerUnit: decimal.RequireFromString("5.00"),
		TotalAmount:  decimal.RequireFromString("10.00"),
		Status:       status,
	}
	return id
}

func TestOrderCreateComputesTotal(t *testing.T) {
	repo := newMockOrderRepo()
	uc := NewPharmacyOrderUsecase(testLogger(), repo, &mockAudit{})
	patientID := uuid.New()

	resp, err := uc.Create(context.Background(), patientID, &dto.CreatePharmacyOrderRequest{
		MedicineName: "Amoxicillin",
		Quantity:     3,
		PricePerUnit: decimal.RequireFromString("19.99"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if got, want := resp.TotalAmount.String(), "59.97"; got != want {
		t.Errorf("TotalAmount = %s, want %s", got, want)
	}
	if resp.PatientID != patientID {
		t.Errorf("PatientID = %s, want %s (must come from the token, not the body)", resp.PatientID, patientID)
	}
	if resp.Status != string(entity.OrderStatusPending) {
		t.Errorf("Status = %s, want pending", resp.Status)
	}
}

func TestOrderCreateRejectsNegativePrice(t *testing.T) {
	uc := NewPharmacyOrderUsecase(testLogger(), newMockOrderRepo(), &mockAudit{})

	_, err := uc.Create(context.Background(), uuid.New(), &dto.CreatePharmacyOrderRequest{
		MedicineName: "Amoxicillin",
		Quantity:     1,
		PricePerUnit: decimal.RequireFromString("-1.00"),
	})
	if err != ErrNegativePrice {
		t.Fatalf("Create() error = %v, want ErrNegativePrice", err)
	}
}

func TestOrderCancelMatrix(t *testing.T) {
	tests := []struct {
		status  entity.OrderStatus
		wantErr error
	}{
		{entity.OrderStatusPending, nil},
		{entity.OrderStatusProcessing, nil},
		{entity.OrderStatusDelivered, ErrOrderNotCancellable},
		{entity.OrderStatusCancelled, ErrOrderNotCancellable},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			repo := newMockOrderRepo()
			uc := NewPharmacyOrderUsecase(testLogger(), repo, &mockAudit{})
			patientID := uuid.New()
			id := newOrderFixture(repo, patientID, tt.status)

			resp, err := uc.Cancel(context.Background(), entity.OwnerScope(patientID), id)
			if err != tt.wantErr {
				t.Fatalf("Cancel() error = %v, want %v", err, tt.wantErr)
			}

			if tt.wantErr == nil {
				if resp.Status != string(entity.OrderStatusCancelled) {
					t.Errorf("Status = %s, want cancelled", resp.Status)
				}
			} else {
				// A refused cancel must leave the stored status alone.
				if repo.orders[id].Status != tt.status {
					t.Errorf("stored status = %s, want %s", repo.orders[id].Status, tt.status)
				}
			}
		})
	}
}

func TestOrderDoubleCancel(t *testing.T) {
	repo := newMockOrderRepo()
	uc := NewPharmacyOrderUsecase(testLogger(), repo, &mockAudit{})
	patientID := uuid.New()
	id := newOrderFixture(repo, patientID, entity.OrderStatusPending)
	scope := entity.OwnerScope(patientID)

	if _, err := uc.Cancel(context.Background(), scope, id); err != nil {
		t.Fatalf("first Cancel() error = %v", err)
	}
	if _, err := uc.Cancel(context.Background(), scope, id); err != ErrOrderNotCancellable {
		t.Fatalf("second Cancel() error = %v, want ErrOrderNotCancellable", err)
	}
}

func TestOrderCancelScoping(t *testing.T) {
	repo := newMockOrderRepo()
	uc := NewPharmacyOrderUsecase(testLogger(), repo, &mockAudit{})
	owner := uuid.New()
	stranger := uuid.New()
	id := newOrderFixture(repo, owner, entity.OrderStatusPending)

	// A foreign order reads as not-found, not forbidden.
	if _, err := uc.Cancel(context.Background(), entity.OwnerScope(stranger), id); err != ErrOrderNotFound {
		t.Fatalf("Cancel() by stranger error = %v, want ErrOrderNotFound", err)
	}

	// Staff can cancel anyone's order.
	if _, err := uc.Cancel(context.Background(), entity.StaffScope(stranger), id); err != nil {
		t.Fatalf("Cancel() by staff error = %v", err)
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	repo := newMockOrderRepo()
	audit := &mockAudit{}
	uc := NewPharmacyOrderUsecase(testLogger(), repo, audit)
	staffID := uuid.New()
	id := newOrderFixture(repo, uuid.New(), entity.OrderStatusDelivered)

	// Invalid target status is rejected.
	_, err := uc.UpdateStatus(context.Background(), staffID, id, &dto.UpdateOrderStatusRequest{Status: "shipped"})
	if err != ErrInvalidStatus {
		t.Fatalf("UpdateStatus(shipped) error = %v, want ErrInvalidStatus", err)
	}

	// Any valid target is accepted regardless of the current state,
	// backwards transitions included.
	resp, err := uc.UpdateStatus(context.Background(), staffID, id, &dto.UpdateOrderStatusRequest{Status: "pending"})
	if err != nil {
		t.Fatalf("UpdateStatus(pending) error = %v", err)
	}
	if resp.Status != string(entity.OrderStatusPending) {
		t.Errorf("Status = %s, want pending", resp.Status)
	}
	if len(audit.actions) != 1 || audit.actions[0] != entity.AuditActionOrderStatus {
		t.Errorf("audit actions = %v", audit.actions)
	}
}

func TestOrderUpdateDoesNotRecomputeTotal(t *testing.T) {
	repo := newMockOrderRepo()
	uc := NewPharmacyOrderUsecase(testLogger(), repo, &mockAudit{})
	patientID := uuid.New()
	id := newOrderFixture(repo, patientID, entity.OrderStatusPending)

	quantity := 50
	resp, err := uc.Update(context.Background(), entity.OwnerScope(patientID), id, &dto.UpdatePharmacyOrderRequest{
		Quantity: &quantity,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if got, want := resp.TotalAmount.String(), "10"; got != want {
		t.Errorf("TotalAmount = %s, want %s (totals are fixed at order time)", got, want)
	}
	if resp.Quantity != 50 {
		t.Errorf("Quantity = %d, want 50", resp.Quantity)
	}
}
