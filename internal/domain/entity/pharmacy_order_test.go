package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeTotal(t *testing.T) {
	order := &PharmacyOrder{
		Quantity:     3,
		PricePerUnit: decimal.RequireFromString("19.99"),
	}
	order.ComputeTotal()

	if got, want := order.TotalAmount.String(), "59.97"; got != want {
		t.Fatalf("TotalAmount = %s, want %s", got, want)
	}
}

func TestComputeTotalDoesNotRecompute(t *testing.T) {
	order := &PharmacyOrder{
		Quantity:     3,
		PricePerUnit: decimal.RequireFromString("19.99"),
		TotalAmount:  decimal.RequireFromString("10.00"),
	}
	order.ComputeTotal()

	if got, want := order.TotalAmount.String(), "10"; got != want {
		t.Fatalf("TotalAmount = %s, want %s (existing total must be kept)", got, want)
	}

	// Editing quantity afterwards must not change the total either.
	order.Quantity = 100
	order.ComputeTotal()
	if got, want := order.TotalAmount.String(), "10"; got != want {
		t.Fatalf("TotalAmount after quantity edit = %s, want %s", got, want)
	}
}

func TestIsCancellable(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   bool
	}{
		{OrderStatusPending, true},
		{OrderStatusProcessing, true},
		{OrderStatusDelivered, false},
		{OrderStatusCancelled, false},
	}

	for _, tt := range tests {
		order := &PharmacyOrder{Status: tt.status}
		if got := order.IsCancellable(); got != tt.want {
			t.Errorf("IsCancellable(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusProcessing, OrderStatusDelivered, OrderStatusCancelled} {
		if !s.IsValid() {
			t.Errorf("IsValid(%s) = false, want true", s)
		}
	}
	for _, s := range []OrderStatus{"", "shipped", "PENDING"} {
		if s.IsValid() {
			t.Errorf("IsValid(%q) = true, want false", s)
		}
	}
}

func TestPaymentStatusIsValid(t *testing.T) {
	for _, s := range []PaymentStatus{PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed} {
		if !s.IsValid() {
			t.Errorf("IsValid(%s) = false, want true", s)
		}
	}
	if PaymentStatus("refunded").IsValid() {
		t.Error("IsValid(refunded) = true, want false")
	}
}
