package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the delivery lifecycle of a pharmacy order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid reports whether s is one of the four declared order statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus represents the payment lifecycle of a pharmacy order.
// Payment is stored, not processed.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

// PharmacyOrder is a single-medicine order owned by exactly one patient.
type PharmacyOrder struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	MedicineName    string          `gorm:"type:varchar(255);not null" json:"medicine_name"`
	Quantity        int             `gorm:"not null;default:1" json:"quantity"`
	PricePerUnit    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_unit"`
	MedicineImage   string          `gorm:"type:text" json:"medicine_image,omitempty"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	OrderDate       time.Time       `gorm:"autoCreateTime" json:"order_date"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	DeliveryAddress string          `gorm:"type:text" json:"delivery_address,omitempty"`
	PaymentMethod   string          `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (PharmacyOrder) TableName() string {
	return "pharmacy_orders"
}

// ComputeTotal fills TotalAmount from price and quantity exactly once:
// a nonzero total already on the order is left alone, and later edits to
// price or quantity never trigger a recompute.
func (o *PharmacyOrder) ComputeTotal() {
	if o.TotalAmount.IsZero() {
		o.TotalAmount = o.PricePerUnit.Mul(decimal.NewFromInt(int64(o.Quantity)))
	}
}

// IsCancellable reports whether a patient may still cancel the order.
func (o *PharmacyOrder) IsCancellable() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusProcessing
}
