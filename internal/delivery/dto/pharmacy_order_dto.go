package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePharmacyOrderRequest struct {
	MedicineName    string          `json:"medicine_name" validate:"required"`
	Quantity        int             `json:"quantity" validate:"required,min=1"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit" validate:"required"`
	MedicineImage   string          `json:"medicine_image" validate:"omitempty,url"`
	DeliveryAddress string          `json:"delivery_address" validate:"omitempty"`
	PaymentMethod   string          `json:"payment_method" validate:"omitempty,max=50"`
}

type UpdatePharmacyOrderRequest struct {
	MedicineName    string           `json:"medicine_name" validate:"omitempty"`
	Quantity        *int             `json:"quantity" validate:"omitempty,min=1"`
	PricePerUnit    *decimal.Decimal `json:"price_per_unit" validate:"omitempty"`
	MedicineImage   string           `json:"medicine_image" validate:"omitempty,url"`
	DeliveryAddress string           `json:"delivery_address" validate:"omitempty"`
	PaymentMethod   string           `json:"payment_method" validate:"omitempty,max=50"`
	PaymentStatus   string           `json:"payment_status" validate:"omitempty,oneof=pending completed failed"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response DTOs

type PharmacyOrderResponse struct {
	ID              uuid.UUID       `json:"id"`
	PatientID       uuid.UUID       `json:"patient_id"`
	PatientName     string          `json:"patient_name,omitempty"`
	MedicineName    string          `json:"medicine_name"`
	Quantity        int             `json:"quantity"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit"`
	MedicineImage   string          `json:"medicine_image,omitempty"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	OrderDate       time.Time       `json:"order_date"`
	Status          string          `json:"status"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	PaymentStatus   string          `json:"payment_status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type PharmacyOrderListResponse struct {
	Orders []PharmacyOrderResponse `json:"orders"`
	Total  int                     `json:"total"`
}
