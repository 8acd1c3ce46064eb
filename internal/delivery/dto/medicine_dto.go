package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateMedicineRequest struct {
	ID          string          `json:"id" validate:"required,max=50"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Image       string          `json:"image" validate:"omitempty"`
	Category    string          `json:"category" validate:"required,max=100"`
	Stock       int             `json:"stock" validate:"gte=0"`
}

type UpdateMedicineRequest struct {
	Name        string           `json:"name" validate:"omitempty"`
	Description string           `json:"description" validate:"omitempty"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty"`
	Image       string           `json:"image" validate:"omitempty"`
	Category    string           `json:"category" validate:"omitempty,max=100"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
}

// Response DTOs

type MedicineResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type MedicineListResponse struct {
	Medicines []MedicineResponse `json:"medicines"`
	Total     int                `json:"total"`
}
