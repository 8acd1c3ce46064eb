package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateUserRequest struct {
	Email   string `json:"email" validate:"omitempty,email"`
	Name    string `json:"name" validate:"omitempty,min=2"`
	Address string `json:"address" validate:"omitempty,max=255"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Role      string    `json:"role"`
	IsStaff   bool      `json:"is_staff"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
