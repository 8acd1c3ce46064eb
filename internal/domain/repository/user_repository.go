package repository

import (
	"context"

	"kist-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, scope entity.Scope) ([]entity.User, error)
	Update(ctx context.Context, user *entity.User) error

	// DeleteCascade removes the user and every owned appointment, lab test,
	// pharmacy order and medical-record row in one transaction. It returns
	// the blob paths of the deleted medical records so the caller can purge
	// the files after commit.
	DeleteCascade(ctx context.Context, id uuid.UUID) ([]string, error)
}
