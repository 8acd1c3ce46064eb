package usecase

import (
	"context"

	"kist-clinic-backend/internal/converter"
	"kist-clinic-backend/internal/delivery/dto"
	"kist-clinic-backend/internal/domain/entity"
	"kist-clinic-backend/internal/domain/repository"
	"kist-clinic-backend/internal/infrastructure/storage"
	"kist-clinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type UserUsecase interface {
	List(ctx context.Context, scope entity.Scope) (*dto.UserListResponse, error)
	Get(ctx context.Context, scope entity.Scope, id uuid.UUID) (*dto.UserResponse, error)
	Update(ctx context.Context, scope entity.Scope, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error
}

type userUsecase struct {
	log      *logrus.Logger
	userRepo repository.UserRepository
	blobs    *storage.BlobStore
	audit    service.AuditService
}

func NewUserUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	blobs *storage.BlobStore,
	audit service.AuditService,
) UserUsecase {
	return &userUsecase{
		log:      log,
		userRepo: userRepo,
		blobs:    blobs,
		audit:    audit,
	}
}

// List returns every account for staff callers and a single-element list
// (the caller's own account) for everyone else.
func (u *userUsecase) List(ctx context.Context, scope entity.Scope) (*dto.UserListResponse, error) {
	users, err := u.userRepo.List(ctx, scope)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

func (u *userUsecase) Get(ctx context.Context, scope entity.Scope, id uuid.UUID) (*dto.UserResponse, error) {
	// Foreign accounts read as not-found for non-staff callers.
	if !scope.Staff && scope.UserID != id {
		return nil, ErrUserNotFound
	}

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Update(ctx context.Context, scope entity.Scope, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !scope.Staff && scope.UserID != id {
		return nil, ErrUserNotFound
	}

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Address != "" {
		user.Address = req.Address
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// Delete removes an account and everything it owns. Rows go in one
// transaction; the medical-record blobs are purged afterwards, so a crash in
// between leaves orphaned files, never dangling rows.
func (u *userUsecase) Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	filePaths, err := u.userRepo.DeleteCascade(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete user %s: %+v", id, err)
		return err
	}

	for _, path := range filePaths {
		if err := u.blobs.Remove(path); err != nil {
			u.log.Errorf("Failed to remove blob %s after user delete: %+v", path, err)
		}
	}

	u.audit.Record(ctx, &actorID, entity.AuditActionUserDelete, "user", id.String(), user.Phone, nil)

	return nil
}
