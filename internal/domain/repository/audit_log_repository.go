package repository

import (
	"context"

	"kist-clinic-backend/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	List(ctx context.Context, limit, offset int) ([]entity.AuditLog, int64, error)
}
