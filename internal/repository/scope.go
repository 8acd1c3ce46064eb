package repository

import (
	"kist-clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// scoped applies the owner-scoping rule shared by every clinical resource:
// staff see all rows, everyone else only rows where patient_id matches.
func scoped(q *gorm.DB, scope entity.Scope) *gorm.DB {
	if scope.Staff {
		return q
	}
	return q.Where("patient_id = ?", scope.UserID)
}

// orderClause resolves a client-requested ordering against a column allow
// list, falling back to the resource default.
func orderClause(ordering entity.Ordering, allowed map[string]bool, fallback string) string {
	if !allowed[ordering.Field] {
		return fallback
	}
	dir := "DESC"
	if !ordering.Desc {
		dir = "ASC"
	}
	return ordering.Field + " " + dir
}
