package handler

import (
	"net/http"
	"strings"

	"kist-clinic-backend/internal/delivery/http/middleware"
	"kist-clinic-backend/internal/domain/entity"
)

// scopeFromRequest builds the query scope for the authenticated caller:
// staff callers see everything, everyone else only their own rows.
func scopeFromRequest(r *http.Request) (entity.Scope, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return entity.Scope{}, false
	}
	isStaff, _ := middleware.GetIsStaffFromContext(r.Context())
	if isStaff {
		return entity.StaffScope(userID), true
	}
	return entity.OwnerScope(userID), true
}

// orderingFromRequest parses the ?ordering= query parameter. A leading "-"
// requests descending order ("-appointment_date"). Unknown columns are
// filtered by the repository allow list, so nothing is validated here.
func orderingFromRequest(r *http.Request) entity.Ordering {
	raw := strings.TrimSpace(r.URL.Query().Get("ordering"))
	if raw == "" {
		return entity.Ordering{}
	}
	if strings.HasPrefix(raw, "-") {
		return entity.Ordering{Field: raw[1:], Desc: true}
	}
	return entity.Ordering{Field: raw}
}
