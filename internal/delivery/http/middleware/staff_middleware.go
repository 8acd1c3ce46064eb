package middleware

import (
	"net/http"

	"kist-clinic-backend/pkg/response"
)

// RequireStaff guards staff-only endpoints. The flag is read from context
// (set by AuthMiddleware from JWT claims).
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isStaff, ok := GetIsStaffFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Staff information not found")
			return
		}

		if !isStaff {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}

		next.ServeHTTP(w, r)
	})
}
