package middleware

import (
	"net/http"

	"campushub/internal/auth"
	"campushub/internal/constants"
)

func IsStudentMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())

			if claims == nil || claims.Role() != constants.RoleStudent.String() {
				http.Error(w, "Forbidden. Student role required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
