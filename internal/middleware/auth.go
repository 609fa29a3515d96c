package middleware

import (
	"net/http"
	"strings"

	"campushub/internal/auth"
	"campushub/internal/common"
)

// AuthMiddleware validates the Bearer session token and checks the
// server-side session record is still alive, so a logged-out token is
// rejected even before its JWT expiry.
func AuthMiddleware(tokens *auth.TokenIssuer, sessions *common.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing bearer token", http.StatusUnauthorized)
				return
			}

			tokenClaims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
				return
			}

			session, err := sessions.GetSession(tokenClaims.SessionID)
			if err != nil {
				http.Error(w, "Unauthorized. Session expired", http.StatusUnauthorized)
				return
			}

			claims := &auth.SessionClaims{
				UserUUID:    session.UserID,
				RoleValue:   session.Role,
				SessionUUID: session.SessionID,
				EmailValue:  session.Email,
				DisplayName: session.Name,
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
