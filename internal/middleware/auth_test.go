package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campushub/internal/auth"
	"campushub/internal/common"
	"campushub/internal/constants"
	"campushub/internal/models/entities"
)

func setupAuthStack() (*auth.TokenIssuer, *common.SessionService) {
	cache := common.NewCacheService(5*time.Minute, 10*time.Minute)
	sessions := common.NewSessionService(cache, time.Hour)
	tokens := auth.NewTokenIssuer([]byte("test-secret"), time.Hour)
	return tokens, sessions
}

func claimsEcho(t *testing.T, got **auth.SessionClaims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			t.Error("Expected claims on the request context")
			return
		}
		sc, ok := claims.(*auth.SessionClaims)
		if !ok {
			t.Errorf("Unexpected claims type %T", claims)
			return
		}
		*got = sc
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens, sessions := setupAuthStack()

	user := &entities.User{ID: "user-1", Email: "john@student.edu", Name: "John", Role: constants.RoleStudent}
	session, err := sessions.CreateSession(user)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	token, _, err := tokens.Issue(session.SessionID, user.ID, user.Role)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	var got *auth.SessionClaims
	handler := AuthMiddleware(tokens, sessions)(claimsEcho(t, &got))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if got == nil || got.UserID() != "user-1" || got.IsAdmin() {
		t.Errorf("Unexpected claims %+v", got)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens, sessions := setupAuthStack()

	handler := AuthMiddleware(tokens, sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler must not run without a token")
	}))

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rr.Code)
	}
}

func TestAuthMiddleware_DeadSession(t *testing.T) {
	tokens, sessions := setupAuthStack()

	user := &entities.User{ID: "user-1", Email: "john@student.edu", Name: "John", Role: constants.RoleStudent}
	session, err := sessions.CreateSession(user)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	token, _, err := tokens.Issue(session.SessionID, user.ID, user.Role)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// Logout: the token is still well-formed, the session is gone
	sessions.DeleteSession(session.SessionID)

	handler := AuthMiddleware(tokens, sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler must not run with a dead session")
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 after logout, got %d", rr.Code)
	}
}

func TestRoleMiddleware(t *testing.T) {
	studentOnly := IsStudentMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	adminOnly := IsAdminMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	asRole := func(role constants.Role) *http.Request {
		req := httptest.NewRequest("GET", "/", nil)
		claims := &auth.SessionClaims{UserUUID: "user-1", RoleValue: role}
		return req.WithContext(auth.SetUserClaims(req.Context(), claims))
	}

	rr := httptest.NewRecorder()
	studentOnly.ServeHTTP(rr, asRole(constants.RoleStudent))
	if rr.Code != http.StatusOK {
		t.Errorf("Expected student through student gate, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	studentOnly.ServeHTTP(rr, asRole(constants.RoleAdmin))
	if rr.Code != http.StatusForbidden {
		t.Errorf("Expected admin blocked at student gate, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	adminOnly.ServeHTTP(rr, asRole(constants.RoleAdmin))
	if rr.Code != http.StatusOK {
		t.Errorf("Expected admin through admin gate, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	adminOnly.ServeHTTP(rr, asRole(constants.RoleStudent))
	if rr.Code != http.StatusForbidden {
		t.Errorf("Expected student blocked at admin gate, got %d", rr.Code)
	}
}
