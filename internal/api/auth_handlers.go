package api

import (
	"encoding/json"
	"net/http"
	"time"

	"campushub/internal/auth"
	"campushub/internal/common"
	"campushub/internal/models/dtos"
)

// Login handles POST /api/v1/auth/login
func (h *Handlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.Email == "" || req.Password == "" {
			common.RespondError(w, initTime, nil, "Email and password are required", http.StatusBadRequest)
			return
		}

		resp, err := h.deps.Services.Auth.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Logged in", resp)
	}
}

// Signup handles POST /api/v1/auth/signup
func (h *Handlers) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SignupReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.Name == "" || req.Email == "" || req.Password == "" {
			common.RespondError(w, initTime, nil, "Name, email and password are required", http.StatusBadRequest)
			return
		}

		resp, err := h.deps.Services.Auth.Signup(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Account created", resp, http.StatusCreated)
	}
}

// Logout handles POST /api/v1/auth/logout
func (h *Handlers) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		h.deps.Services.Auth.Logout(claims)
		common.RespondSuccess(w, initTime, "Logged out", nil)
	}
}

// Me handles GET /api/v1/auth/me
func (h *Handlers) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		view, err := h.deps.Services.Auth.CurrentUser(r.Context(), claims)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", view)
	}
}
