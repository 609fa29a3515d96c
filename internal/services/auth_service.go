package services

import (
	"context"
	"errors"
	"fmt"

	"campushub/internal/auth"
	"campushub/internal/common"
	"campushub/internal/constants"
	"campushub/internal/logging"
	"campushub/internal/metrics"
	"campushub/internal/models/dtos"
	"campushub/internal/models/entities"
	"campushub/internal/store"
)

// AuthService owns login, signup and logout against the identity table.
type AuthService struct {
	users    store.UserStore
	sessions *common.SessionService
	tokens   *auth.TokenIssuer
	metrics  *metrics.MetricsRegistry
}

func NewAuthService(users store.UserStore, sessions *common.SessionService, tokens *auth.TokenIssuer, m *metrics.MetricsRegistry) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		metrics:  m,
	}
}

// Login verifies credentials and establishes a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dtos.SessionResponse, error) {
	user, err := s.users.GetByEmail(ctx, auth.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.countLogin("failure")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		s.countLogin("failure")
		logging.Warn("Login failed", "email", user.Email)
		return nil, ErrInvalidCredentials
	}

	resp, err := s.establishSession(user)
	if err != nil {
		return nil, err
	}

	s.countLogin("success")
	logging.Info("Login succeeded", "user_id", user.ID, "role", user.Role.String())
	return resp, nil
}

// Signup registers a new student identity and logs it in immediately.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*dtos.SessionResponse, error) {
	email = auth.NormalizeEmail(email)

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case errors.Is(err, store.ErrNotFound):
		// new email, proceed
	default:
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	studentID := auth.GenerateStudentID()
	user := &entities.User{
		Email:        email,
		Name:         name,
		StudentID:    &studentID,
		Role:         constants.RoleStudent,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.SignupsTotal.Inc()
	}
	logging.Info("Student signed up", "user_id", user.ID, "student_id", studentID)

	return s.establishSession(user)
}

// Logout deletes the server-side session record, invalidating the
// token before its expiry.
func (s *AuthService) Logout(claims auth.UserClaims) {
	s.sessions.DeleteSession(claims.SessionID())
	logging.Info("Logged out", "user_id", claims.UserID())
}

// CurrentUser resolves the authenticated identity.
func (s *AuthService) CurrentUser(ctx context.Context, claims auth.UserClaims) (*dtos.UserView, error) {
	user, err := s.users.GetByID(ctx, claims.UserID())
	if err != nil {
		return nil, err
	}
	view := UserView(user)
	return &view, nil
}

func (s *AuthService) establishSession(user *entities.User) (*dtos.SessionResponse, error) {
	session, err := s.sessions.CreateSession(user)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, expiresAt, err := s.tokens.Issue(session.SessionID, user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &dtos.SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      UserView(user),
	}, nil
}

func (s *AuthService) countLogin(outcome string) {
	if s.metrics != nil {
		s.metrics.LoginsTotal.WithLabelValues(outcome).Inc()
	}
}

// UserView strips an identity down to its wire shape.
func UserView(user *entities.User) dtos.UserView {
	return dtos.UserView{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		StudentID: user.StudentIDOrEmpty(),
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
