package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"campushub/internal/constants"
	"campushub/internal/logging"
	"campushub/internal/models/entities"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionData is the server-side session record. The JWT a client holds
// only points here; deleting this record kills the session regardless
// of token expiry.
type SessionData struct {
	SessionID string         `json:"session_id"`
	UserID    string         `json:"user_id"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	Role      constants.Role `json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// SessionService manages session records on a CacheInterface, so
// sessions land in Redis when one is configured and in process memory
// otherwise. Records are stored as JSON strings because the Redis
// implementation round-trips values through JSON.
type SessionService struct {
	cache CacheInterface
	ttl   time.Duration
}

func NewSessionService(cache CacheInterface, ttl time.Duration) *SessionService {
	return &SessionService{cache: cache, ttl: ttl}
}

// CreateSession creates and stores a session record for the user.
func (s *SessionService) CreateSession(user *entities.User) (*SessionData, error) {
	now := time.Now()
	session := SessionData{
		SessionID: uuid.New().String(),
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}

	s.cache.Set(s.key(session.SessionID), string(data), s.ttl)
	return &session, nil
}

// GetSession retrieves a live session record.
func (s *SessionService) GetSession(sessionID string) (*SessionData, error) {
	val, found := s.cache.Get(s.key(sessionID))
	if !found {
		return nil, ErrSessionNotFound
	}

	raw, ok := val.(string)
	if !ok {
		logging.Warn("Session record has unexpected type", "session_id", sessionID)
		return nil, ErrSessionNotFound
	}

	var session SessionData
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		s.DeleteSession(sessionID)
		return nil, ErrSessionNotFound
	}

	return &session, nil
}

// DeleteSession removes a session record.
func (s *SessionService) DeleteSession(sessionID string) {
	s.cache.Delete(s.key(sessionID))
}

func (s *SessionService) key(sessionID string) string {
	return string(constants.CachePrefixSession) + sessionID
}
