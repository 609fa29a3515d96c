package auth

import "campushub/internal/constants"

// UserClaims is what the middleware hands to handlers about the
// authenticated identity.
type UserClaims interface {
	UserID() string
	Role() string
	SessionID() string
	Email() string
	Name() string
	IsAdmin() bool
}

// SessionClaims backs UserClaims for token-authenticated requests.
type SessionClaims struct {
	UserUUID     string
	RoleValue    constants.Role
	SessionUUID  string
	EmailValue   string
	DisplayName  string
}

func (c *SessionClaims) UserID() string    { return c.UserUUID }
func (c *SessionClaims) Role() string      { return c.RoleValue.String() }
func (c *SessionClaims) SessionID() string { return c.SessionUUID }
func (c *SessionClaims) Email() string     { return c.EmailValue }
func (c *SessionClaims) Name() string      { return c.DisplayName }
func (c *SessionClaims) IsAdmin() bool     { return c.RoleValue == constants.RoleAdmin }
