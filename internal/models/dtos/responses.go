package dtos

import (
	"time"

	"campushub/internal/constants"
)

// APIResponse is the standard JSON envelope for every endpoint.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// UserView is the identity shape exposed over the wire. The password
// hash never leaves the server.
type UserView struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	StudentID string         `json:"student_id,omitempty"`
	Role      constants.Role `json:"role"`
	CreatedAt time.Time      `json:"created_at"`
}

// SessionResponse is returned by login and signup.
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserView  `json:"user"`
}

// ClubRegistrationView joins a membership request with the requesting
// identity's display fields and the club, for the admin approval queue
// and the student's own membership list.
type ClubRegistrationView struct {
	ID           string                       `json:"id"`
	UserID       string                       `json:"user_id"`
	StudentName  string                       `json:"student_name"`
	StudentEmail string                       `json:"student_email"`
	StudentID    string                       `json:"student_id,omitempty"`
	ClubID       string                       `json:"club_id"`
	ClubName     string                       `json:"club_name"`
	Status       constants.RegistrationStatus `json:"status"`
	RequestedAt  time.Time                    `json:"requested_at"`
	ApprovedAt   *time.Time                   `json:"approved_at,omitempty"`
}

// RegistrantRow is one attendee of an event, as shown on the admin
// registrations page and written into the CSV export.
type RegistrantRow struct {
	StudentID    string    `json:"student_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Notification is a derived feed entry; nothing is persisted for it.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Overview backs the admin dashboard counters.
type Overview struct {
	Clubs              int `json:"clubs"`
	Events             int `json:"events"`
	EventRegistrations int `json:"event_registrations"`
	ClubRegistrations  int `json:"club_registrations"`
	PendingApprovals   int `json:"pending_approvals"`
}
