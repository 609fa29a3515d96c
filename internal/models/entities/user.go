package entities

import (
	"time"

	"campushub/internal/constants"
)

type User struct {
	ID           string         `db:"id"`
	Email        string         `db:"email"`
	Name         string         `db:"name"`
	StudentID    *string        `db:"student_id"`
	Role         constants.Role `db:"role"`
	PasswordHash string         `db:"password_hash"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// StudentIDOrEmpty unwraps the optional student identifier for display.
func (u *User) StudentIDOrEmpty() string {
	if u.StudentID == nil {
		return ""
	}
	return *u.StudentID
}
