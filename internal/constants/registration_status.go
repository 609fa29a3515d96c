package constants

import (
	"database/sql/driver"
	"fmt"
)

// RegistrationStatus mirrors the Postgres ENUM 'registration_status'
type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "pending"
	StatusApproved RegistrationStatus = "approved"
	StatusRejected RegistrationStatus = "rejected"
)

func (s RegistrationStatus) String() string { return string(s) }

// Scan implements the sql.Scanner interface
func (s *RegistrationStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = RegistrationStatus(v)
	case []byte:
		*s = RegistrationStatus(v)
	default:
		return fmt.Errorf("RegistrationStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s RegistrationStatus) Value() (driver.Value, error) { return string(s), nil }
