package gorm

import (
	"time"

	"campushub/internal/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRegistration struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	UserID       string    `gorm:"column:user_id;type:uuid;uniqueIndex:idx_event_reg_user_event" json:"user_id"`
	EventID      string    `gorm:"column:event_id;type:uuid;uniqueIndex:idx_event_reg_user_event" json:"event_id"`
	RegisteredAt time.Time `gorm:"column:registered_at;autoCreateTime" json:"registered_at"`

	// Relationships
	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}

// TableName specifies the table name for GORM
func (EventRegistration) TableName() string {
	return "event_registrations"
}

func (r *EventRegistration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type ClubRegistration struct {
	ID          string                       `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	UserID      string                       `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	ClubID      string                       `gorm:"column:club_id;type:uuid;index" json:"club_id"`
	Status      constants.RegistrationStatus `gorm:"column:status;type:registration_status;default:pending" json:"status"`
	RequestedAt time.Time                    `gorm:"column:requested_at;autoCreateTime" json:"requested_at"`
	ApprovedAt  *time.Time                   `gorm:"column:approved_at" json:"approved_at,omitempty"`

	// Relationships
	Club *Club `gorm:"foreignKey:ClubID" json:"club,omitempty"`
}

// TableName specifies the table name for GORM
func (ClubRegistration) TableName() string {
	return "club_registrations"
}

func (r *ClubRegistration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
