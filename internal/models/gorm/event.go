package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event keeps date and time as display strings ("2025-01-10", "18:00"),
// matching what the club admins type into the scheduling form.
type Event struct {
	ID               string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Name             string    `gorm:"column:name" json:"name"`
	OrganizingClubID string    `gorm:"column:organizing_club_id;type:uuid;index" json:"organizing_club_id"`
	Venue            string    `gorm:"column:venue" json:"venue"`
	Date             string    `gorm:"column:date" json:"date"`
	Time             string    `gorm:"column:time" json:"time"`
	CreatedBy        string    `gorm:"column:created_by;type:uuid" json:"created_by"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	// Relationships
	OrganizingClub *Club `gorm:"foreignKey:OrganizingClubID" json:"organizing_club,omitempty"`
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// StartsAt parses the display date into a point in time, used for the
// upcoming-events window. Returns zero time when the date is malformed.
func (e *Event) StartsAt() time.Time {
	t, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
