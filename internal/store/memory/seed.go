package memory

import (
	"time"

	"campushub/internal/auth"
	"campushub/internal/constants"
	"campushub/internal/models/entities"
	gormModels "campushub/internal/models/gorm"

	"github.com/google/uuid"
)

// DemoPassword is the credential every seeded identity accepts. The
// seed exists so an unconfigured deployment is browsable, not secure.
const DemoPassword = "password123"

// NewSeededStore builds the fallback dataset: the campus club roster,
// a couple of demo events, one admin and one pre-registered student.
func NewSeededStore() *Store {
	s := NewStore()
	now := time.Now()
	hash, _ := auth.HashPassword(DemoPassword)

	adminID := uuid.NewString()
	studentID := uuid.NewString()
	studentNo := "STU001"

	s.users = []entities.User{
		{
			ID:           adminID,
			Email:        "admin@college.edu",
			Name:         "Admin User",
			Role:         constants.RoleAdmin,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           studentID,
			Email:        "john.doe@student.edu",
			Name:         "John Doe",
			StudentID:    &studentNo,
			Role:         constants.RoleStudent,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	s.clubs = []gormModels.Club{
		{ID: uuid.NewString(), Name: "CCC", Description: "Computer Coding Club", CreatedAt: now},
		{ID: uuid.NewString(), Name: "IELTS", Description: "International English Language Testing System", CreatedAt: now},
		{ID: uuid.NewString(), Name: "EPRC", Description: "English Proficiency Resource Center", CreatedAt: now},
		{ID: uuid.NewString(), Name: "IEF", Description: "Innovation and Entrepreneurship Forum", CreatedAt: now},
		{ID: uuid.NewString(), Name: "Cultural and Music Club", Description: "Cultural activities and music performances", CreatedAt: now},
	}

	ccc := s.clubs[0].ID
	s.events = []gormModels.Event{
		{
			ID:               uuid.NewString(),
			Name:             "Coding Championship",
			OrganizingClubID: ccc,
			Venue:            "Computer Lab A",
			Date:             now.AddDate(0, 1, 0).Format("2006-01-02"),
			Time:             "10:00",
			CreatedBy:        adminID,
			CreatedAt:        now,
		},
		{
			ID:               uuid.NewString(),
			Name:             "UI/UX Design Competition",
			OrganizingClubID: ccc,
			Venue:            "Design Studio",
			Date:             now.AddDate(0, 1, 5).Format("2006-01-02"),
			Time:             "14:00",
			CreatedBy:        adminID,
			CreatedAt:        now,
		},
	}

	return s
}
