// Package store defines the persistence contracts the services consume.
// Two implementations exist: the Postgres repositories under
// internal/db/repositories, and the in-memory fallback under
// internal/store/memory. Exactly one is selected at startup.
package store

import (
	"context"
	"time"

	"campushub/internal/constants"
	"campushub/internal/models/entities"
	gormModels "campushub/internal/models/gorm"
)

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.User, error)
	Create(ctx context.Context, user *entities.User) error
}

type ClubStore interface {
	ListClubs(ctx context.Context) ([]gormModels.Club, error)
	GetClub(ctx context.Context, id string) (*gormModels.Club, error)
}

type EventStore interface {
	ListEvents(ctx context.Context) ([]gormModels.Event, error)
	GetEvent(ctx context.Context, id string) (*gormModels.Event, error)
	CreateEvent(ctx context.Context, event *gormModels.Event) error
}

type RegistrationStore interface {
	ListEventRegistrations(ctx context.Context) ([]gormModels.EventRegistration, error)
	ListEventRegistrationsByEvent(ctx context.Context, eventID string) ([]gormModels.EventRegistration, error)
	CreateEventRegistration(ctx context.Context, reg *gormModels.EventRegistration) error

	ListClubRegistrations(ctx context.Context) ([]gormModels.ClubRegistration, error)
	ListClubRegistrationsByUser(ctx context.Context, userID string) ([]gormModels.ClubRegistration, error)
	ListPendingClubRegistrations(ctx context.Context) ([]gormModels.ClubRegistration, error)
	GetClubRegistration(ctx context.Context, id string) (*gormModels.ClubRegistration, error)
	CreateClubRegistration(ctx context.Context, reg *gormModels.ClubRegistration) error

	// SetClubRegistrationStatus transitions a pending registration to the
	// given status. ErrConflict when the record is no longer pending,
	// ErrNotFound when it does not exist.
	SetClubRegistrationStatus(ctx context.Context, id string, status constants.RegistrationStatus, approvedAt *time.Time) (*gormModels.ClubRegistration, error)
}
