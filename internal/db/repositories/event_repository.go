package repositories

import (
	"context"
	"errors"

	gormModels "campushub/internal/models/gorm"
	"campushub/internal/store"

	"gorm.io/gorm"
)

// EventRepository handles the events table using GORM
type EventRepository struct {
	db *gorm.DB
}

var _ store.EventStore = (*EventRepository)(nil)

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) ListEvents(ctx context.Context) ([]gormModels.Event, error) {
	var events []gormModels.Event

	err := r.db.WithContext(ctx).
		Preload("OrganizingClub").
		Order("date asc, time asc").
		Find(&events).Error
	if err != nil {
		return nil, store.NewBackendError("events.list", err)
	}

	return events, nil
}

func (r *EventRepository) GetEvent(ctx context.Context, id string) (*gormModels.Event, error) {
	var event gormModels.Event

	err := r.db.WithContext(ctx).
		Preload("OrganizingClub").
		Where("id = ?", id).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, store.NewBackendError("events.get", err)
	}

	return &event, nil
}

func (r *EventRepository) CreateEvent(ctx context.Context, event *gormModels.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return store.NewBackendError("events.insert", err)
	}
	return nil
}
