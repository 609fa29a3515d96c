package repositories

import (
	"context"
	"errors"
	"time"

	"campushub/internal/constants"
	gormModels "campushub/internal/models/gorm"
	"campushub/internal/store"

	"gorm.io/gorm"
)

// RegistrationRepository handles both registration tables using GORM
type RegistrationRepository struct {
	db *gorm.DB
}

var _ store.RegistrationStore = (*RegistrationRepository)(nil)

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) ListEventRegistrations(ctx context.Context) ([]gormModels.EventRegistration, error) {
	var regs []gormModels.EventRegistration

	err := r.db.WithContext(ctx).
		Order("registered_at desc").
		Find(&regs).Error
	if err != nil {
		return nil, store.NewBackendError("event_registrations.list", err)
	}

	return regs, nil
}

func (r *RegistrationRepository) ListEventRegistrationsByEvent(ctx context.Context, eventID string) ([]gormModels.EventRegistration, error) {
	var regs []gormModels.EventRegistration

	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("registered_at asc").
		Find(&regs).Error
	if err != nil {
		return nil, store.NewBackendError("event_registrations.list_by_event", err)
	}

	return regs, nil
}

func (r *RegistrationRepository) CreateEventRegistration(ctx context.Context, reg *gormModels.EventRegistration) error {
	// The (user_id, event_id) unique index backs this check in Postgres;
	// the explicit count keeps the conflict answer deterministic across
	// drivers instead of parsing constraint-violation errors.
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.EventRegistration{}).
		Where("user_id = ? AND event_id = ?", reg.UserID, reg.EventID).
		Count(&count).Error
	if err != nil {
		return store.NewBackendError("event_registrations.duplicate_check", err)
	}
	if count > 0 {
		return store.ErrConflict
	}

	if err := r.db.WithContext(ctx).Create(reg).Error; err != nil {
		return store.NewBackendError("event_registrations.insert", err)
	}
	return nil
}

func (r *RegistrationRepository) ListClubRegistrations(ctx context.Context) ([]gormModels.ClubRegistration, error) {
	var regs []gormModels.ClubRegistration

	err := r.db.WithContext(ctx).
		Preload("Club").
		Order("requested_at desc").
		Find(&regs).Error
	if err != nil {
		return nil, store.NewBackendError("club_registrations.list", err)
	}

	return regs, nil
}

func (r *RegistrationRepository) ListClubRegistrationsByUser(ctx context.Context, userID string) ([]gormModels.ClubRegistration, error) {
	var regs []gormModels.ClubRegistration

	err := r.db.WithContext(ctx).
		Preload("Club").
		Where("user_id = ?", userID).
		Order("requested_at desc").
		Find(&regs).Error
	if err != nil {
		return nil, store.NewBackendError("club_registrations.list_by_user", err)
	}

	return regs, nil
}

func (r *RegistrationRepository) ListPendingClubRegistrations(ctx context.Context) ([]gormModels.ClubRegistration, error) {
	var regs []gormModels.ClubRegistration

	err := r.db.WithContext(ctx).
		Preload("Club").
		Where("status = ?", constants.StatusPending).
		Order("requested_at asc").
		Find(&regs).Error
	if err != nil {
		return nil, store.NewBackendError("club_registrations.list_pending", err)
	}

	return regs, nil
}

func (r *RegistrationRepository) GetClubRegistration(ctx context.Context, id string) (*gormModels.ClubRegistration, error) {
	var reg gormModels.ClubRegistration

	err := r.db.WithContext(ctx).
		Preload("Club").
		Where("id = ?", id).
		First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, store.NewBackendError("club_registrations.get", err)
	}

	return &reg, nil
}

func (r *RegistrationRepository) CreateClubRegistration(ctx context.Context, reg *gormModels.ClubRegistration) error {
	if reg.Status == "" {
		reg.Status = constants.StatusPending
	}
	if err := r.db.WithContext(ctx).Create(reg).Error; err != nil {
		return store.NewBackendError("club_registrations.insert", err)
	}
	return nil
}

func (r *RegistrationRepository) SetClubRegistrationStatus(ctx context.Context, id string, status constants.RegistrationStatus, approvedAt *time.Time) (*gormModels.ClubRegistration, error) {
	// Conditional update: the pending guard and the write are a single
	// statement, so two racing decisions cannot both win.
	res := r.db.WithContext(ctx).
		Model(&gormModels.ClubRegistration{}).
		Where("id = ? AND status = ?", id, constants.StatusPending).
		Updates(map[string]interface{}{
			"status":      status,
			"approved_at": approvedAt,
		})
	if res.Error != nil {
		return nil, store.NewBackendError("club_registrations.set_status", res.Error)
	}

	if res.RowsAffected == 0 {
		// Either the record is gone or it was already decided.
		if _, err := r.GetClubRegistration(ctx, id); err != nil {
			return nil, err
		}
		return nil, store.ErrConflict
	}

	return r.GetClubRegistration(ctx, id)
}
