package repositories

import (
	"context"
	"errors"

	gormModels "campushub/internal/models/gorm"
	"campushub/internal/store"

	"gorm.io/gorm"
)

// ClubRepository handles the clubs table using GORM
type ClubRepository struct {
	db *gorm.DB
}

var _ store.ClubStore = (*ClubRepository)(nil)

func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) ListClubs(ctx context.Context) ([]gormModels.Club, error) {
	var clubs []gormModels.Club

	err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&clubs).Error
	if err != nil {
		return nil, store.NewBackendError("clubs.list", err)
	}

	return clubs, nil
}

func (r *ClubRepository) GetClub(ctx context.Context, id string) (*gormModels.Club, error) {
	var club gormModels.Club

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&club).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, store.NewBackendError("clubs.get", err)
	}

	return &club, nil
}
