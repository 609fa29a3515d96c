package repositories

import (
	"context"
	"database/sql"
	"errors"

	"campushub/internal/constants"
	"campushub/internal/models/entities"
	"campushub/internal/store"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// UserRepository is the sqlx-backed identity table.
type UserRepository struct {
	db *sqlx.DB
}

var _ store.UserStore = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User

	err := r.db.QueryRowxContext(ctx, constants.GetUserByEmail, email).StructScan(&user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, store.NewBackendError("users.get_by_email", err)
	}

	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User

	err := r.db.QueryRowxContext(ctx, constants.GetUserById, id).StructScan(&user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, store.NewBackendError("users.get_by_id", err)
	}

	return &user, nil
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var users []entities.User
	if err := r.db.SelectContext(ctx, &users, constants.GetUsersByIds, pq.Array(ids)); err != nil {
		return nil, store.NewBackendError("users.get_by_ids", err)
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	err := r.db.QueryRowxContext(ctx, constants.InsertUser,
		user.Email,
		user.Name,
		user.StudentID,
		user.Role,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return store.NewBackendError("users.insert", err)
	}
	return nil
}
