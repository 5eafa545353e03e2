package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/rabgonzalez/GameSide/internal/model"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

// GetByUsername returns (nil, nil) when the username is unknown.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, email, first_name, last_name, password FROM users WHERE username=$1`
	var u model.User
	if err := r.DB.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get user by username")
	}
	return &u, nil
}

// GetByID returns (nil, nil) when the user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT id, username, email, first_name, last_name, password FROM users WHERE id=$1`
	var u model.User
	if err := r.DB.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get user by id")
	}
	return &u, nil
}
