package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/rabgonzalez/GameSide/internal/model"
)

type TokenRepository struct {
	DB *pgxpool.Pool
}

func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{DB: db}
}

// GetByKey returns (nil, nil) when no token has the given key.
func (r *TokenRepository) GetByKey(ctx context.Context, key uuid.UUID) (*model.Token, error) {
	query := `SELECT id, user_id, key, created_at FROM tokens WHERE key=$1`
	var t model.Token
	if err := r.DB.QueryRow(ctx, query, key).Scan(&t.ID, &t.UserID, &t.Key, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get token by key")
	}
	return &t, nil
}

// GetOrCreate returns the user's token key, creating the token row with a
// fresh UUID if the user has none yet.
func (r *TokenRepository) GetOrCreate(ctx context.Context, userID int64) (uuid.UUID, error) {
	var key uuid.UUID
	query := `SELECT key FROM tokens WHERE user_id=$1`
	err := r.DB.QueryRow(ctx, query, userID).Scan(&key)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, errors.Wrap(err, "get token by user")
	}

	key = uuid.New()
	insert := `INSERT INTO tokens (user_id, key) VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING key`
	err = r.DB.QueryRow(ctx, insert, userID, key).Scan(&key)
	if errors.Is(err, pgx.ErrNoRows) {
		// Lost a race with a concurrent login; the existing key wins.
		if err := r.DB.QueryRow(ctx, query, userID).Scan(&key); err != nil {
			return uuid.Nil, errors.Wrap(err, "get token after conflict")
		}
		return key, nil
	}
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "create token")
	}
	return key, nil
}
