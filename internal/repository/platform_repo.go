package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/rabgonzalez/GameSide/internal/model"
)

type PlatformRepository struct {
	DB *pgxpool.Pool
}

func NewPlatformRepository(db *pgxpool.Pool) *PlatformRepository {
	return &PlatformRepository{DB: db}
}

func (r *PlatformRepository) List(ctx context.Context) ([]model.Platform, error) {
	query := `SELECT id, name, slug, description, logo FROM platforms ORDER BY id`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "list platforms")
	}
	defer rows.Close()

	var out []model.Platform
	for rows.Next() {
		var p model.Platform
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Logo); err != nil {
			return nil, errors.Wrap(err, "scan platform")
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetBySlug returns (nil, nil) when no platform has the given slug.
func (r *PlatformRepository) GetBySlug(ctx context.Context, slug string) (*model.Platform, error) {
	query := `SELECT id, name, slug, description, logo FROM platforms WHERE slug=$1`
	var p model.Platform
	if err := r.DB.QueryRow(ctx, query, slug).Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Logo); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get platform by slug")
	}
	return &p, nil
}
