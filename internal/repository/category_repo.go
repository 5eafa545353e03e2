package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/rabgonzalez/GameSide/internal/model"
)

type CategoryRepository struct {
	DB *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `SELECT id, name, slug, description, color FROM categories ORDER BY id`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Color); err != nil {
			return nil, errors.Wrap(err, "scan category")
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetBySlug returns (nil, nil) when no category has the given slug.
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	query := `SELECT id, name, slug, description, color FROM categories WHERE slug=$1`
	var c model.Category
	if err := r.DB.QueryRow(ctx, query, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Color); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get category by slug")
	}
	return &c, nil
}
