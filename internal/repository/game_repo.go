package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/rabgonzalez/GameSide/internal/model"
)

type GameRepository struct {
	DB *pgxpool.Pool
}

func NewGameRepository(db *pgxpool.Pool) *GameRepository {
	return &GameRepository{DB: db}
}

const gameColumns = `g.id, g.title, g.slug, g.description, g.cover, g.price, g.stock, g.released_at, g.pegi,
		c.id, c.name, c.slug, c.description, c.color`

func scanGame(row pgx.Row) (*model.Game, error) {
	var g model.Game
	var pegi int16
	var catID *int64
	var catName, catSlug, catDescription, catColor *string
	err := row.Scan(
		&g.ID, &g.Title, &g.Slug, &g.Description, &g.Cover, &g.Price, &g.Stock, &g.ReleasedAt, &pegi,
		&catID, &catName, &catSlug, &catDescription, &catColor,
	)
	if err != nil {
		return nil, err
	}
	g.Pegi = model.PEGI(pegi)
	if catID != nil {
		g.Category = &model.Category{
			ID:          *catID,
			Name:        *catName,
			Slug:        *catSlug,
			Description: *catDescription,
			Color:       *catColor,
		}
	}
	return &g, nil
}

// List returns all games, optionally narrowed to a category slug and/or a
// platform slug.
func (r *GameRepository) List(ctx context.Context, categorySlug, platformSlug string) ([]model.Game, error) {
	query := `SELECT ` + gameColumns + `
		FROM games g
		LEFT JOIN categories c ON c.id = g.category_id`
	args := []any{}
	where := ""
	if categorySlug != "" {
		args = append(args, categorySlug)
		where = ` WHERE c.slug=$1`
	}
	if platformSlug != "" {
		args = append(args, platformSlug)
		cond := ` EXISTS (SELECT 1 FROM game_platforms gp
			JOIN platforms p ON p.id = gp.platform_id
			WHERE gp.game_id = g.id AND p.slug=$` + strconv.Itoa(len(args)) + `)`
		if where == "" {
			where = ` WHERE` + cond
		} else {
			where += ` AND` + cond
		}
	}
	query += where + ` ORDER BY g.id`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list games")
	}
	defer rows.Close()

	var out []model.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan game")
		}
		out = append(out, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list games")
	}
	for i := range out {
		platforms, err := r.platformsOf(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Platforms = platforms
	}
	return out, nil
}

// GetBySlug returns (nil, nil) when no game has the given slug.
func (r *GameRepository) GetBySlug(ctx context.Context, slug string) (*model.Game, error) {
	query := `SELECT ` + gameColumns + `
		FROM games g
		LEFT JOIN categories c ON c.id = g.category_id
		WHERE g.slug=$1`
	g, err := scanGame(r.DB.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get game by slug")
	}
	g.Platforms, err = r.platformsOf(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *GameRepository) platformsOf(ctx context.Context, gameID int64) ([]model.Platform, error) {
	query := `SELECT p.id, p.name, p.slug, p.description, p.logo
		FROM platforms p
		JOIN game_platforms gp ON gp.platform_id = p.id
		WHERE gp.game_id=$1
		ORDER BY p.id`
	rows, err := r.DB.Query(ctx, query, gameID)
	if err != nil {
		return nil, errors.Wrap(err, "list game platforms")
	}
	defer rows.Close()

	var out []model.Platform
	for rows.Next() {
		var p model.Platform
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Logo); err != nil {
			return nil, errors.Wrap(err, "scan game platform")
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
