package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/rabgonzalez/GameSide/internal/model"
)

type ReviewRepository struct {
	DB    *pgxpool.Pool
	Games *GameRepository
}

func NewReviewRepository(db *pgxpool.Pool, games *GameRepository) *ReviewRepository {
	return &ReviewRepository{DB: db, Games: games}
}

const reviewColumns = `r.id, r.rating, r.comment, r.created_at, r.updated_at, g.slug,
		u.id, u.username, u.email, u.first_name, u.last_name`

// ListByGame returns the reviews of a game with game and author resolved.
func (r *ReviewRepository) ListByGame(ctx context.Context, gameID int64) ([]model.Review, error) {
	query := `SELECT ` + reviewColumns + `
		FROM reviews r
		JOIN games g ON g.id = r.game_id
		JOIN users u ON u.id = r.author_id
		WHERE r.game_id=$1
		ORDER BY r.id`
	rows, err := r.DB.Query(ctx, query, gameID)
	if err != nil {
		return nil, errors.Wrap(err, "list reviews")
	}
	defer rows.Close()

	var out []model.Review
	for rows.Next() {
		rv, _, err := scanReview(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan review")
		}
		out = append(out, *rv)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list reviews")
	}
	for i := range out {
		game, err := r.Games.GetBySlug(ctx, out[i].Game.Slug)
		if err != nil {
			return nil, err
		}
		out[i].Game = game
	}
	return out, nil
}

// GetByID returns (nil, nil) when the review does not exist.
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	query := `SELECT ` + reviewColumns + `
		FROM reviews r
		JOIN games g ON g.id = r.game_id
		JOIN users u ON u.id = r.author_id
		WHERE r.id=$1`
	rv, gameSlug, err := scanReview(r.DB.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get review by id")
	}
	rv.Game, err = r.Games.GetBySlug(ctx, gameSlug)
	if err != nil {
		return nil, err
	}
	return rv, nil
}

// Create inserts a review and returns its id. Timestamps are set by the
// database.
func (r *ReviewRepository) Create(ctx context.Context, gameID, authorID int64, rating int, comment string) (int64, error) {
	var id int64
	query := `INSERT INTO reviews (rating, comment, game_id, author_id) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, rating, comment, gameID, authorID).Scan(&id); err != nil {
		return 0, errors.Wrap(err, "create review")
	}
	return id, nil
}

func scanReview(row pgx.Row) (*model.Review, string, error) {
	var rv model.Review
	var gameSlug string
	var author model.User
	err := row.Scan(
		&rv.ID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt, &gameSlug,
		&author.ID, &author.Username, &author.Email, &author.FirstName, &author.LastName,
	)
	if err != nil {
		return nil, "", err
	}
	rv.Author = &author
	rv.Game = &model.Game{Slug: gameSlug}
	return &rv, gameSlug, nil
}
