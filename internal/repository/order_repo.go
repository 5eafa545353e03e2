package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/rabgonzalez/GameSide/internal/model"
)

type OrderRepository struct {
	DB    *pgxpool.Pool
	Games *GameRepository
}

func NewOrderRepository(db *pgxpool.Pool, games *GameRepository) *OrderRepository {
	return &OrderRepository{DB: db, Games: games}
}

// Create inserts an order for the user with status INITIATED, an empty game
// set and a fresh key.
func (r *OrderRepository) Create(ctx context.Context, userID int64) (*model.Order, error) {
	query := `INSERT INTO orders (status, key, user_id) VALUES ($1, $2, $3)
		RETURNING id, status, key, user_id, created_at, updated_at`
	o, err := scanOrder(r.DB.QueryRow(ctx, query, model.StatusInitiated, uuid.New(), userID))
	if err != nil {
		return nil, errors.Wrap(err, "create order")
	}
	o.Games = []model.Game{}
	return o, nil
}

// GetByID returns the order with its games resolved, or (nil, nil) when it
// does not exist.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT id, status, key, user_id, created_at, updated_at FROM orders WHERE id=$1`
	o, err := scanOrder(r.DB.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get order by id")
	}
	o.Games, err = r.gamesOf(ctx, id)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// AddGame adds a game to the order and returns the resulting game count.
// Adding the same game twice is a no-op; the first add also takes one unit
// of stock. Both writes run in one transaction.
func (r *OrderRepository) AddGame(ctx context.Context, orderID, gameID int64) (int, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "begin add game")
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`INSERT INTO order_games (order_id, game_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		orderID, gameID)
	if err != nil {
		return 0, errors.Wrap(err, "add game to order")
	}
	if tag.RowsAffected() == 1 {
		if _, err := tx.Exec(ctx,
			`UPDATE games SET stock = stock - 1 WHERE id=$1 AND stock > 0`, gameID); err != nil {
			return 0, errors.Wrap(err, "decrement stock")
		}
		if _, err := tx.Exec(ctx,
			`UPDATE orders SET updated_at = now() WHERE id=$1`, orderID); err != nil {
			return 0, errors.Wrap(err, "touch order")
		}
	}

	var count int
	if err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM order_games WHERE order_id=$1`, orderID).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "count order games")
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, errors.Wrap(err, "commit add game")
	}
	return count, nil
}

// SetStatus moves the order from one status to another. The update is
// conditional on the current status so concurrent transitions cannot both
// succeed; it reports whether the row was updated.
func (r *OrderRepository) SetStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) (bool, error) {
	tag, err := r.DB.Exec(ctx,
		`UPDATE orders SET status=$1, updated_at=now() WHERE id=$2 AND status=$3`,
		to, orderID, from)
	if err != nil {
		return false, errors.Wrap(err, "set order status")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *OrderRepository) gamesOf(ctx context.Context, orderID int64) ([]model.Game, error) {
	query := `SELECT g.slug FROM order_games og
		JOIN games g ON g.id = og.game_id
		WHERE og.order_id=$1
		ORDER BY g.id`
	rows, err := r.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "list order games")
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, errors.Wrap(err, "scan order game")
		}
		slugs = append(slugs, slug)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list order games")
	}

	games := make([]model.Game, 0, len(slugs))
	for _, slug := range slugs {
		g, err := r.Games.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if g != nil {
			games = append(games, *g)
		}
	}
	return games, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var status int16
	if err := row.Scan(&o.ID, &status, &o.Key, &o.UserID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	o.Status = model.OrderStatus(status)
	return &o, nil
}
