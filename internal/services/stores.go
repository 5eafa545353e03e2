package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/rabgonzalez/GameSide/internal/model"
)

// Store interfaces are satisfied by the pgx repositories; tests substitute
// in-memory fakes. Lookups return (nil, nil) when the entity is absent.

type CategoryStore interface {
	List(ctx context.Context) ([]model.Category, error)
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
}

type PlatformStore interface {
	List(ctx context.Context) ([]model.Platform, error)
	GetBySlug(ctx context.Context, slug string) (*model.Platform, error)
}

type GameStore interface {
	List(ctx context.Context, categorySlug, platformSlug string) ([]model.Game, error)
	GetBySlug(ctx context.Context, slug string) (*model.Game, error)
}

type ReviewStore interface {
	ListByGame(ctx context.Context, gameID int64) ([]model.Review, error)
	GetByID(ctx context.Context, id int64) (*model.Review, error)
	Create(ctx context.Context, gameID, authorID int64, rating int, comment string) (int64, error)
}

type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

type TokenStore interface {
	GetByKey(ctx context.Context, key uuid.UUID) (*model.Token, error)
	GetOrCreate(ctx context.Context, userID int64) (uuid.UUID, error)
}

type OrderStore interface {
	Create(ctx context.Context, userID int64) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	AddGame(ctx context.Context, orderID, gameID int64) (int, error)
	SetStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) (bool, error)
}
