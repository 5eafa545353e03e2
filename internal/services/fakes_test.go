package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/rabgonzalez/GameSide/internal/model"
)

// In-memory stores used across the service tests.

type fakeUserStore struct {
	users []*model.User
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type fakeTokenStore struct {
	tokens  []*model.Token
	lookups int
}

func (f *fakeTokenStore) GetByKey(_ context.Context, key uuid.UUID) (*model.Token, error) {
	f.lookups++
	for _, t := range f.tokens {
		if t.Key == key {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTokenStore) GetOrCreate(_ context.Context, userID int64) (uuid.UUID, error) {
	for _, t := range f.tokens {
		if t.UserID == userID {
			return t.Key, nil
		}
	}
	t := &model.Token{ID: int64(len(f.tokens) + 1), UserID: userID, Key: uuid.New()}
	f.tokens = append(f.tokens, t)
	return t.Key, nil
}

type fakeGameStore struct {
	games []*model.Game
}

func (f *fakeGameStore) List(_ context.Context, categorySlug, platformSlug string) ([]model.Game, error) {
	var out []model.Game
	for _, g := range f.games {
		if categorySlug != "" && (g.Category == nil || g.Category.Slug != categorySlug) {
			continue
		}
		if platformSlug != "" && !hasPlatform(g, platformSlug) {
			continue
		}
		out = append(out, *g)
	}
	return out, nil
}

func hasPlatform(g *model.Game, slug string) bool {
	for _, p := range g.Platforms {
		if p.Slug == slug {
			return true
		}
	}
	return false
}

func (f *fakeGameStore) GetBySlug(_ context.Context, slug string) (*model.Game, error) {
	for _, g := range f.games {
		if g.Slug == slug {
			return g, nil
		}
	}
	return nil, nil
}

type fakeReviewStore struct {
	reviews []*model.Review
}

func (f *fakeReviewStore) ListByGame(_ context.Context, gameID int64) ([]model.Review, error) {
	var out []model.Review
	for _, r := range f.reviews {
		if r.Game != nil && r.Game.ID == gameID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewStore) GetByID(_ context.Context, id int64) (*model.Review, error) {
	for _, r := range f.reviews {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewStore) Create(_ context.Context, gameID, authorID int64, rating int, comment string) (int64, error) {
	id := int64(len(f.reviews) + 1)
	f.reviews = append(f.reviews, &model.Review{
		ID:      id,
		Rating:  rating,
		Comment: comment,
		Game:    &model.Game{ID: gameID},
		Author:  &model.User{ID: authorID},
	})
	return id, nil
}

type fakeOrderStore struct {
	nextID  int64
	orders  map[int64]*model.Order
	catalog *fakeGameStore
}

func newFakeOrderStore(catalog *fakeGameStore) *fakeOrderStore {
	return &fakeOrderStore{orders: map[int64]*model.Order{}, catalog: catalog}
}

func (f *fakeOrderStore) Create(_ context.Context, userID int64) (*model.Order, error) {
	f.nextID++
	o := &model.Order{
		ID:     f.nextID,
		Status: model.StatusInitiated,
		Key:    uuid.New(),
		UserID: userID,
		Games:  []model.Game{},
	}
	f.orders[o.ID] = o
	return o, nil
}

func (f *fakeOrderStore) GetByID(_ context.Context, id int64) (*model.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	return o, nil
}

func (f *fakeOrderStore) AddGame(_ context.Context, orderID, gameID int64) (int, error) {
	o := f.orders[orderID]
	for _, g := range o.Games {
		if g.ID == gameID {
			return len(o.Games), nil
		}
	}
	for _, g := range f.catalog.games {
		if g.ID == gameID {
			o.Games = append(o.Games, *g)
			if g.Stock > 0 {
				g.Stock--
			}
			break
		}
	}
	return len(o.Games), nil
}

func (f *fakeOrderStore) SetStatus(_ context.Context, orderID int64, from, to model.OrderStatus) (bool, error) {
	o, ok := f.orders[orderID]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	return true, nil
}
