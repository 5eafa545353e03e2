package services

import (
	"context"

	"github.com/rabgonzalez/GameSide/internal/model"
)

type GameService struct {
	Games GameStore
}

func NewGameService(games GameStore) *GameService {
	return &GameService{Games: games}
}

// List returns the catalog, optionally narrowed by category and/or platform
// slug taken from the query string.
func (s *GameService) List(ctx context.Context, categorySlug, platformSlug string) ([]model.Game, error) {
	return s.Games.List(ctx, categorySlug, platformSlug)
}

func (s *GameService) Detail(ctx context.Context, slug string) (*model.Game, error) {
	game, err := s.Games.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	return game, nil
}
