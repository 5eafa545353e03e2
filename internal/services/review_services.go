package services

import (
	"context"

	"github.com/rabgonzalez/GameSide/internal/model"
)

type ReviewService struct {
	Reviews ReviewStore
	Games   GameStore
}

func NewReviewService(reviews ReviewStore, games GameStore) *ReviewService {
	return &ReviewService{Reviews: reviews, Games: games}
}

func (s *ReviewService) ListForGame(ctx context.Context, gameSlug string) ([]model.Review, error) {
	game, err := s.Games.GetBySlug(ctx, gameSlug)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	return s.Reviews.ListByGame(ctx, game.ID)
}

func (s *ReviewService) Detail(ctx context.Context, id int64) (*model.Review, error) {
	review, err := s.Reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

// Add creates a review by the author on the given game and returns the new
// review's id. The rating range is enforced here regardless of what the
// request validation layer already checked.
func (s *ReviewService) Add(ctx context.Context, gameSlug string, author *model.User, rating int, comment string) (int64, error) {
	if rating < 1 || rating > 5 {
		return 0, ErrRatingOutOfRange
	}
	game, err := s.Games.GetBySlug(ctx, gameSlug)
	if err != nil {
		return 0, err
	}
	if game == nil {
		return 0, ErrGameNotFound
	}
	return s.Reviews.Create(ctx, game.ID, author.ID, rating, comment)
}
