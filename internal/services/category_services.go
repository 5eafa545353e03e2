package services

import (
	"context"

	"github.com/rabgonzalez/GameSide/internal/model"
)

type CategoryService struct {
	Categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{Categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.Categories.List(ctx)
}

func (s *CategoryService) Detail(ctx context.Context, slug string) (*model.Category, error) {
	category, err := s.Categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}
