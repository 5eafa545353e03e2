package services

import (
	"context"

	"github.com/rabgonzalez/GameSide/internal/model"
)

type PlatformService struct {
	Platforms PlatformStore
}

func NewPlatformService(platforms PlatformStore) *PlatformService {
	return &PlatformService{Platforms: platforms}
}

func (s *PlatformService) List(ctx context.Context) ([]model.Platform, error) {
	return s.Platforms.List(ctx)
}

func (s *PlatformService) Detail(ctx context.Context, slug string) (*model.Platform, error) {
	platform, err := s.Platforms.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if platform == nil {
		return nil, ErrPlatformNotFound
	}
	return platform, nil
}
