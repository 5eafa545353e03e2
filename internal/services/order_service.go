package services

import (
	"context"

	"github.com/rabgonzalez/GameSide/internal/model"
)

type OrderService struct {
	Orders OrderStore
	Games  GameStore
}

func NewOrderService(orders OrderStore, games GameStore) *OrderService {
	return &OrderService{Orders: orders, Games: games}
}

// Create opens a new INITIATED order owned by the user.
func (s *OrderService) Create(ctx context.Context, user *model.User) (*model.Order, error) {
	return s.Orders.Create(ctx, user.ID)
}

// Get returns the order if it exists and the actor owns it.
func (s *OrderService) Get(ctx context.Context, orderID int64, actor *model.User) (*model.Order, error) {
	return s.ownedOrder(ctx, orderID, actor)
}

// GamesOf returns the order's game collection under the same guards as Get.
func (s *OrderService) GamesOf(ctx context.Context, orderID int64, actor *model.User) ([]model.Game, error) {
	order, err := s.ownedOrder(ctx, orderID, actor)
	if err != nil {
		return nil, err
	}
	return order.Games, nil
}

// AddGame puts the game with the given slug into the order and returns the
// resulting game count. Adding a game that is already in the order changes
// nothing and reports the unchanged count.
func (s *OrderService) AddGame(ctx context.Context, orderID int64, actor *model.User, gameSlug string) (int, error) {
	order, err := s.ownedOrder(ctx, orderID, actor)
	if err != nil {
		return 0, err
	}
	game, err := s.Games.GetBySlug(ctx, gameSlug)
	if err != nil {
		return 0, err
	}
	if game == nil {
		return 0, ErrGameNotFound
	}
	if game.Stock == 0 {
		return 0, ErrOutOfStock
	}
	return s.Orders.AddGame(ctx, order.ID, game.ID)
}

// SetStatus confirms or cancels an INITIATED order. PAID and INITIATED are
// never valid targets here; paying goes through PaymentService.
func (s *OrderService) SetStatus(ctx context.Context, orderID int64, actor *model.User, target model.OrderStatus) (model.OrderStatus, error) {
	order, err := s.ownedOrder(ctx, orderID, actor)
	if err != nil {
		return 0, err
	}
	if target != model.StatusConfirmed && target != model.StatusCancelled {
		return 0, ErrInvalidStatus
	}
	if order.Status != model.StatusInitiated {
		return 0, ErrOrderNotInitiated
	}
	moved, err := s.Orders.SetStatus(ctx, order.ID, model.StatusInitiated, target)
	if err != nil {
		return 0, err
	}
	if !moved {
		// A concurrent transition won between the read and the write.
		return 0, ErrOrderNotInitiated
	}
	return target, nil
}

func (s *OrderService) ownedOrder(ctx context.Context, orderID int64, actor *model.User) (*model.Order, error) {
	order, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != actor.ID {
		return nil, ErrNotOrderOwner
	}
	return order, nil
}
