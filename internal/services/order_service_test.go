package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rabgonzalez/GameSide/internal/model"
)

func newOrderFixture() (*OrderService, *fakeGameStore, *fakeOrderStore, *model.User, *model.User) {
	catalog := &fakeGameStore{games: []*model.Game{
		{ID: 1, Title: "Hollow Knight", Slug: "hollow-knight", Price: 14.99, Stock: 3},
		{ID: 2, Title: "Celeste", Slug: "celeste", Price: 19.99, Stock: 1},
		{ID: 3, Title: "Outer Wilds", Slug: "outer-wilds", Price: 24.99, Stock: 0},
	}}
	orders := newFakeOrderStore(catalog)
	owner := &model.User{ID: 1, Username: "ada"}
	other := &model.User{ID: 2, Username: "grace"}
	return NewOrderService(orders, catalog), catalog, orders, owner, other
}

func TestCreateOrder(t *testing.T) {
	svc, _, _, owner, _ := newOrderFixture()

	order, err := svc.Create(context.Background(), owner)
	require.NoError(t, err)

	assert.Equal(t, model.StatusInitiated, order.Status)
	assert.Equal(t, owner.ID, order.UserID)
	assert.Empty(t, order.Games)
	assert.NotEmpty(t, order.Key)
}

func TestGetOrderGuards(t *testing.T) {
	svc, _, _, owner, other := newOrderFixture()
	ctx := context.Background()

	order, err := svc.Create(ctx, owner)
	require.NoError(t, err)

	_, err = svc.Get(ctx, order.ID+100, owner)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = svc.Get(ctx, order.ID, other)
	assert.ErrorIs(t, err, ErrNotOrderOwner)

	got, err := svc.Get(ctx, order.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestAddGame(t *testing.T) {
	svc, _, _, owner, _ := newOrderFixture()
	ctx := context.Background()

	order, err := svc.Create(ctx, owner)
	require.NoError(t, err)

	count, err := svc.AddGame(ctx, order.ID, owner, "hollow-knight")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = svc.AddGame(ctx, order.ID, owner, "celeste")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAddGameIsIdempotentPerGame(t *testing.T) {
	svc, _, _, owner, _ := newOrderFixture()
	ctx := context.Background()

	order, err := svc.Create(ctx, owner)
	require.NoError(t, err)

	count, err := svc.AddGame(ctx, order.ID, owner, "hollow-knight")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = svc.AddGame(ctx, order.ID, owner, "hollow-knight")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "re-adding the same game must not duplicate it")
}

func TestAddGameFailures(t *testing.T) {
	svc, _, _, owner, other := newOrderFixture()
	ctx := context.Background()

	order, err := svc.Create(ctx, owner)
	require.NoError(t, err)

	_, err = svc.AddGame(ctx, order.ID+100, owner, "hollow-knight")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = svc.AddGame(ctx, order.ID, other, "hollow-knight")
	assert.ErrorIs(t, err, ErrNotOrderOwner)

	_, err = svc.AddGame(ctx, order.ID, owner, "no-such-game")
	assert.ErrorIs(t, err, ErrGameNotFound)

	_, err = svc.AddGame(ctx, order.ID, owner, "outer-wilds")
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestSetStatusConfirmAndCancel(t *testing.T) {
	svc, _, _, owner, _ := newOrderFixture()
	ctx := context.Background()

	order, err := svc.Create(ctx, owner)
	require.NoError(t, err)

	status, err := svc.SetStatus(ctx, order.ID, owner, model.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, status)

	cancelled, err := svc.Create(ctx, owner)
	require.NoError(t, err)
	status, err = svc.SetStatus(ctx, cancelled.ID, owner, model.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, status)
}

func TestSetStatusRejectsInvalidTargets(t *testing.T) {
	svc, _, _, owner, _ := newOrderFixture()
	ctx := context.Background()

	order, err := svc.Create(ctx, owner)
	require.NoError(t, err)

	for _, target := range []model.OrderStatus{model.StatusInitiated, model.StatusPaid, 0, 42} {
		_, err := svc.SetStatus(ctx, order.ID, owner, target)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	}
}

func TestSetStatusIsNotRepeatable(t *testing.T) {
	svc, _, _, owner, _ := newOrderFixture()
	ctx := context.Background()

	order, err := svc.Create(ctx, owner)
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, order.ID, owner, model.StatusConfirmed)
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, order.ID, owner, model.StatusConfirmed)
	assert.ErrorIs(t, err, ErrOrderNotInitiated)
	assert.EqualError(t, err, "Orders can only be confirmed/cancelled when initiated")
}

func TestSetStatusRequiresOwnership(t *testing.T) {
	svc, _, orders, owner, other := newOrderFixture()
	ctx := context.Background()

	order, err := svc.Create(ctx, owner)
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, order.ID, other, model.StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotOrderOwner)
	assert.Equal(t, model.StatusInitiated, orders.orders[order.ID].Status, "status must be unchanged")
}

func TestGamesOf(t *testing.T) {
	svc, _, _, owner, other := newOrderFixture()
	ctx := context.Background()

	order, err := svc.Create(ctx, owner)
	require.NoError(t, err)
	_, err = svc.AddGame(ctx, order.ID, owner, "hollow-knight")
	require.NoError(t, err)

	games, err := svc.GamesOf(ctx, order.ID, owner)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "hollow-knight", games[0].Slug)

	_, err = svc.GamesOf(ctx, order.ID, other)
	assert.ErrorIs(t, err, ErrNotOrderOwner)
}
