package serializer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rabgonzalez/GameSide/internal/model"
)

func testSerializer() *Serializer {
	return New("http://testserver", "/media/")
}

func sampleGame() *model.Game {
	return &model.Game{
		ID:          1,
		Title:       "Hollow Knight",
		Slug:        "hollow-knight",
		Description: "A bug in a big world",
		Cover:       "games/covers/default.png",
		Price:       14.99,
		Stock:       3,
		ReleasedAt:  time.Date(2017, 2, 24, 0, 0, 0, 0, time.UTC),
		Pegi:        model.Pegi7,
		Category: &model.Category{
			ID:   2,
			Name: "Metroidvania",
			Slug: "metroidvania",
		},
		Platforms: []model.Platform{
			{ID: 4, Name: "Switch", Slug: "switch", Logo: "platforms/logos/switch.png"},
		},
	}
}

func TestGameSerialization(t *testing.T) {
	out := testSerializer().Game(sampleGame())

	assert.Equal(t, "http://testserver/media/games/covers/default.png", out.Cover)
	assert.Equal(t, "2017-02-24", out.ReleasedAt)
	assert.Equal(t, "Pegi7", out.Pegi)
	require.NotNil(t, out.Category)
	assert.Equal(t, "metroidvania", out.Category.Slug)
	require.Len(t, out.Platforms, 1)
	assert.Equal(t, "http://testserver/media/platforms/logos/switch.png", out.Platforms[0].Logo)

	// Price must land in JSON as a bare number, not a string.
	body, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"price":14.99`)
}

func TestGameSerializationWithoutCategory(t *testing.T) {
	game := sampleGame()
	game.Category = nil
	game.Platforms = nil

	out := testSerializer().Game(game)

	assert.Nil(t, out.Category)
	assert.Empty(t, out.Platforms)
}

func TestPegiLabels(t *testing.T) {
	labels := map[model.PEGI]string{
		model.Pegi3:  "Pegi3",
		model.Pegi7:  "Pegi7",
		model.Pegi12: "Pegi12",
		model.Pegi16: "Pegi16",
		model.Pegi18: "Pegi18",
	}
	for pegi, want := range labels {
		assert.Equal(t, want, pegi.Display())
	}
}

func TestUserSerializationOmitsPassword(t *testing.T) {
	out := testSerializer().User(&model.User{
		ID:       7,
		Username: "ada",
		Email:    "ada@example.com",
		Password: "hashed-secret",
	})

	body, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), "hashed-secret")
}

func TestReviewSerialization(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 30, 45, 123456000, time.UTC)
	out := testSerializer().Review(&model.Review{
		ID:        3,
		Rating:    5,
		Comment:   "Great game",
		Game:      sampleGame(),
		Author:    &model.User{ID: 7, Username: "ada"},
		CreatedAt: created,
		UpdatedAt: created,
	})

	assert.Equal(t, "2025-06-01T12:30:45.123456+00:00", out.CreatedAt)
	require.NotNil(t, out.Game)
	assert.Equal(t, "hollow-knight", out.Game.Slug)
	require.NotNil(t, out.Author)
	assert.Equal(t, "ada", out.Author.Username)
}

func TestOrderSerializationMasksKeyUntilPaid(t *testing.T) {
	order := &model.Order{
		ID:     10,
		Status: model.StatusInitiated,
		Key:    uuid.New(),
		Games:  []model.Game{*sampleGame(), *sampleGame()},
	}
	s := testSerializer()

	for _, status := range []model.OrderStatus{
		model.StatusInitiated, model.StatusConfirmed, model.StatusCancelled,
	} {
		order.Status = status
		out := s.Order(order)
		assert.Nil(t, out.Key, "key must stay hidden while %s", status.Display())
	}

	order.Status = model.StatusPaid
	out := s.Order(order)
	require.NotNil(t, out.Key)
	assert.Equal(t, order.Key.String(), *out.Key)
	assert.Equal(t, "Paid", out.Status)

	body, err := json.Marshal(s.Order(&model.Order{Status: model.StatusInitiated}))
	require.NoError(t, err)
	assert.Contains(t, string(body), `"key":null`)
}

func TestOrderPriceIsTwoDecimalString(t *testing.T) {
	s := testSerializer()

	order := &model.Order{Status: model.StatusInitiated}
	assert.Equal(t, "0.00", s.Order(order).Price)

	order.Games = []model.Game{{Price: 14.99}, {Price: 5}}
	assert.Equal(t, "19.99", s.Order(order).Price)
}

func TestStatusLabels(t *testing.T) {
	labels := map[model.OrderStatus]string{
		model.StatusInitiated: "Initiated",
		model.StatusConfirmed: "Confirmed",
		model.StatusPaid:      "Paid",
		model.StatusCancelled: "Cancelled",
	}
	for status, want := range labels {
		assert.Equal(t, want, status.Display())
	}
}
