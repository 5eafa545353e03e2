package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rabgonzalez/GameSide/internal/middleware"
	"github.com/rabgonzalez/GameSide/internal/model"
	"github.com/rabgonzalez/GameSide/internal/services"
)

type addOrderGameRequest struct {
	GameSlug string `json:"game-slug" validate:"required"`
}

type setOrderStatusRequest struct {
	Status *int `json:"status" validate:"required"`
}

type payOrderRequest struct {
	CardNumber string `json:"card-number" validate:"required"`
	ExpDate    string `json:"exp-date" validate:"required"`
	CVC        string `json:"cvc" validate:"required"`
}

func registerOrderRoutes(g *echo.Group, os *services.OrderService, ps *services.PaymentService, as *services.AuthService, mediaURL string) {
	g.POST("/orders/add/", func(c echo.Context) error {
		ctx := c.Request().Context()

		user, err := as.Authenticate(ctx, middleware.BearerToken(c))
		if err != nil {
			return jsonError(c, err)
		}
		order, err := os.Create(ctx, user)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]int64{"id": order.ID})
	})

	g.GET("/orders/:id/", func(c echo.Context) error {
		ctx := c.Request().Context()

		user, err := as.Authenticate(ctx, middleware.BearerToken(c))
		if err != nil {
			return jsonError(c, err)
		}
		order, err := os.Get(ctx, orderID(c), user)
		if err != nil {
			return jsonError(c, err)
		}
		sz := requestSerializer(c, mediaURL)
		return c.JSON(http.StatusOK, sz.Order(order))
	})

	g.GET("/orders/:id/games/", func(c echo.Context) error {
		ctx := c.Request().Context()

		user, err := as.Authenticate(ctx, middleware.BearerToken(c))
		if err != nil {
			return jsonError(c, err)
		}
		games, err := os.GamesOf(ctx, orderID(c), user)
		if err != nil {
			return jsonError(c, err)
		}
		sz := requestSerializer(c, mediaURL)
		return c.JSON(http.StatusOK, sz.Games(games))
	})

	g.POST("/orders/:id/games/add/", func(c echo.Context) error {
		ctx := c.Request().Context()

		req := new(addOrderGameRequest)
		if apiErr := bindAndValidate(c, req); apiErr != nil {
			return jsonError(c, apiErr)
		}
		user, err := as.Authenticate(ctx, middleware.BearerToken(c))
		if err != nil {
			return jsonError(c, err)
		}
		count, err := os.AddGame(ctx, orderID(c), user, req.GameSlug)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]int{"num-games-in-order": count})
	})

	g.POST("/orders/:id/status/", func(c echo.Context) error {
		ctx := c.Request().Context()

		req := new(setOrderStatusRequest)
		if apiErr := bindAndValidate(c, req); apiErr != nil {
			return jsonError(c, apiErr)
		}
		user, err := as.Authenticate(ctx, middleware.BearerToken(c))
		if err != nil {
			return jsonError(c, err)
		}
		status, err := os.SetStatus(ctx, orderID(c), user, model.OrderStatus(*req.Status))
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": status.Display()})
	})

	g.POST("/orders/:id/pay/", func(c echo.Context) error {
		ctx := c.Request().Context()

		req := new(payOrderRequest)
		if apiErr := bindAndValidate(c, req); apiErr != nil {
			return jsonError(c, apiErr)
		}
		user, err := as.Authenticate(ctx, middleware.BearerToken(c))
		if err != nil {
			return jsonError(c, err)
		}
		status, err := ps.Pay(ctx, orderID(c), user, req.CardNumber, req.ExpDate, req.CVC)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": status.Display()})
	})
}

// orderID parses the :id path segment; a non-numeric id behaves like an
// order that does not exist (0 never matches a row).
func orderID(c echo.Context) int64 {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	return id
}
