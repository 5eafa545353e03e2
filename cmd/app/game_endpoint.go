package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rabgonzalez/GameSide/internal/services"
)

func registerGameRoutes(g *echo.Group, gs *services.GameService, mediaURL string) {
	// list, optionally filtered with ?category=<slug>&platform=<slug>
	g.GET("/games/", func(c echo.Context) error {
		games, err := gs.List(c.Request().Context(), c.QueryParam("category"), c.QueryParam("platform"))
		if err != nil {
			return jsonError(c, err)
		}
		sz := requestSerializer(c, mediaURL)
		return c.JSON(http.StatusOK, sz.Games(games))
	})

	g.GET("/games/:slug/", func(c echo.Context) error {
		game, err := gs.Detail(c.Request().Context(), c.Param("slug"))
		if err != nil {
			return jsonError(c, err)
		}
		sz := requestSerializer(c, mediaURL)
		return c.JSON(http.StatusOK, sz.Game(game))
	})
}
