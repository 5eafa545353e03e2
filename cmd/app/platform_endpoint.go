package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rabgonzalez/GameSide/internal/services"
)

func registerPlatformRoutes(g *echo.Group, ps *services.PlatformService, mediaURL string) {
	g.GET("/platforms/", func(c echo.Context) error {
		platforms, err := ps.List(c.Request().Context())
		if err != nil {
			return jsonError(c, err)
		}
		sz := requestSerializer(c, mediaURL)
		return c.JSON(http.StatusOK, sz.Platforms(platforms))
	})

	g.GET("/platforms/:slug/", func(c echo.Context) error {
		platform, err := ps.Detail(c.Request().Context(), c.Param("slug"))
		if err != nil {
			return jsonError(c, err)
		}
		sz := requestSerializer(c, mediaURL)
		return c.JSON(http.StatusOK, sz.Platform(platform))
	})
}
