package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rabgonzalez/GameSide/internal/services"
)

func registerCategoryRoutes(g *echo.Group, cs *services.CategoryService, mediaURL string) {
	g.GET("/categories/", func(c echo.Context) error {
		categories, err := cs.List(c.Request().Context())
		if err != nil {
			return jsonError(c, err)
		}
		sz := requestSerializer(c, mediaURL)
		return c.JSON(http.StatusOK, sz.Categories(categories))
	})

	g.GET("/categories/:slug/", func(c echo.Context) error {
		category, err := cs.Detail(c.Request().Context(), c.Param("slug"))
		if err != nil {
			return jsonError(c, err)
		}
		sz := requestSerializer(c, mediaURL)
		return c.JSON(http.StatusOK, sz.Category(category))
	})
}
