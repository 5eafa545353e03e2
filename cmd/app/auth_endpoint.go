package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rabgonzalez/GameSide/internal/services"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func registerAuthRoutes(g *echo.Group, as *services.AuthService) {
	g.POST("/auth/", func(c echo.Context) error {
		req := new(loginRequest)
		if apiErr := bindAndValidate(c, req); apiErr != nil {
			return jsonError(c, apiErr)
		}

		key, err := as.Login(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"token": key.String()})
	})
}
