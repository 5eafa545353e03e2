package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rabgonzalez/GameSide/internal/middleware"
	"github.com/rabgonzalez/GameSide/internal/services"
)

type addReviewRequest struct {
	Rating  *int   `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

func registerReviewRoutes(g *echo.Group, rs *services.ReviewService, as *services.AuthService, mediaURL string) {
	g.GET("/games/:slug/reviews/", func(c echo.Context) error {
		reviews, err := rs.ListForGame(c.Request().Context(), c.Param("slug"))
		if err != nil {
			return jsonError(c, err)
		}
		sz := requestSerializer(c, mediaURL)
		return c.JSON(http.StatusOK, sz.Reviews(reviews))
	})

	// Static "reviews" wins over the :slug route above, so this does not
	// clash with game detail.
	g.GET("/games/reviews/:id/", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return jsonError(c, services.ErrReviewNotFound)
		}
		review, err := rs.Detail(c.Request().Context(), id)
		if err != nil {
			return jsonError(c, err)
		}
		sz := requestSerializer(c, mediaURL)
		return c.JSON(http.StatusOK, sz.Review(review))
	})

	g.POST("/games/:slug/reviews/add/", func(c echo.Context) error {
		ctx := c.Request().Context()

		req := new(addReviewRequest)
		if apiErr := bindAndValidate(c, req); apiErr != nil {
			return jsonError(c, apiErr)
		}

		author, err := as.Authenticate(ctx, middleware.BearerToken(c))
		if err != nil {
			return jsonError(c, err)
		}

		id, err := rs.Add(ctx, c.Param("slug"), author, *req.Rating, req.Comment)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]int64{"id": id})
	})
}
