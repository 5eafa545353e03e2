package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rabgonzalez/GameSide/internal/apierror"
)

// jsonError renders a service failure as {"error": "<message>"} with its
// status code. Anything that is not an apierror is an internal fault.
func jsonError(c echo.Context, err error) error {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		return c.JSON(apiErr.Status, map[string]string{"error": apiErr.Message})
	}
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}

// httpErrorHandler gives echo-level failures (unmatched routes, method
// mismatches) the same {"error": ...} shape as handler failures.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		switch status {
		case http.StatusMethodNotAllowed:
			message = "Method not allowed"
		case http.StatusNotFound:
			message = "Not found"
		default:
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		}
	}

	_ = c.JSON(status, map[string]string{"error": message})
}
