package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// BearerToken extracts the raw token from the Authorization header.
// Returns "" when the header is missing or not of the form "Bearer <token>";
// the empty string then fails token syntax validation downstream, which is
// the behavior the API promises for malformed credentials.
//
// Resolution against the token registry happens inside handlers, not here:
// the API validates JSON bodies before authentication, so a blanket
// middleware would run the checks in the wrong order.
func BearerToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.Fields(auth)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
