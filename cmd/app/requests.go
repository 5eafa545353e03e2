package main

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/rabgonzalez/GameSide/internal/apierror"
	"github.com/rabgonzalez/GameSide/internal/serializer"
)

var validate = validator.New()

// bindAndValidate decodes the JSON body into req and validates it. The two
// failure messages are part of the API contract: an undecodable body is
// "Invalid JSON body", a failed `required` tag is "Missing required fields".
// Range tags report their field-specific message.
func bindAndValidate(c echo.Context, req any) *apierror.Error {
	if err := c.Bind(req); err != nil {
		return apierror.BadRequest("Invalid JSON body")
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			if fe.Tag() == "required" {
				return apierror.BadRequest("Missing required fields")
			}
			if fe.Field() == "Rating" {
				return apierror.BadRequest("Rating is out of range")
			}
		}
		return apierror.BadRequest("Missing required fields")
	}
	return nil
}

// requestSerializer builds a serializer resolving media URLs against the
// inbound request's scheme and host.
func requestSerializer(c echo.Context, mediaURL string) *serializer.Serializer {
	return serializer.New(c.Scheme()+"://"+c.Request().Host, mediaURL)
}
