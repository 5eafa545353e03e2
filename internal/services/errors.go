package services

import "github.com/rabgonzalez/GameSide/internal/apierror"

// Client-facing failures. Messages are part of the API contract.
var (
	ErrInvalidToken       = apierror.BadRequest("Invalid authentication token")
	ErrUnregisteredToken  = apierror.Unauthorized("Unregistered authentication token")
	ErrInvalidCredentials = apierror.Unauthorized("Invalid credentials")

	ErrCategoryNotFound = apierror.NotFound("Category not found")
	ErrPlatformNotFound = apierror.NotFound("Platform not found")
	ErrGameNotFound     = apierror.NotFound("Game not found")
	ErrReviewNotFound   = apierror.NotFound("Review not found")
	ErrOrderNotFound    = apierror.NotFound("Order not found")

	ErrRatingOutOfRange = apierror.BadRequest("Rating is out of range")

	ErrNotOrderOwner     = apierror.Forbidden("User is not the owner of requested order")
	ErrOutOfStock        = apierror.BadRequest("Game is out of stock")
	ErrInvalidStatus     = apierror.BadRequest("Invalid status")
	ErrOrderNotInitiated = apierror.BadRequest("Orders can only be confirmed/cancelled when initiated")
	ErrOrderNotConfirmed = apierror.BadRequest("Orders can only be paid when confirmed")

	ErrInvalidCardNumber = apierror.BadRequest("Invalid card number")
	ErrInvalidExpDate    = apierror.BadRequest("Invalid expiration date")
	ErrCardExpired       = apierror.BadRequest("Card expired")
	ErrInvalidCVC        = apierror.BadRequest("Invalid CVC")
)
