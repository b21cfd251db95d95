package serverutils

import "github.com/gofiber/fiber/v2"

// ApiError carries the HTTP status a failure should be reported with.
// Anything else bubbling out of a handler is treated as a 500.
type ApiError struct {
	Status  int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ApiError {
	return &ApiError{Status: fiber.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *ApiError {
	return &ApiError{Status: fiber.StatusNotFound, Message: message}
}

func NewUnauthorizedError(message string) *ApiError {
	return &ApiError{Status: fiber.StatusUnauthorized, Message: message}
}
