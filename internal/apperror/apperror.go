package apperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error is a categorized business-rule failure. The status carries the
// category (NotFound, Conflict, BadRequest); the message is user-facing.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(message string) *Error {
	return &Error{Status: fiber.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: fiber.StatusConflict, Message: message}
}

func BadRequest(message string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: message}
}

// IsNotFound reports whether err is a NotFound failure.
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Status == fiber.StatusNotFound
}

// Handler is the single translation point from a categorized failure to an
// HTTP response. Anything that is not an *Error surfaces as a 500.
func Handler(c *fiber.Ctx, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(fiber.Map{"error": appErr.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
