package apperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Error kinds returned to clients in the "error" field.
const (
	KindValidation = "ValidationError"
	KindNotFound   = "NotFoundError"
	KindForbidden  = "Forbidden"
	KindInternal   = "InternalServerError"
)

// Error is an error that carries an HTTP status and a client-visible kind.
// Handlers and middleware return these instead of responding directly; the
// terminal Handler turns them into JSON.
type Error struct {
	Status  int
	Kind    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validation returns a 400 error for a malformed or incomplete request body.
func Validation(message string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Kind: KindValidation, Message: message}
}

// NotFound returns a 404 error for an identifier that does not resolve.
func NotFound(message string) *Error {
	return &Error{Status: fiber.StatusNotFound, Kind: KindNotFound, Message: message}
}

// Forbidden returns a 403 error for a failed API key check.
func Forbidden(message string) *Error {
	return &Error{Status: fiber.StatusForbidden, Kind: KindForbidden, Message: message}
}

// Handler is the terminal error responder wired into fiber.Config.
// Every error flowing out of a handler or middleware ends up here; the
// client sees {"error": <kind>, "message": <message>} and nothing more,
// while the full error is logged server-side.
func Handler(c *fiber.Ctx, err error) error {
	log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)

	var appErr *Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(fiber.Map{
			"error":   appErr.Kind,
			"message": appErr.Message,
		})
	}

	// Errors fiber produces itself (unmatched routes, oversized bodies).
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error":   http.StatusText(fiberErr.Code),
			"message": fiberErr.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   KindInternal,
		"message": "Something went wrong!",
	})
}
