package middleware

import (
	"productsvc/internal/apperr"
	"productsvc/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// APIKeyHeader is the request header carrying the shared secret.
const APIKeyHeader = "x-api-key"

// APIKeyRequired is a Fiber middleware guarding mutating routes.
// A missing or wrong key short-circuits the chain; the 403 flows through
// the terminal error responder like every other error.
func APIKeyRequired(verifier auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !verifier.Verify(c.Get(APIKeyHeader)) {
			return apperr.Forbidden("Forbidden - Invalid API KEY")
		}
		return c.Next()
	}
}
