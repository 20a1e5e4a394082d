package middleware

import (
	"fmt"
	"strings"

	"productsvc/internal/apperr"
	"productsvc/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductRequestKey is the Locals key under which the validated request
// body is stored for the handler.
const ProductRequestKey = "productRequest"

// ValidateProduct parses and validates the product request body.
// Malformed JSON, wrong-typed fields (e.g. price as a string) and missing
// or blank required fields all fail the same way: a ValidationError handed
// to the terminal responder before the handler runs.
func ValidateProduct() fiber.Handler {
	validate := validator.New()
	// "required" alone accepts whitespace-only strings; products need
	// names, descriptions and categories that are non-empty after trim.
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return func(c *fiber.Ctx) error {
		var req models.ProductRequest
		if err := c.BodyParser(&req); err != nil {
			return apperr.Validation("Invalid request body")
		}

		if err := validate.Struct(&req); err != nil {
			validationErrors, ok := err.(validator.ValidationErrors)
			if !ok {
				return apperr.Validation("Invalid request body")
			}
			fields := make([]string, 0, len(validationErrors))
			for _, e := range validationErrors {
				fields = append(fields, e.Field())
			}
			return apperr.Validation(fmt.Sprintf("Invalid or missing fields: %s", strings.Join(fields, ", ")))
		}

		c.Locals(ProductRequestKey, &req)
		return c.Next()
	}
}
