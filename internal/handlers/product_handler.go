package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"productsvc/internal/apperr"
	"productsvc/internal/middleware"
	"productsvc/internal/models"
	"productsvc/internal/repositories"
	"productsvc/internal/services"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
// requireKey guards the mutating routes; body validation additionally runs
// on create and update.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, requireKey fiber.Handler) {
	products := router.Group("/products")
	products.Get("/", h.HandleListProducts)
	products.Get("/:id", h.HandleGetProductByID)
	products.Post("/", requireKey, middleware.ValidateProduct(), h.HandleCreateProduct)
	products.Put("/:id", requireKey, middleware.ValidateProduct(), h.HandleUpdateProduct)
	products.Delete("/:id", requireKey, h.HandleDeleteProduct)
}

// queryInt parses a positive integer query parameter, falling back to the
// default on absence, parse failure, or values below 1.
func queryInt(c *fiber.Ctx, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

// HandleListProducts returns one page of products matching the query filters.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	page := queryInt(c, "page", defaultPage)
	limit := queryInt(c, "limit", defaultLimit)

	filter := repositories.ProductFilter{
		Category: c.Query("category"),
	}
	if raw := c.Query("inStock"); raw != "" {
		inStock := raw == "true"
		filter.InStock = &inStock
	}

	products, total, err := h.service.ListProducts(c.Context(), filter, page, limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"page":  page,
		"limit": limit,
		"total": total,
		"data":  products,
	})
}

// HandleGetProductByID returns a single product by its identifier.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.service.GetProductByID(c.Context(), id)
	if err != nil {
		return mapRepoError(err, id)
	}
	return c.JSON(product)
}

// HandleCreateProduct persists the validated request body as a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	req := c.Locals(middleware.ProductRequestKey).(*models.ProductRequest)
	product, err := h.service.CreateProduct(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces an existing product's fields.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	req := c.Locals(middleware.ProductRequestKey).(*models.ProductRequest)
	product, err := h.service.UpdateProduct(c.Context(), id, req)
	if err != nil {
		return mapRepoError(err, id)
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product by its identifier.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.service.DeleteProduct(c.Context(), id)
	if err != nil {
		return mapRepoError(err, id)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted",
		"product": product,
	})
}

// mapRepoError translates repository sentinel errors into client errors;
// anything else passes through and surfaces as a 500.
func mapRepoError(err error, id string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return apperr.NotFound(fmt.Sprintf("Product with id %s not found", id))
	case errors.Is(err, repositories.ErrInvalidID):
		return apperr.Validation(fmt.Sprintf("Invalid product id: %s", id))
	default:
		return err
	}
}
