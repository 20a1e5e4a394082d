package repositories

import (
	"context"
	"errors"

	"productsvc/internal/models"
)

// Sentinel errors returned by repository implementations. The service and
// handler layers translate these; everything else is treated as a store
// failure and surfaces as a 500.
var (
	ErrNotFound  = errors.New("product not found")
	ErrInvalidID = errors.New("invalid product id")
)

// ProductFilter narrows list queries to exact matches.
type ProductFilter struct {
	Category string
	InStock  *bool
}

// ProductRepository defines the persistence gateway for products.
type ProductRepository interface {
	// Find returns one page of matching products plus the total count of
	// all matches, ignoring pagination.
	Find(ctx context.Context, filter ProductFilter, page, limit int) ([]models.Product, int64, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	// Update replaces the stored fields and returns the post-update document.
	Update(ctx context.Context, id string, product *models.Product) (*models.Product, error)
	// Delete removes the document and returns it.
	Delete(ctx context.Context, id string) (*models.Product, error)
}
