package services

import (
	"context"
	"log"

	"productsvc/internal/models"
	"productsvc/internal/repositories"
)

// EventPublisher publishes product lifecycle events. Publishing is
// best-effort: failures are logged by the service, never surfaced to clients.
type EventPublisher interface {
	PublishProductEvent(event string, product *models.Product) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService. The publisher may be nil,
// in which case lifecycle events are skipped.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// ListProducts retrieves one page of products matching the filter, along
// with the total match count.
func (s *ProductService) ListProducts(ctx context.Context, filter repositories.ProductFilter, page, limit int) ([]models.Product, int64, error) {
	return s.repo.Find(ctx, filter, page, limit)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct persists a new product from a validated request and
// publishes a product.created event.
func (s *ProductService) CreateProduct(ctx context.Context, req *models.ProductRequest) (*models.Product, error) {
	product := req.ToProduct()
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	s.publish("product.created", product)
	return product, nil
}

// UpdateProduct replaces an existing product's fields and publishes a
// product.updated event. Returns the post-update record.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, req *models.ProductRequest) (*models.Product, error) {
	updated, err := s.repo.Update(ctx, id, req.ToProduct())
	if err != nil {
		return nil, err
	}
	s.publish("product.updated", updated)
	return updated, nil
}

// DeleteProduct removes a product by its ID, publishes a product.deleted
// event and returns the deleted record.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) (*models.Product, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish("product.deleted", deleted)
	return deleted, nil
}

func (s *ProductService) publish(event string, product *models.Product) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishProductEvent(event, product); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", event, product.ID.Hex(), err)
	}
}
