package repositories

import (
	"context"
	"sync"

	"productsvc/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It mirrors the store's observable behavior (assigned ObjectIDs, invalid-id
// and not-found errors, insertion-order listing) for tests.
type MockProductRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
	order    []string
}

// NewMockProductRepository creates an empty in-memory repository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

func (f ProductFilter) matches(p models.Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	return true
}

// Find returns one page of matching products and the unpaginated match count.
func (r *MockProductRepository) Find(_ context.Context, filter ProductFilter, page, limit int) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matching := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		if p := r.products[id]; filter.matches(p) {
			matching = append(matching, p)
		}
	}
	total := int64(len(matching))

	offset := (page - 1) * limit
	if offset >= len(matching) {
		return []models.Product{}, total, nil
	}
	end := offset + limit
	if end > len(matching) {
		end = len(matching)
	}
	return matching[offset:end], total, nil
}

// GetByID returns a product by its identifier.
func (r *MockProductRepository) GetByID(_ context.Context, id string) (*models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

// Create adds a new product and assigns it an identifier.
func (r *MockProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = primitive.NewObjectID()
	id := product.ID.Hex()
	r.products[id] = *product
	r.order = append(r.order, id)
	return nil
}

// Update replaces an existing product's fields, keeping its identifier.
func (r *MockProductRepository) Update(_ context.Context, id string, product *models.Product) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return nil, ErrNotFound
	}
	updated := *product
	updated.ID = oid
	r.products[id] = updated
	return &updated, nil
}

// Delete removes a product by its identifier and returns it.
func (r *MockProductRepository) Delete(_ context.Context, id string) (*models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.products, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return &product, nil
}
