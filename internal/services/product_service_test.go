package services_test

import (
	"context"
	"testing"

	"productsvc/internal/models"
	"productsvc/internal/repositories"
	"productsvc/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Find(ctx context.Context, filter repositories.ProductFilter, page, limit int) ([]models.Product, int64, error) {
	args := m.Called(ctx, filter, page, limit)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, id string, product *models.Product) (*models.Product, error) {
	args := m.Called(ctx, id, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishProductEvent(event string, product *models.Product) error {
	args := m.Called(event, product)
	return args.Error(0)
}

func penRequest() *models.ProductRequest {
	name := "Pen"
	description := "Blue pen"
	price := 1.5
	category := "stationery"
	inStock := true
	return &models.ProductRequest{
		Name:        &name,
		Description: &description,
		Price:       &price,
		Category:    &category,
		InStock:     &inStock,
	}
}

func TestProductService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expected := []models.Product{
		{ID: primitive.NewObjectID(), Name: "Pen", Category: "stationery", Price: 1.5, InStock: true},
		{ID: primitive.NewObjectID(), Name: "Pencil", Category: "stationery", Price: 0.5, InStock: true},
	}
	filter := repositories.ProductFilter{Category: "stationery"}

	mockRepo.On("Find", mock.Anything, filter, 1, 10).Return(expected, int64(7), nil).Once()

	products, total, err := service.ListProducts(context.Background(), filter, 1, 10)

	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	assert.Equal(t, int64(7), total)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expected := &models.Product{ID: primitive.NewObjectID(), Name: "Pen", Price: 1.5}
	id := expected.ID.Hex()

	// Test successful retrieval
	mockRepo.On("GetByID", mock.Anything, id).Return(expected, nil).Once()
	product, err := service.GetProductByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, expected, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	missing := primitive.NewObjectID().Hex()
	mockRepo.On("GetByID", mock.Anything, missing).Return(nil, repositories.ErrNotFound).Once()
	product, err = service.GetProductByID(context.Background(), missing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Product).ID = primitive.NewObjectID()
		}).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", "product.created", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product, err := service.CreateProduct(context.Background(), penRequest())

	assert.NoError(t, err)
	assert.False(t, product.ID.IsZero())
	assert.Equal(t, "Pen", product.Name)
	assert.Equal(t, 1.5, product.Price)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_CreateProduct_RepoError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).
		Return(assert.AnError).Once()

	product, err := service.CreateProduct(context.Background(), penRequest())

	assert.Error(t, err)
	assert.Nil(t, product)
	// No event is published for a failed write.
	mockPublisher.AssertNotCalled(t, "PublishProductEvent", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_PublishFailureIsSwallowed(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", "product.created", mock.AnythingOfType("*models.Product")).
		Return(assert.AnError).Once()

	product, err := service.CreateProduct(context.Background(), penRequest())

	assert.NoError(t, err, "publishing is best-effort and must not fail the request")
	assert.NotNil(t, product)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	id := primitive.NewObjectID()
	updated := &models.Product{ID: id, Name: "Pen", Description: "Blue pen", Price: 2.0, Category: "stationery", InStock: false}

	mockRepo.On("Update", mock.Anything, id.Hex(), mock.AnythingOfType("*models.Product")).Return(updated, nil).Once()
	mockPublisher.On("PublishProductEvent", "product.updated", updated).Return(nil).Once()

	product, err := service.UpdateProduct(context.Background(), id.Hex(), penRequest())
	assert.NoError(t, err)
	assert.Equal(t, updated, product)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// Unknown id propagates the repository error without publishing.
	missing := primitive.NewObjectID().Hex()
	mockRepo.On("Update", mock.Anything, missing, mock.AnythingOfType("*models.Product")).
		Return(nil, repositories.ErrNotFound).Once()
	product, err = service.UpdateProduct(context.Background(), missing, penRequest())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	deleted := &models.Product{ID: primitive.NewObjectID(), Name: "Pen"}
	id := deleted.ID.Hex()

	mockRepo.On("Delete", mock.Anything, id).Return(deleted, nil).Once()
	mockPublisher.On("PublishProductEvent", "product.deleted", deleted).Return(nil).Once()

	product, err := service.DeleteProduct(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, deleted, product)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	mockRepo.On("Delete", mock.Anything, id).Return(nil, repositories.ErrNotFound).Once()
	product, err = service.DeleteProduct(context.Background(), id)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_NilPublisher(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product, err := service.CreateProduct(context.Background(), penRequest())
	assert.NoError(t, err)
	assert.NotNil(t, product)
	mockRepo.AssertExpectations(t)
}
