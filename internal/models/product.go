package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product represents a product document in the store.
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Category    string             `json:"category" bson:"category"`
	InStock     bool               `json:"inStock" bson:"inStock"`
}

// ProductRequest is the request body for creating or updating a product.
// Fields are pointers so a missing field fails the "required" rule instead
// of silently defaulting to a zero value.
type ProductRequest struct {
	Name        *string  `json:"name" validate:"required,notblank"`
	Description *string  `json:"description" validate:"required,notblank"`
	Price       *float64 `json:"price" validate:"required"`
	Category    *string  `json:"category" validate:"required,notblank"`
	InStock     *bool    `json:"inStock" validate:"required"`
}

// ToProduct converts a validated request into a Product entity.
func (r *ProductRequest) ToProduct() *Product {
	return &Product{
		Name:        *r.Name,
		Description: *r.Description,
		Price:       *r.Price,
		Category:    *r.Category,
		InStock:     *r.InStock,
	}
}
