package models

// ProductCreate is the payload accepted when adding a product.
type ProductCreate struct {
	Name       string  `json:"name" validate:"required"`
	Price      float64 `json:"price" validate:"gt=0"`
	Categories string  `json:"categories"`
	Page       string  `json:"page"`
	Image      string  `json:"image"`
}

// Product is a catalog item. Products are append-only.
type Product struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Categories string  `json:"categories"`
	Page       string  `json:"page"`
	Image      string  `json:"image"`
}

// Products is the products document, kept in insertion order.
type Products []*Product
