package dto

import "time"

// CreateProductRequest body para POST /api/products/add.
type CreateProductRequest struct {
	ProductNumber string  `json:"productNumber" validate:"required"`
	PrimaryName   string  `json:"primaryName" validate:"required"`
	SecondaryName *string `json:"secondaryName,omitempty"`
	Image         *string `json:"image,omitempty"`
	NoBarcode     bool    `json:"noBarcode,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:productNumber.
// Campos nil no se modifican; el número de producto es inmutable.
type UpdateProductRequest struct {
	PrimaryName   *string `json:"primaryName,omitempty"`
	SecondaryName *string `json:"secondaryName,omitempty"`
	Image         *string `json:"image,omitempty"`
	NoBarcode     *bool   `json:"noBarcode,omitempty"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID            string    `json:"id"`
	ProductNumber string    `json:"productNumber"`
	PrimaryName   string    `json:"primaryName"`
	SecondaryName *string   `json:"secondaryName,omitempty"`
	Image         *string   `json:"image,omitempty"`
	NoBarcode     bool      `json:"noBarcode"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
