package product

import (
	"time"

	"storefront-admin/internal/producttype"
	"storefront-admin/internal/variant"
)

type Product struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	SKU           string                   `json:"sku"`
	Description   *string                  `json:"description,omitempty"`
	BasePrice     float64                  `json:"base_price"`
	Status        string                   `json:"status"`
	CategoryID    *string                  `json:"category_id,omitempty"`
	ProductTypeID *string                  `json:"product_type_id,omitempty"`
	ProductType   *producttype.ProductType `json:"product_type,omitempty"`
	Variants      []variant.SeedVariant    `json:"variants,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     *time.Time               `json:"updated_at,omitempty"`
}

// UpdateInput carries only the fields the edit form actually changed.
// Variants, when non-nil, is the bridge-published payload and replaces the
// product's variant set wholesale.
type UpdateInput struct {
	ID            string
	Name          *string
	SKU           *string
	Description   *string
	BasePrice     *float64
	Status        *string
	CategoryID    *string
	ProductTypeID *string
	Variants      []variant.FormVariant
}

type QueryOptions struct {
	Search        *string
	Status        *string
	ProductTypeID *string
	Page          int32
	Limit         int32
	IncludeCount  bool
}

type ListResult struct {
	Items      []*Product
	TotalCount *int
}
