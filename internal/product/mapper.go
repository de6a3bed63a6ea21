package product

import (
	"time"

	"storefront-admin/internal/producttype"
	"storefront-admin/internal/utils"
	"storefront-admin/internal/variant"
)

// Detail is the transport-facing product record with RFC3339 timestamps.
type Detail struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	SKU           string                   `json:"sku"`
	Description   *string                  `json:"description,omitempty"`
	BasePrice     float64                  `json:"base_price"`
	Status        string                   `json:"status"`
	CategoryID    *string                  `json:"category_id,omitempty"`
	ProductTypeID *string                  `json:"product_type_id,omitempty"`
	ProductType   *producttype.ProductType `json:"product_type,omitempty"`
	Variants      []variant.SeedVariant    `json:"variants"`
	CreatedAt     string                   `json:"created_at"`
	UpdatedAt     *string                  `json:"updated_at,omitempty"`
}

func MapProductToDetail(p *Product) *Detail {
	if p == nil {
		return nil
	}

	variants := p.Variants
	if variants == nil {
		variants = []variant.SeedVariant{}
	}

	return &Detail{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Description:   p.Description,
		BasePrice:     p.BasePrice,
		Status:        p.Status,
		CategoryID:    p.CategoryID,
		ProductTypeID: p.ProductTypeID,
		ProductType:   p.ProductType,
		Variants:      variants,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     utils.FormatTimePtr(p.UpdatedAt),
	}
}

func MapProductsToDetails(list []*Product) []*Detail {
	out := make([]*Detail, 0, len(list))
	for _, p := range list {
		out = append(out, MapProductToDetail(p))
	}
	return out
}
