package variant

// FormVariant is the wire shape the parent form submits to the product
// endpoint. is_in_stock is server-derived and deliberately absent.
type FormVariant struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	SKU           string            `json:"sku"`
	Options       map[string]string `json:"options"`
	PriceModifier string            `json:"price_modifier"`
	StockQuantity int               `json:"stock_quantity"`
	MinStockAlert int               `json:"min_stock_alert"`
	DisplayOrder  int               `json:"display_order"`
	IsActive      bool              `json:"is_active"`
	Settings      Settings          `json:"settings"`
}

// MapToForm reshapes the store's variants into the form payload: the price
// modifier is always a 2-decimal string, display_order falls back to the
// 1-based position, and options is never nil.
func MapToForm(list []Variant) []FormVariant {
	out := make([]FormVariant, 0, len(list))

	for i, v := range list {
		modifier := DefaultPriceModifier
		if v.PriceModifier != "" {
			modifier = formatModifier(v.PriceModifier)
		}

		order := v.DisplayOrder
		if order == 0 {
			order = i + 1
		}

		options := v.Options
		if options == nil {
			options = map[string]string{}
		}

		out = append(out, FormVariant{
			ID:            v.ID,
			Name:          v.Name,
			SKU:           v.SKU,
			Options:       options,
			PriceModifier: modifier,
			StockQuantity: v.StockQuantity,
			MinStockAlert: v.MinStockAlert,
			DisplayOrder:  order,
			IsActive:      v.IsActive,
			Settings:      v.Settings,
		})
	}

	return out
}
