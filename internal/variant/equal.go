package variant

import "maps"

// VariantsEqual reports whether two variant lists are structurally identical,
// order included. The form bridge depends on this comparison to decide whether
// a store change is worth republishing; reference equality would either miss
// edits or republish forever.
func VariantsEqual(a, b []Variant) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !variantEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func variantEqual(a, b Variant) bool {
	if a.ID != b.ID ||
		a.Name != b.Name ||
		a.SKU != b.SKU ||
		a.PriceModifier != b.PriceModifier ||
		a.StockQuantity != b.StockQuantity ||
		a.IsInStock != b.IsInStock ||
		a.MinStockAlert != b.MinStockAlert ||
		a.DisplayOrder != b.DisplayOrder ||
		a.IsActive != b.IsActive ||
		a.Settings != b.Settings {
		return false
	}
	return maps.Equal(a.Options, b.Options)
}
