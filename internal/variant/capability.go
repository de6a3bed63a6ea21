package variant

import "storefront-admin/internal/producttype"

// SupportsVariants decides whether the variant editor applies to a product at
// all. First match wins:
//
//  1. the explicitly selected product type's has_variants flag
//  2. that type's nested settings.supports_variants flag
//  3. the has_variants flag on the type embedded in the product as loaded,
//     independent of what is currently selected in the form
//
// Anything else means unsupported, and neither the store nor the bridge
// should receive input.
func SupportsVariants(selected, embedded *producttype.ProductType) bool {
	if selected != nil {
		if selected.HasVariants {
			return true
		}
		if selected.Settings != nil && selected.Settings.SupportsVariants {
			return true
		}
	}
	return embedded != nil && embedded.HasVariants
}
