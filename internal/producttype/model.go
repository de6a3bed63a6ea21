package producttype

// TypeSettings carries the per-classification feature toggles.
type TypeSettings struct {
	SupportsVariants   bool `json:"supports_variants"`
	AllowCustomOptions bool `json:"allow_custom_options"`
}

// ProductType classifies a product and decides which editor features apply.
type ProductType struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	HasVariants bool          `json:"has_variants"`
	Settings    *TypeSettings `json:"settings,omitempty"`
}
