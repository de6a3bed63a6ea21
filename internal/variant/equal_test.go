package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sample() Variant {
	return Variant{
		ID:            "v1",
		Name:          "Red - Large",
		SKU:           "RL1",
		Options:       map[string]string{"color": "red", "size": "L"},
		PriceModifier: "10.00",
		StockQuantity: 3,
		IsInStock:     true,
		MinStockAlert: 5,
		DisplayOrder:  1,
		IsActive:      true,
		Settings:      Settings{IsActive: true, AllowPurchase: true},
	}
}

func TestVariantsEqual(t *testing.T) {
	t.Run("StructuralNotReferential", func(t *testing.T) {
		a := []Variant{sample()}
		b := []Variant{sample()}
		assert.True(t, VariantsEqual(a, b))
	})

	t.Run("LengthDiffers", func(t *testing.T) {
		assert.False(t, VariantsEqual([]Variant{sample()}, nil))
	})

	t.Run("FieldDiffers", func(t *testing.T) {
		b := sample()
		b.StockQuantity = 4
		assert.False(t, VariantsEqual([]Variant{sample()}, []Variant{b}))
	})

	t.Run("SettingsDiffer", func(t *testing.T) {
		b := sample()
		b.Settings.AllowPurchase = false
		assert.False(t, VariantsEqual([]Variant{sample()}, []Variant{b}))
	})

	t.Run("OptionsDiffer", func(t *testing.T) {
		b := sample()
		b.Options = map[string]string{"color": "blue", "size": "L"}
		assert.False(t, VariantsEqual([]Variant{sample()}, []Variant{b}))
	})

	t.Run("OptionKeyOrderIrrelevant", func(t *testing.T) {
		a := sample()
		b := sample()
		b.Options = map[string]string{"size": "L", "color": "red"}
		assert.True(t, VariantsEqual([]Variant{a}, []Variant{b}))
	})

	t.Run("ListOrderSensitive", func(t *testing.T) {
		a := sample()
		b := sample()
		b.ID = "v2"
		assert.False(t, VariantsEqual([]Variant{a, b}, []Variant{b, a}))
	})

	t.Run("BothEmpty", func(t *testing.T) {
		assert.True(t, VariantsEqual(nil, []Variant{}))
	})
}
