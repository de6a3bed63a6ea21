package variant

import (
	"testing"

	"storefront-admin/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFixture() []SeedVariant {
	stock := 3
	order := 7
	inactive := false
	return []SeedVariant{
		{
			ID:            utils.StrPtr("srv-1"),
			Name:          "Red - Small",
			SKU:           "RS1",
			Options:       map[string]string{"color": "red", "size": "S"},
			PriceModifier: utils.StrPtr("2.5"),
			StockQuantity: &stock,
			DisplayOrder:  &order,
		},
		{
			Name:     "Red - Large",
			SKU:      "RL1",
			IsActive: &inactive,
		},
	}
}

func TestStore_Seed(t *testing.T) {
	t.Run("FillsDefaults", func(t *testing.T) {
		s := NewStore()
		s.Seed(seedFixture())

		require.True(t, s.Seeded())
		list := s.List()
		require.Len(t, list, 2)

		first := list[0]
		assert.Equal(t, "srv-1", first.ID)
		assert.Equal(t, "2.50", first.PriceModifier)
		assert.Equal(t, 3, first.StockQuantity)
		assert.True(t, first.IsInStock)
		assert.Equal(t, 7, first.DisplayOrder)
		assert.Equal(t, DefaultMinStockAlert, first.MinStockAlert)
		assert.True(t, first.IsActive)
		assert.Equal(t, Settings{IsActive: true, AllowPurchase: true}, first.Settings)

		second := list[1]
		assert.NotEmpty(t, second.ID, "missing server id gets a local one")
		assert.Equal(t, "0.00", second.PriceModifier)
		assert.False(t, second.IsInStock)
		assert.Equal(t, 2, second.DisplayOrder, "defaults to 1-based position")
		assert.False(t, second.IsActive)
	})

	t.Run("AtMostOnce", func(t *testing.T) {
		s := NewStore()
		s.Seed(seedFixture())
		require.Equal(t, 2, s.Len())

		// A re-render handing down a different list must not repopulate.
		s.Seed([]SeedVariant{{Name: "Other", SKU: "O1"}})
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, "Red - Small", s.List()[0].Name)
	})

	t.Run("EmptyInputStillCompletes", func(t *testing.T) {
		s := NewStore()
		s.Seed(nil)

		assert.True(t, s.Seeded())
		assert.Equal(t, 0, s.Len())

		// Later non-empty input is too late.
		s.Seed(seedFixture())
		assert.Equal(t, 0, s.Len())
	})
}

func TestStore_Add(t *testing.T) {
	t.Run("RejectsBlankName", func(t *testing.T) {
		s := NewStore()
		s.Seed(nil)

		assert.False(t, s.Add(Draft{Name: "  ", SKU: "RL1"}))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("RejectsBlankSKU", func(t *testing.T) {
		s := NewStore()
		s.Seed(nil)

		assert.False(t, s.Add(Draft{Name: "Red - Large", SKU: ""}))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("AppendsWithDerivedFields", func(t *testing.T) {
		s := NewStore()
		s.Seed(nil)

		ok := s.Add(Draft{Name: "Red-L", SKU: "RL1", PriceModifier: "10", StockQuantity: 3})
		require.True(t, ok)

		list := s.List()
		require.Len(t, list, 1)
		v := list[0]
		assert.NotEmpty(t, v.ID)
		assert.Equal(t, "10.00", v.PriceModifier)
		assert.Equal(t, 3, v.StockQuantity)
		assert.True(t, v.IsInStock)
		assert.Equal(t, 1, v.DisplayOrder)
		assert.Equal(t, DefaultMinStockAlert, v.MinStockAlert)
		assert.True(t, v.IsActive)
		assert.Equal(t, Settings{IsActive: true, AllowPurchase: true}, v.Settings)
	})

	t.Run("PreservesInsertionOrder", func(t *testing.T) {
		s := NewStore()
		s.Seed(nil)

		require.True(t, s.Add(Draft{Name: "A", SKU: "A1"}))
		require.True(t, s.Add(Draft{Name: "B", SKU: "B1"}))
		require.True(t, s.Add(Draft{Name: "C", SKU: "C1"}))

		list := s.List()
		require.Len(t, list, 3)
		assert.Equal(t, []string{"A", "B", "C"}, []string{list[0].Name, list[1].Name, list[2].Name})
		assert.Equal(t, 3, list[2].DisplayOrder)
	})

	t.Run("DuplicateSKUAllowed", func(t *testing.T) {
		s := NewStore()
		s.Seed(nil)

		require.True(t, s.Add(Draft{Name: "A", SKU: "DUP"}))
		require.True(t, s.Add(Draft{Name: "B", SKU: "DUP"}))
		assert.Equal(t, 2, s.Len())
	})
}

func TestStore_Update(t *testing.T) {
	newSeeded := func(t *testing.T) (*Store, string) {
		t.Helper()
		s := NewStore()
		s.Seed(nil)
		require.True(t, s.Add(Draft{Name: "Red-L", SKU: "RL1", StockQuantity: 3}))
		return s, s.List()[0].ID
	}

	t.Run("StockDerivation", func(t *testing.T) {
		s, id := newSeeded(t)

		assert.True(t, s.Update(id, FieldStockQuantity, 0))
		assert.False(t, s.List()[0].IsInStock)

		assert.True(t, s.Update(id, FieldStockQuantity, 12))
		v := s.List()[0]
		assert.Equal(t, 12, v.StockQuantity)
		assert.True(t, v.IsInStock)
	})

	t.Run("StockFromDecodedJSON", func(t *testing.T) {
		s, id := newSeeded(t)

		// encoding/json hands numbers over as float64
		assert.True(t, s.Update(id, FieldStockQuantity, float64(0)))
		assert.False(t, s.List()[0].IsInStock)
	})

	t.Run("SingleFieldReplace", func(t *testing.T) {
		s, id := newSeeded(t)

		assert.True(t, s.Update(id, FieldName, "Blue-L"))
		v := s.List()[0]
		assert.Equal(t, "Blue-L", v.Name)
		assert.Equal(t, "RL1", v.SKU, "other fields untouched")
	})

	t.Run("PriceModifierReformatted", func(t *testing.T) {
		s, id := newSeeded(t)

		assert.True(t, s.Update(id, FieldPriceModifier, "-1.5"))
		assert.Equal(t, "-1.50", s.List()[0].PriceModifier)
	})

	t.Run("Options", func(t *testing.T) {
		s, id := newSeeded(t)

		assert.True(t, s.Update(id, FieldOptions, map[string]any{"color": "blue"}))
		assert.Equal(t, map[string]string{"color": "blue"}, s.List()[0].Options)
	})

	t.Run("UnknownIDNoOp", func(t *testing.T) {
		s, _ := newSeeded(t)
		before := s.List()

		assert.False(t, s.Update("nope", FieldName, "x"))
		assert.True(t, VariantsEqual(before, s.List()))
	})

	t.Run("UnknownFieldNoOp", func(t *testing.T) {
		s, id := newSeeded(t)
		before := s.List()

		assert.False(t, s.Update(id, "color_scheme", "x"))
		assert.True(t, VariantsEqual(before, s.List()))
	})
}

func TestStore_Remove(t *testing.T) {
	t.Run("KeepsOrderWithoutRenumbering", func(t *testing.T) {
		s := NewStore()
		s.Seed(nil)
		require.True(t, s.Add(Draft{Name: "A", SKU: "A1"}))
		require.True(t, s.Add(Draft{Name: "B", SKU: "B1"}))
		require.True(t, s.Add(Draft{Name: "C", SKU: "C1"}))

		assert.True(t, s.Remove(s.List()[1].ID))

		list := s.List()
		require.Len(t, list, 2)
		assert.Equal(t, "A", list[0].Name)
		assert.Equal(t, "C", list[1].Name)
		// display_order is intentionally left with a gap
		assert.Equal(t, 1, list[0].DisplayOrder)
		assert.Equal(t, 3, list[1].DisplayOrder)
	})

	t.Run("UnknownIDNoOp", func(t *testing.T) {
		s := NewStore()
		s.Seed(nil)
		require.True(t, s.Add(Draft{Name: "A", SKU: "A1"}))

		assert.False(t, s.Remove("nope"))
		assert.Equal(t, 1, s.Len())
	})
}

func TestStore_ListIsACopy(t *testing.T) {
	s := NewStore()
	s.Seed(nil)
	require.True(t, s.Add(Draft{Name: "A", SKU: "A1"}))
	id := s.List()[0].ID
	require.True(t, s.Update(id, FieldOptions, map[string]string{"color": "red"}))

	list := s.List()
	list[0].Name = "mutated"
	list[0].Options["color"] = "green"

	v := s.List()[0]
	assert.Equal(t, "A", v.Name)
	assert.Equal(t, "red", v.Options["color"])
}
