package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingForm captures every publish the bridge performs.
type recordingForm struct {
	calls   int
	lastKey string
	lastVal any
}

func (f *recordingForm) SetField(name string, value any) {
	f.calls++
	f.lastKey = name
	f.lastVal = value
}

func TestBridge_Sync(t *testing.T) {
	t.Run("NoPublishBeforeSeed", func(t *testing.T) {
		form := &recordingForm{}
		store := NewStore()
		bridge := NewBridge(store, form)

		assert.False(t, bridge.Sync())
		assert.Equal(t, 0, form.calls)
	})

	t.Run("PublishesExactlyOncePerChange", func(t *testing.T) {
		form := &recordingForm{}
		store := NewStore()
		bridge := NewBridge(store, form)

		store.Seed(nil)
		bridge.Prime()

		require.True(t, store.Add(Draft{Name: "Red-L", SKU: "RL1", PriceModifier: "10", StockQuantity: 3}))
		assert.True(t, bridge.Sync())
		assert.Equal(t, 1, form.calls)
		assert.Equal(t, FormKey, form.lastKey)

		payload, ok := form.lastVal.([]FormVariant)
		require.True(t, ok)
		require.Len(t, payload, 1)
		assert.Equal(t, "10.00", payload[0].PriceModifier)
		assert.Equal(t, 1, payload[0].DisplayOrder)
		assert.True(t, payload[0].IsActive)

		// No further change: a re-run must not republish.
		assert.False(t, bridge.Sync())
		assert.False(t, bridge.Sync())
		assert.Equal(t, 1, form.calls)
	})

	t.Run("InitialLoadNeverPublishes", func(t *testing.T) {
		form := &recordingForm{}
		store := NewStore()
		bridge := NewBridge(store, form)

		store.Seed(seedFixture())
		bridge.Prime()

		assert.False(t, bridge.Sync())
		assert.Equal(t, 0, form.calls)
	})

	t.Run("NoFeedbackLoop", func(t *testing.T) {
		form := &recordingForm{}
		store := NewStore()
		bridge := NewBridge(store, form)

		store.Seed(seedFixture())
		bridge.Prime()

		id := store.List()[0].ID
		require.True(t, store.Update(id, FieldStockQuantity, 0))
		assert.True(t, bridge.Sync())
		assert.Equal(t, 1, form.calls)

		// Simulate the publish triggering a re-render that hands the
		// already-synced list back down as the product's variants.
		published := form.lastVal.([]FormVariant)
		reseed := make([]SeedVariant, 0, len(published))
		for _, p := range published {
			p := p
			reseed = append(reseed, SeedVariant{
				ID:            &p.ID,
				Name:          p.Name,
				SKU:           p.SKU,
				Options:       p.Options,
				PriceModifier: &p.PriceModifier,
				StockQuantity: &p.StockQuantity,
			})
		}
		store.Seed(reseed)

		// The store did not re-seed and the bridge stays quiet.
		assert.Equal(t, 2, store.Len())
		assert.False(t, bridge.Sync())
		assert.Equal(t, 1, form.calls)
	})

	t.Run("RemoveTriggersPublish", func(t *testing.T) {
		form := &recordingForm{}
		store := NewStore()
		bridge := NewBridge(store, form)

		store.Seed(seedFixture())
		bridge.Prime()

		require.True(t, store.Remove(store.List()[0].ID))
		assert.True(t, bridge.Sync())

		payload := form.lastVal.([]FormVariant)
		assert.Len(t, payload, 1)
	})

	t.Run("SnapshotIsStructural", func(t *testing.T) {
		form := &recordingForm{}
		store := NewStore()
		bridge := NewBridge(store, form)

		store.Seed(nil)
		bridge.Prime()

		require.True(t, store.Add(Draft{Name: "A", SKU: "A1"}))
		require.True(t, bridge.Sync())

		// Mutate the store again; the held snapshot must still reflect
		// the previous publish, not the live list.
		id := store.List()[0].ID
		require.True(t, store.Update(id, FieldName, "B"))
		assert.True(t, bridge.Sync())
		assert.Equal(t, 2, form.calls)
	})
}
