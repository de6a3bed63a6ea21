package product

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapProductToDetail(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert.Nil(t, MapProductToDetail(nil))
	})

	t.Run("FormatsTimestamps", func(t *testing.T) {
		created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
		updated := created.Add(time.Hour)

		d := MapProductToDetail(&Product{
			ID:        "p1",
			Name:      "T-Shirt",
			CreatedAt: created,
			UpdatedAt: &updated,
		})

		require.NotNil(t, d)
		assert.Equal(t, "2025-03-01T09:30:00Z", d.CreatedAt)
		require.NotNil(t, d.UpdatedAt)
		assert.Equal(t, "2025-03-01T10:30:00Z", *d.UpdatedAt)
		assert.NotNil(t, d.Variants, "variants never serialize as null")
	})
}
