package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c := New()

	t.Run("Product", func(t *testing.T) {
		p, ok := c.Product("1")
		require.True(t, ok)
		assert.Equal(t, "Camiseta Essential Organic", p.Name)
		assert.Equal(t, "79.9", p.EffectivePrice().String())

		_, ok = c.Product("404")
		assert.False(t, ok)
	})

	t.Run("ProductsByCategory", func(t *testing.T) {
		ps := c.ProductsByCategory("feminino")
		require.Len(t, ps, 4)
		for _, p := range ps {
			assert.Equal(t, "Feminino", p.Category)
		}
		assert.Empty(t, c.ProductsByCategory("Edição Limitada"))
		assert.Empty(t, c.ProductsByCategory(" "))
		assert.Len(t, c.ProductsByCategory("Camisetas Masculino"), 3)
		assert.Len(t, c.ProductsByCategory(AllProducts), 11)
	})

	t.Run("Bestsellers", func(t *testing.T) {
		ps := c.Bestsellers()
		require.Len(t, ps, 5)
		assert.Equal(t, "7", ps[0].ProductID)
	})

	t.Run("NewArrivals", func(t *testing.T) {
		ps := c.NewArrivals()
		require.Len(t, ps, 3)
		assert.Equal(t, "1", ps[0].ProductID)
	})

	t.Run("CopiesAreIndependent", func(t *testing.T) {
		ps := c.Products()
		ps[0].Name = "changed"
		p, _ := c.Product(ps[0].ProductID)
		assert.NotEqual(t, "changed", p.Name)
		assert.Len(t, c.Categories(), 6)
	})
}
