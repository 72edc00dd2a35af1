package storefront

import (
	"fmt"
	"slices"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Cart is the ordered list of line items plus the panel visibility.
// Quantities never drop below 1; lines leave only through Remove or Clear.
type Cart struct {
	mu    sync.Mutex
	items []domain.CartItem
	open  bool
}

func NewCart() *Cart {
	return &Cart{}
}

// Add merges into the line with the same product and size, or appends a
// new line with quantity 1. The panel opens either way.
func (c *Cart) Add(p domain.Product, size string) error {
	const op = "Cart.Add"

	if size == "" {
		return fmt.Errorf("%s: %w", op, domain.NewValidationError("size required"))
	}

	key := domain.CartItemKey(p.ProductID, size)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
	if i := c.index(key); i >= 0 {
		c.items[i].Quantity++
		return nil
	}
	c.items = append(c.items, domain.CartItem{
		Product:  p,
		Key:      key,
		Size:     size,
		Quantity: 1,
	})
	return nil
}

func (c *Cart) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.DeleteFunc(c.items, func(it domain.CartItem) bool {
		return it.Key == key
	})
}

func (c *Cart) UpdateQuantity(key string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.index(key); i >= 0 {
		c.items[i].Quantity = max(1, c.items[i].Quantity+delta)
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.CloneItems(c.items)
}

func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.Subtotal(c.items)
}

func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
}

func (c *Cart) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
}

func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *Cart) index(key string) int {
	return slices.IndexFunc(c.items, func(it domain.CartItem) bool {
		return it.Key == key
	})
}
