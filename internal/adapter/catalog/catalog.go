// Package catalog is the read-only product and category store.
package catalog

import (
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/shopspring/decimal"
)

var _ port.Catalog = (*Catalog)(nil)

// AllProducts is the pseudo category that lists the whole catalog.
const AllProducts = "Todos os Produtos"

type Catalog struct {
	products    []domain.Product
	categories  []domain.Category
	byID        map[string]int
	bestsellers map[string]struct{}
}

// New returns the brand catalog: new arrivals followed by bestsellers.
func New() Catalog {
	arrivals, best := newArrivals(), bestsellers()
	c := NewWith(append(arrivals, best...), categories())
	for _, p := range best {
		c.bestsellers[p.ProductID] = struct{}{}
	}
	return c
}

func NewWith(ps []domain.Product, cs []domain.Category) Catalog {
	byID := make(map[string]int, len(ps))
	for i, p := range ps {
		byID[p.ProductID] = i
	}
	return Catalog{
		products:    ps,
		categories:  cs,
		byID:        byID,
		bestsellers: make(map[string]struct{}),
	}
}

func (c Catalog) Products() []domain.Product {
	return append([]domain.Product(nil), c.products...)
}

func (c Catalog) Categories() []domain.Category {
	return append([]domain.Category(nil), c.categories...)
}

func (c Catalog) Product(id string) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// ProductsByCategory lists products whose label equals, contains or is
// contained in category, ignoring case. [AllProducts] lists everything.
func (c Catalog) ProductsByCategory(category string) []domain.Product {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return nil
	}
	if category == strings.ToLower(AllProducts) {
		return c.Products()
	}
	return c.filter(func(p domain.Product) bool {
		label := strings.ToLower(p.Category)
		return strings.Contains(label, category) ||
			strings.Contains(category, label)
	})
}

// NewArrivals and Bestsellers back the home page carousels.
func (c Catalog) NewArrivals() []domain.Product {
	return c.filter(func(p domain.Product) bool { return p.IsNew })
}

func (c Catalog) Bestsellers() []domain.Product {
	return c.filter(func(p domain.Product) bool {
		_, ok := c.bestsellers[p.ProductID]
		return ok
	})
}

func (c Catalog) filter(keep func(domain.Product) bool) []domain.Product {
	var out []domain.Product
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func salePrice(s string) *decimal.Decimal {
	d := price(s)
	return &d
}
