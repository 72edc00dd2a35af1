package domain

import "github.com/shopspring/decimal"

type (
	Product struct {
		ProductID string
		Name      string
		Price     decimal.Decimal
		SalePrice *decimal.Decimal
		Currency  string
		Image     string
		Colors    []string
		Rating    float64
		Reviews   int
		IsNew     bool
		Category  string
	}

	Category struct {
		CategoryID string
		Name       string
		Image      string
	}
)

// EffectivePrice returns the sale price when the product has one.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

func (p Product) clone() Product {
	c := p
	if p.SalePrice != nil {
		v := *p.SalePrice
		c.SalePrice = &v
	}
	c.Colors = append([]string(nil), p.Colors...)
	return c
}
