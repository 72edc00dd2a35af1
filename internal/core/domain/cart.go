package domain

import "github.com/shopspring/decimal"

type CartItem struct {
	Product  Product
	Key      string
	Size     string
	Quantity int
}

func CartItemKey(productID, size string) string {
	return productID + "-" + size
}

// LineTotal is the effective unit price multiplied by quantity.
func (it CartItem) LineTotal() decimal.Decimal {
	return it.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// CloneItems returns a deep copy so later cart mutations never leak into
// snapshots such as orders.
func CloneItems(items []CartItem) []CartItem {
	if items == nil {
		return nil
	}
	out := make([]CartItem, len(items))
	for i, it := range items {
		out[i] = it
		out[i].Product = it.Product.clone()
	}
	return out
}

func Subtotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}
