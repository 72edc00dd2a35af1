package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderApproved  OrderStatus = "approved"
	OrderInTransit OrderStatus = "in_transit"
	OrderDelivered OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderApproved, OrderInTransit, OrderDelivered:
		return true
	}
	return false
}

// DateLayout is the pt-BR short date used for display dates.
const DateLayout = "02/01/2006"

type Order struct {
	OrderID   string
	Date      string
	CreatedAt time.Time
	Total     decimal.Decimal
	Items     []CartItem
	Status    OrderStatus
}

// NewOrder snapshots items; the order total is fixed at creation.
func NewOrder(id string, now time.Time, items []CartItem) Order {
	snapshot := CloneItems(items)
	return Order{
		OrderID:   id,
		Date:      now.Format(DateLayout),
		CreatedAt: now,
		Total:     Subtotal(snapshot),
		Items:     snapshot,
		Status:    OrderApproved,
	}
}

func (o Order) Clone() Order {
	c := o
	c.Items = CloneItems(o.Items)
	return c
}
