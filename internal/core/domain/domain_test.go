package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.com "))
	assert.Equal(t, "user@example.com", NormalizeEmail("user@ex\u200bample.com"))
	assert.Equal(t, "user@example.com", NormalizeEmail("us er@example.com\ufeff"))
}

func TestValidateEmail(t *testing.T) {
	assert.ErrorIs(t, ValidateEmail(""), ErrValidation)
	assert.ErrorIs(t, ValidateEmail("user@example"), ErrInvalidEmail)
	assert.ErrorIs(t, ValidateEmail("Name <user@example.com>"), ErrInvalidEmail)
	assert.NoError(t, ValidateEmail("user@example.com"))
}

func TestSubtotal(t *testing.T) {
	sale := decimal.RequireFromString("79.90")
	items := []CartItem{
		{Quantity: 1, Product: Product{Price: decimal.RequireFromString("89.00")}},
		{Quantity: 2, Product: Product{
			Price: decimal.RequireFromString("89.00"), SalePrice: &sale,
		}},
	}
	assert.True(t, decimal.RequireFromString("248.80").Equal(Subtotal(items)))
}

func TestNewOrderSnapshots(t *testing.T) {
	items := []CartItem{{
		Key: "1-M", Quantity: 1,
		Product: Product{Price: decimal.RequireFromString("10"), Colors: []string{"#000"}},
	}}
	o := NewOrder("o1", time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), items)
	items[0].Quantity = 5
	items[0].Product.Colors[0] = "#fff"

	require.Len(t, o.Items, 1)
	assert.Equal(t, 1, o.Items[0].Quantity)
	assert.Equal(t, "#000", o.Items[0].Product.Colors[0])
	assert.Equal(t, "04/03/2025", o.Date)
	assert.Equal(t, OrderApproved, o.Status)
	assert.True(t, o.Total.Equal(decimal.NewFromInt(10)))
}

func TestMessage(t *testing.T) {
	assert.Empty(t, Message(nil))
	assert.Equal(t, "size required",
		Message(fmt.Errorf("op: %w", NewValidationError("size required"))))
	assert.Equal(t, ErrRateLimited.Error(),
		Message(fmt.Errorf("a: %w", fmt.Errorf("b: %w", ErrRateLimited))))
	assert.Equal(t, ErrProvider.Error(), Message(fmt.Errorf("boom")))
}

func TestClampRating(t *testing.T) {
	assert.Equal(t, 1, ClampRating(-3))
	assert.Equal(t, 5, ClampRating(8))
	assert.Equal(t, 3, ClampRating(3))
}
