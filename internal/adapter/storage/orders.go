package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

type (
	orderItemRecord struct {
		Key      string        `json:"key"`
		Size     string        `json:"size"`
		Quantity int           `json:"quantity"`
		Product  productRecord `json:"product"`
	}

	productRecord struct {
		ProductID string           `json:"product_id"`
		Name      string           `json:"name"`
		Price     decimal.Decimal  `json:"price"`
		SalePrice *decimal.Decimal `json:"sale_price,omitempty"`
		Currency  string           `json:"currency"`
		Image     string           `json:"image"`
		Colors    []string         `json:"colors"`
		Rating    float64          `json:"rating"`
		Reviews   int              `json:"reviews"`
		IsNew     bool             `json:"is_new"`
		Category  string           `json:"category"`
	}
)

type OrdersRepository struct {
	sqldb sqldb
}

func NewOrdersRepository(sqldb sqldb) OrdersRepository {
	return OrdersRepository{sqldb}
}

func (r OrdersRepository) CreateOrder(
	ctx context.Context, userID string, o domain.Order,
) error {
	const op = "OrdersRepository.CreateOrder"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	itemsB, err := encodeItems(o.Items)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO orders (id, user_id, date, total, status, items, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`

	_, err = r.sqldb.ExecContext(ctx, query,
		o.OrderID, userID, o.Date, o.Total, string(o.Status),
		string(itemsB), o.CreatedAt.UTC(),
	)
	if err != nil {
		return providerErr(op, err)
	}
	return nil
}

func (r OrdersRepository) ListOrders(
	ctx context.Context, userID string,
) (orders []domain.Order, err error) {
	const op = "OrdersRepository.ListOrders"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT id, date, total, status, items, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC;`

	rows, err := r.sqldb.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, providerErr(op, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = providerErr(op, closeErr)
		}
	}()

	for rows.Next() {
		var (
			o         domain.Order
			status    string
			itemsS    string
			createdAt time.Time
		)
		err := rows.Scan(&o.OrderID, &o.Date, &o.Total, &status, &itemsS, &createdAt)
		if err != nil {
			return nil, providerErr(op, err)
		}
		o.Status = domain.OrderStatus(status)
		if !o.Status.Valid() {
			return nil, providerErr(op, fmt.Errorf("%w: %q", errUnknownStatus, status))
		}
		o.CreatedAt = createdAt
		o.Items, err = decodeItems([]byte(itemsS))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, providerErr(op, err)
	}
	return orders, nil
}

func encodeItems(items []domain.CartItem) ([]byte, error) {
	rs := make([]orderItemRecord, len(items))
	for i, it := range items {
		p := it.Product
		rs[i] = orderItemRecord{
			Key:      it.Key,
			Size:     it.Size,
			Quantity: it.Quantity,
			Product: productRecord{
				ProductID: p.ProductID,
				Name:      p.Name,
				Price:     p.Price,
				SalePrice: p.SalePrice,
				Currency:  p.Currency,
				Image:     p.Image,
				Colors:    p.Colors,
				Rating:    p.Rating,
				Reviews:   p.Reviews,
				IsNew:     p.IsNew,
				Category:  p.Category,
			},
		}
	}
	return json.Marshal(rs)
}

func decodeItems(b []byte) ([]domain.CartItem, error) {
	var rs []orderItemRecord
	if err := json.Unmarshal(b, &rs); err != nil {
		return nil, err
	}
	items := make([]domain.CartItem, len(rs))
	for i, r := range rs {
		p := r.Product
		items[i] = domain.CartItem{
			Key:      r.Key,
			Size:     r.Size,
			Quantity: r.Quantity,
			Product: domain.Product{
				ProductID: p.ProductID,
				Name:      p.Name,
				Price:     p.Price,
				SalePrice: p.SalePrice,
				Currency:  p.Currency,
				Image:     p.Image,
				Colors:    p.Colors,
				Rating:    p.Rating,
				Reviews:   p.Reviews,
				IsNew:     p.IsNew,
				Category:  p.Category,
			},
		}
	}
	return items, nil
}
