package schema

import "github.com/hamba/avro/v2"

const OrderPlacedSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront.orders",
	"name": "order_placed",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "user_id", "type": "string"},
		{"name": "date", "type": "string"},
		{"name": "created_at_ms", "type": "long"},
		{"name": "total", "type": "string"},
		{"name": "currency", "type": "string"},
		{"name": "status", "type": "string"},
		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "order_item",
				"fields": [
					{"name": "product_id", "type": "string"},
					{"name": "name", "type": "string"},
					{"name": "size", "type": "string"},
					{"name": "quantity", "type": "int"},
					{"name": "unit_price", "type": "string"}
				]
			}
		}}
	]
}`

type (
	OrderPlacedV1 struct {
		OrderID     string        `avro:"order_id"`
		UserID      string        `avro:"user_id"`
		Date        string        `avro:"date"`
		CreatedAtMs int64         `avro:"created_at_ms"`
		Total       string        `avro:"total"`
		Currency    string        `avro:"currency"`
		Status      string        `avro:"status"`
		Items       []OrderItemV1 `avro:"items"`
	}

	OrderItemV1 struct {
		ProductID string `avro:"product_id"`
		Name      string `avro:"name"`
		Size      string `avro:"size"`
		Quantity  int    `avro:"quantity"`
		UnitPrice string `avro:"unit_price"`
	}
)

func OrderPlacedV1Avro() avro.Schema {
	return avro.MustParse(OrderPlacedSchemaTextV1)
}
