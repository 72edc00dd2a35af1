package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/hamba/avro/v2"
	"github.com/twmb/franz-go/pkg/sr"
)

var (
	ErrEmptySubject  = errors.New("subject is empty string")
	ErrNilIdentifier = errors.New("schema identifier is nil")
)

// OrderPlacedEncoder frames OrderPlacedV1 values in the schema registry wire
// format: a zero magic byte, the big-endian schema id, then the avro body.
type OrderPlacedEncoder struct {
	srSerde *sr.Serde
}

// NewOrderPlacedEncoder resolves the id of OrderPlacedSchemaTextV1 under
// subject. Only OrderPlacedV1 values can be encoded.
func NewOrderPlacedEncoder(
	ctx context.Context, subject string, si SchemaIdentifier,
) (OrderPlacedEncoder, error) {
	const op = "NewOrderPlacedEncoder"

	if subject == "" {
		return OrderPlacedEncoder{}, fmt.Errorf("%s: %w", op, ErrEmptySubject)
	}
	if si == nil {
		return OrderPlacedEncoder{}, fmt.Errorf("%s: %w", op, ErrNilIdentifier)
	}

	avroSchema, err := avro.Parse(OrderPlacedSchemaTextV1)
	if err != nil {
		return OrderPlacedEncoder{}, fmt.Errorf("%s: %w", op, err)
	}

	id, err := si.DetermineID(ctx, subject, OrderPlacedSchemaTextV1)
	if err != nil {
		return OrderPlacedEncoder{}, fmt.Errorf("%s: %w", op, err)
	}

	var srSerde sr.Serde
	srSerde.Register(id, OrderPlacedV1{}, sr.EncodeFn(AvroEncodeFn(avroSchema)))
	return OrderPlacedEncoder{&srSerde}, nil
}

func (e OrderPlacedEncoder) Encode(v any) ([]byte, error) {
	const op = "OrderPlacedEncoder.Encode"
	data, err := e.srSerde.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return data, nil
}
