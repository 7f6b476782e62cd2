package service

import (
	"context"

	"food-ordering/internal/domain"
	"food-ordering/internal/storage"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type BoardWriter interface {
	RecordOrder(ctx context.Context, event domain.OrderPlacedEvent) (bool, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	ProcessMessage(ctx context.Context, msg kafka.Message) error
}

var (
	_ MessageReader     = (*kafka.Reader)(nil)
	_ BoardWriter       = (*storage.BoardStore)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
