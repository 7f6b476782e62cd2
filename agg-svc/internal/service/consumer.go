package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"food-ordering/internal/domain"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const readRetryDelay = time.Second

// Consumer projects order_placed events onto the restaurants' live boards.
type Consumer struct {
	Reader MessageReader
	Store  BoardWriter
	Logger *zap.Logger
}

func NewConsumer(reader MessageReader, store BoardWriter, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader: reader,
		Store:  store,
		Logger: logger,
	}
}

// Start reads until ctx is cancelled. Read errors are logged and retried;
// a message that cannot be applied is logged and skipped.
func (c *Consumer) Start(ctx context.Context) error {
	c.Logger.Info("Starting Aggregation Service consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.Logger.Warn("Error reading message", zap.Error(err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(readRetryDelay):
			}
			continue
		}

		if err := c.ProcessMessage(ctx, message); err != nil {
			c.Logger.Error("Error processing message",
				zap.Int64("offset", message.Offset),
				zap.Error(err))
		}
	}
}

func (c *Consumer) ProcessMessage(ctx context.Context, msg kafka.Message) error {
	var event domain.OrderPlacedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}
	if event.Type != domain.EventOrderPlaced {
		c.Logger.Debug("Skipping event", zap.String("type", event.Type))
		return nil
	}

	applied, err := c.Store.RecordOrder(ctx, event)
	if err != nil {
		return fmt.Errorf("record order %d: %w", event.OrderID, err)
	}
	if !applied {
		c.Logger.Debug("Duplicate event skipped", zap.String("event_id", event.EventID))
		return nil
	}

	c.Logger.Info("Order added to live board",
		zap.Int("order_id", event.OrderID),
		zap.Int("restaurant_id", event.RestaurantID),
		zap.String("source", string(event.Source)))
	return nil
}
