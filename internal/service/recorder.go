package service

import (
	"context"
	"fmt"
	"time"

	"food-ordering/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderRecorder is the one place orders enter the ledger, whether they come
// from the coordinator's local path or from the order-accepting service.
type OrderRecorder struct {
	Writer    OrderWriter
	Publisher EventPublisher
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewOrderRecorder(writer OrderWriter, publisher EventPublisher, logger *zap.Logger) *OrderRecorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderRecorder{Writer: writer, Publisher: publisher, Logger: logger, Now: time.Now}
}

// Record stores the order atomically and then announces it. A failed
// announcement is logged and never undoes the stored order.
func (r *OrderRecorder) Record(ctx context.Context, restaurantID int, total float64, lines []domain.OrderLine, source domain.PlacementPath) (int, error) {
	orderID, err := r.Writer.CreateOrder(restaurantID, total, lines)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("order stored",
		zap.Int("order_id", orderID),
		zap.Int("restaurant_id", restaurantID),
		zap.Float64("total", total),
		zap.Int("lines", len(lines)),
		zap.String("source", string(source)))

	if r.Publisher == nil {
		return orderID, nil
	}
	event := domain.OrderPlacedEvent{
		Type:         domain.EventOrderPlaced,
		EventID:      uuid.NewString(),
		OrderID:      orderID,
		RestaurantID: restaurantID,
		TotalAmount:  total,
		Lines:        lines,
		Source:       source,
		Timestamp:    r.now(),
	}
	if err := r.Publisher.PublishOrderPlaced(ctx, event); err != nil {
		logger.Warn("publish order_placed failed", zap.Int("order_id", orderID), zap.Error(err))
	}
	return orderID, nil
}

func (r *OrderRecorder) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}
