package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"food-ordering/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	DefaultRecentLimit = 50
	popularTop         = 5
	popularTTL         = 7 * 24 * time.Hour
	seenTTL            = 24 * time.Hour
)

// BoardStore keeps each restaurant's live order board in Redis: the most
// recent orders, running count and revenue, and today's item popularity.
type BoardStore struct {
	Client      *redis.Client
	RecentLimit int64
	Now         func() time.Time
}

func NewBoardStore(client *redis.Client) *BoardStore {
	return &BoardStore{Client: client, RecentLimit: DefaultRecentLimit, Now: time.Now}
}

func recentKey(restaurantID int) string {
	return "board:" + strconv.Itoa(restaurantID) + ":recent"
}

func statsKey(restaurantID int) string {
	return "board:" + strconv.Itoa(restaurantID) + ":stats"
}

func popularKey(restaurantID int, day time.Time) string {
	return fmt.Sprintf("board:%d:popular:%s", restaurantID, day.Format("2006-01-02"))
}

func seenKey(eventID string) string {
	return "board:seen:" + eventID
}

// RecordOrder folds one order_placed event into the board. Events already
// seen are skipped and reported with applied=false.
func (s *BoardStore) RecordOrder(ctx context.Context, event domain.OrderPlacedEvent) (bool, error) {
	entry, err := json.Marshal(domain.BoardEntry{
		OrderID:     event.OrderID,
		TotalAmount: event.TotalAmount,
		Items:       domain.Describe(event.Lines),
		Source:      string(event.Source),
		PlacedAt:    event.Timestamp,
	})
	if err != nil {
		return false, fmt.Errorf("marshal board entry: %w", err)
	}

	if event.EventID != "" {
		fresh, err := s.Client.SetNX(ctx, seenKey(event.EventID), "1", seenTTL).Result()
		if err != nil {
			return false, fmt.Errorf("mark event %s: %w", event.EventID, err)
		}
		if !fresh {
			return false, nil
		}
	}

	cents := decimal.NewFromFloat(event.TotalAmount).Shift(2).Round(0).IntPart()
	day := event.Timestamp
	if day.IsZero() {
		day = s.Now()
	}
	popular := popularKey(event.RestaurantID, day)

	_, err = s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, recentKey(event.RestaurantID), entry)
		pipe.LTrim(ctx, recentKey(event.RestaurantID), 0, s.recentLimit()-1)
		pipe.HIncrBy(ctx, statsKey(event.RestaurantID), "orders", 1)
		pipe.HIncrBy(ctx, statsKey(event.RestaurantID), "revenue_cents", cents)
		for _, line := range event.Lines {
			pipe.ZIncrBy(ctx, popular, float64(line.Quantity), line.FoodName)
		}
		pipe.Expire(ctx, popular, popularTTL)
		return nil
	})
	if err != nil {
		// Unmark so a redelivery of the event is not skipped as a duplicate.
		if event.EventID != "" {
			s.Client.Del(context.WithoutCancel(ctx), seenKey(event.EventID))
		}
		return false, fmt.Errorf("update board %d: %w", event.RestaurantID, err)
	}
	return true, nil
}

func (s *BoardStore) Board(ctx context.Context, restaurantID int) (*domain.Board, error) {
	board := &domain.Board{
		RestaurantID: restaurantID,
		Recent:       []domain.BoardEntry{},
		PopularToday: []domain.PopularItem{},
	}

	raw, err := s.Client.LRange(ctx, recentKey(restaurantID), 0, s.recentLimit()-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read recent orders: %w", err)
	}
	for _, item := range raw {
		var entry domain.BoardEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		board.Recent = append(board.Recent, entry)
	}

	stats, err := s.Client.HGetAll(ctx, statsKey(restaurantID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read board stats: %w", err)
	}
	board.OrderCount, _ = strconv.ParseInt(stats["orders"], 10, 64)
	cents, _ := strconv.ParseInt(stats["revenue_cents"], 10, 64)
	board.Revenue = decimal.New(cents, -2).InexactFloat64()

	top, err := s.Client.ZRevRangeWithScores(ctx, popularKey(restaurantID, s.Now()), 0, popularTop-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read popular items: %w", err)
	}
	for _, z := range top {
		name, _ := z.Member.(string)
		board.PopularToday = append(board.PopularToday, domain.PopularItem{FoodName: name, Quantity: int64(z.Score)})
	}
	return board, nil
}

func (s *BoardStore) recentLimit() int64 {
	if s.RecentLimit <= 0 {
		return DefaultRecentLimit
	}
	return s.RecentLimit
}
