package service

import (
	"context"
	"errors"
	"fmt"

	"food-ordering/internal/domain"
	"food-ordering/internal/protocol"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RestaurantResolver decides which restaurant owns a basket line.
type RestaurantResolver interface {
	Resolve(line domain.BasketLine) int
}

const (
	ResolverByName     = "name"
	ResolverBySnapshot = "snapshot"
)

// NameResolver looks the food name up in the current catalog and uses the
// first match; the snapshot is only used when the name is gone.
type NameResolver struct {
	Finder FoodFinder
}

func (r NameResolver) Resolve(line domain.BasketLine) int {
	if r.Finder != nil {
		if item, err := r.Finder.FindFoodByName(line.Food.Name); err == nil && item != nil {
			return item.RestaurantID
		}
	}
	return line.Food.RestaurantID
}

// SnapshotResolver trusts the restaurant carried by the basket line and
// only asks the catalog when the line has none.
type SnapshotResolver struct {
	Finder FoodFinder
}

func (r SnapshotResolver) Resolve(line domain.BasketLine) int {
	if line.Food.RestaurantID > 0 || r.Finder == nil {
		return line.Food.RestaurantID
	}
	if item, err := r.Finder.FindFoodByName(line.Food.Name); err == nil && item != nil {
		return item.RestaurantID
	}
	return 0
}

// NewResolver maps a configured resolver name onto an implementation.
func NewResolver(name string, finder FoodFinder) (RestaurantResolver, error) {
	switch name {
	case ResolverByName:
		return NameResolver{Finder: finder}, nil
	case ResolverBySnapshot, "":
		return SnapshotResolver{Finder: finder}, nil
	default:
		return nil, fmt.Errorf("unknown restaurant resolver %q", name)
	}
}

type PlacedOrder struct {
	RestaurantID int                  `json:"restaurant_id"`
	Total        float64              `json:"total_amount"`
	Lines        []domain.OrderLine   `json:"items"`
	Path         domain.PlacementPath `json:"path"`
	OrderID      int                  `json:"order_id,omitempty"`
	Ack          string               `json:"ack,omitempty"`
}

type FailedOrder struct {
	RestaurantID int     `json:"restaurant_id"`
	Total        float64 `json:"total_amount"`
	Error        string  `json:"error"`
	Err          error   `json:"-"`
}

type Outcome struct {
	Placed []PlacedOrder `json:"placed"`
	Failed []FailedOrder `json:"failed"`
}

func (o Outcome) OrdersCreated() int {
	return len(o.Placed)
}

// OrderPlacer turns a basket into durable orders. Each (sub-)order gets one
// remote attempt and, failing that, exactly one local write.
type OrderPlacer struct {
	Remote            RemoteSender
	Recorder          Recorder
	Resolver          RestaurantResolver
	SplitByRestaurant bool
	Logger            *zap.Logger
}

func NewOrderPlacer(remote RemoteSender, recorder Recorder, resolver RestaurantResolver, split bool, logger *zap.Logger) *OrderPlacer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if resolver == nil {
		resolver = SnapshotResolver{}
	}
	return &OrderPlacer{
		Remote:            remote,
		Recorder:          recorder,
		Resolver:          resolver,
		SplitByRestaurant: split,
		Logger:            logger,
	}
}

type subOrder struct {
	restaurantID int
	lines        []domain.BasketLine
}

// PlaceOrder validates the basket, groups it by restaurant and places every
// group in turn. The returned error joins the groups that could not be
// stored anywhere; groups that were placed are unaffected by them.
func (p *OrderPlacer) PlaceOrder(ctx context.Context, lines []domain.BasketLine) (Outcome, error) {
	if len(lines) == 0 {
		return Outcome{}, ErrEmptyBasket
	}
	for _, line := range lines {
		if err := validateBasketLine(line); err != nil {
			return Outcome{}, err
		}
	}

	outcome := Outcome{Placed: []PlacedOrder{}, Failed: []FailedOrder{}}
	var errs []error
	for _, group := range p.group(lines) {
		placed, err := p.placeOne(ctx, group)
		if err != nil {
			outcome.Failed = append(outcome.Failed, FailedOrder{
				RestaurantID: placed.RestaurantID,
				Total:        placed.Total,
				Error:        err.Error(),
				Err:          err,
			})
			errs = append(errs, fmt.Errorf("restaurant %d: %w", group.restaurantID, err))
			continue
		}
		outcome.Placed = append(outcome.Placed, placed)
	}
	return outcome, errors.Join(errs...)
}

func (p *OrderPlacer) placeOne(ctx context.Context, group subOrder) (PlacedOrder, error) {
	placed := PlacedOrder{
		RestaurantID: group.restaurantID,
		Total:        Total(group.lines),
		Lines:        make([]domain.OrderLine, 0, len(group.lines)),
	}
	for _, line := range group.lines {
		placed.Lines = append(placed.Lines, line.OrderLine())
	}

	if p.Remote != nil {
		ack, err := p.Remote.SendOrder(ctx, placed.RestaurantID, placed.Total, placed.Lines)
		if err == nil {
			placed.Path = domain.PathRemote
			placed.Ack = ack
			p.Logger.Info("order placed remotely",
				zap.Int("restaurant_id", placed.RestaurantID),
				zap.Float64("total", placed.Total),
				zap.String("ack", ack))
			return placed, nil
		}
		p.Logger.Warn("remote order failed, storing locally",
			zap.Int("restaurant_id", placed.RestaurantID),
			zap.Error(err))
	}

	orderID, err := p.Recorder.Record(ctx, placed.RestaurantID, placed.Total, placed.Lines, domain.PathLocal)
	if err != nil {
		p.Logger.Error("order lost",
			zap.Int("restaurant_id", placed.RestaurantID),
			zap.Float64("total", placed.Total),
			zap.Error(err))
		return placed, err
	}
	placed.Path = domain.PathLocal
	placed.OrderID = orderID
	return placed, nil
}

// group resolves each line's restaurant. With splitting on, lines are
// grouped per restaurant in first-seen order; otherwise the whole basket is
// one order owned by the first line's restaurant.
func (p *OrderPlacer) group(lines []domain.BasketLine) []subOrder {
	if !p.SplitByRestaurant {
		return []subOrder{{restaurantID: p.Resolver.Resolve(lines[0]), lines: lines}}
	}

	var groups []subOrder
	index := map[int]int{}
	for _, line := range lines {
		id := p.Resolver.Resolve(line)
		i, ok := index[id]
		if !ok {
			i = len(groups)
			index[id] = i
			groups = append(groups, subOrder{restaurantID: id})
		}
		groups[i].lines = append(groups[i].lines, line)
	}
	return groups
}

func validateBasketLine(line domain.BasketLine) error {
	switch {
	case !protocol.ValidName(line.Food.Name):
		return fmt.Errorf("%w: food name %q is empty or contains '|' or a line break", ErrInvalidBasketLine, line.Food.Name)
	case line.Quantity < 1:
		return fmt.Errorf("%w: %q has quantity %d", ErrInvalidBasketLine, line.Food.Name, line.Quantity)
	case line.Food.Price < 0:
		return fmt.Errorf("%w: %q has negative price %v", ErrInvalidBasketLine, line.Food.Name, line.Food.Price)
	}
	return nil
}

// Total sums quantity times unit price to the cent.
func Total(lines []domain.BasketLine) float64 {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(decimal.NewFromFloat(line.Food.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return sum.Round(2).InexactFloat64()
}
