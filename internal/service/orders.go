package service

import (
	"errors"
	"fmt"

	"food-ordering/internal/domain"
)

// OrderService serves the ledger's read side and its admin operations.
type OrderService struct {
	repo    OrderRepository
	catalog FoodFinder
	qr      QRGenerator
}

func NewOrderService(repo OrderRepository, catalog FoodFinder, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, catalog: catalog, qr: qr}
}

func (s *OrderService) History() ([]domain.OrderSummary, error) {
	return s.repo.ListOrders()
}

func (s *OrderService) RestaurantOrders(restaurantID int) ([]domain.OrderSummary, error) {
	return s.repo.ListRestaurantOrders(restaurantID)
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, notFound(err, "order", orderID)
	}
	return order, nil
}

// Reorder rebuilds a basket from a past order. Lines whose food is still in
// the catalog use the current item and price; the rest reuse what the order
// recorded.
func (s *OrderService) Reorder(orderID int) ([]domain.BasketLine, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}

	basket := make([]domain.BasketLine, 0, len(order.Lines))
	for _, line := range order.Lines {
		food := domain.FoodItem{
			Name:         line.FoodName,
			Price:        line.UnitPrice,
			RestaurantID: order.RestaurantID,
		}
		if s.catalog != nil {
			current, err := s.catalog.FindFoodByName(line.FoodName)
			switch {
			case err == nil && current != nil:
				food = *current
			case err != nil && !errors.Is(err, ErrNotFound) && !isNoRows(err):
				return nil, fmt.Errorf("look up %q: %w", line.FoodName, err)
			}
		}
		basket = append(basket, domain.BasketLine{Food: food, Quantity: line.Quantity})
	}
	return basket, nil
}

func (s *OrderService) QRCode(orderID int) ([]byte, error) {
	if _, err := s.Get(orderID); err != nil {
		return nil, err
	}
	if s.qr == nil {
		return nil, errors.New("receipt QR codes are not configured")
	}
	return s.qr.Generate(orderID)
}

func (s *OrderService) QRLink(orderID int) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}

func (s *OrderService) ClearOrders() error {
	return s.repo.ClearOrders()
}

func (s *OrderService) ClearAll() error {
	return s.repo.ClearAll()
}
