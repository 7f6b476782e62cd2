package service

import (
	"context"

	"food-ordering/internal/domain"
	"food-ordering/internal/orderclient"
	"food-ordering/internal/storage"
)

type OrderWriter interface {
	CreateOrder(restaurantID int, total float64, lines []domain.OrderLine) (int, error)
}

type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event domain.OrderPlacedEvent) error
}

type RemoteSender interface {
	SendOrder(ctx context.Context, restaurantID int, total float64, lines []domain.OrderLine) (string, error)
}

type Recorder interface {
	Record(ctx context.Context, restaurantID int, total float64, lines []domain.OrderLine, source domain.PlacementPath) (int, error)
}

type FoodFinder interface {
	FindFoodByName(name string) (*domain.FoodItem, error)
}

type CatalogRepository interface {
	FoodFinder
	CreateRestaurant(rest *domain.Restaurant) error
	FindRestaurantByName(name string) (*domain.Restaurant, error)
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) error
	CountRestaurantOrders(id int) (int, error)
	DeleteRestaurant(id int) (int64, error)
	CreateFood(food *domain.FoodItem) error
	ListFood(restaurantID int) ([]domain.FoodItem, error)
	GetFood(restaurantID, foodID int) (*domain.FoodItem, error)
	UpdateFood(food *domain.FoodItem) (int64, error)
	DeleteFood(restaurantID, foodID int) (int64, error)
}

type OrderRepository interface {
	ListOrders() ([]domain.OrderSummary, error)
	ListRestaurantOrders(restaurantID int) ([]domain.OrderSummary, error)
	GetOrder(orderID int) (*domain.Order, error)
	ClearOrders() error
	ClearAll() error
}

type BoardReader interface {
	Board(ctx context.Context, restaurantID int) (*domain.Board, error)
}

type Placer interface {
	PlaceOrder(ctx context.Context, lines []domain.BasketLine) (Outcome, error)
}

type CatalogServiceInterface interface {
	CreateRestaurant(rest *domain.Restaurant) error
	GetOrCreateRestaurant(name string) (*domain.Restaurant, error)
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	RenameRestaurant(id int, name string) (*domain.Restaurant, error)
	DeleteRestaurant(id int) error
	AddFood(food *domain.FoodItem) error
	UpdateFood(food *domain.FoodItem) error
	DeleteFood(restaurantID, foodID int) error
	Menu(restaurantID int) ([]domain.FoodItem, error)
	FindFoodByName(name string) (*domain.FoodItem, error)
}

type OrderServiceInterface interface {
	History() ([]domain.OrderSummary, error)
	RestaurantOrders(restaurantID int) ([]domain.OrderSummary, error)
	Get(orderID int) (*domain.Order, error)
	Reorder(orderID int) ([]domain.BasketLine, error)
	QRCode(orderID int) ([]byte, error)
	QRLink(orderID int) string
	ClearOrders() error
	ClearAll() error
}

var (
	_ OrderWriter       = (*storage.PostgresRepository)(nil)
	_ CatalogRepository = (*storage.PostgresRepository)(nil)
	_ OrderRepository   = (*storage.PostgresRepository)(nil)
	_ EventPublisher    = (*storage.KafkaPublisher)(nil)
	_ BoardReader       = (*storage.BoardStore)(nil)
	_ RemoteSender      = (*orderclient.Client)(nil)

	_ Recorder                = (*OrderRecorder)(nil)
	_ Placer                  = (*OrderPlacer)(nil)
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ OrderServiceInterface   = (*OrderService)(nil)
)
