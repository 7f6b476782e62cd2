package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ledger's order timestamp format (local clock, second precision).
const DateLayout = "2006-01-02 15:04:05"

type Restaurant struct {
	ID   int        `json:"id"`
	Name string     `json:"name"`
	Menu []FoodItem `json:"menu,omitempty"`
}

type FoodItem struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Category     Category `json:"type"`
	Price        float64  `json:"price"`
	RestaurantID int      `json:"restaurant_id"`
}

type BasketLine struct {
	Food     FoodItem `json:"food"`
	Quantity int      `json:"quantity"`
}

// Subtotal is quantity times the snapshot price, before rounding.
func (l BasketLine) Subtotal() float64 {
	return l.Food.Price * float64(l.Quantity)
}

func (l BasketLine) OrderLine() OrderLine {
	return OrderLine{
		FoodName:  l.Food.Name,
		Quantity:  l.Quantity,
		UnitPrice: l.Food.Price,
	}
}

type Order struct {
	ID           int         `json:"id"`
	Date         string      `json:"date"`
	TotalAmount  float64     `json:"total_amount"`
	RestaurantID int         `json:"restaurant_id"`
	Lines        []OrderLine `json:"items"`
}

type OrderLine struct {
	ID        int     `json:"id,omitempty"`
	OrderID   int     `json:"order_id,omitempty"`
	FoodName  string  `json:"food_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`
}

// OrderSummary is one row of the order history and restaurant order views.
type OrderSummary struct {
	ID               int     `json:"id"`
	Date             string  `json:"date"`
	TotalAmount      float64 `json:"total_amount"`
	RestaurantID     int     `json:"restaurant_id"`
	ItemsDescription string  `json:"items"`
}

// Describe renders lines the way the history view shows them: "Burger x2, Coke x1".
func Describe(lines []OrderLine) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, fmt.Sprintf("%s x%d", line.FoodName, line.Quantity))
	}
	return strings.Join(parts, ", ")
}

type PlacementPath string

const (
	PathRemote PlacementPath = "remote"
	PathLocal  PlacementPath = "local"
)

type OrderPlacedEvent struct {
	Type         string        `json:"type"`
	EventID      string        `json:"event_id"`
	OrderID      int           `json:"order_id"`
	RestaurantID int           `json:"restaurant_id"`
	TotalAmount  float64       `json:"total_amount"`
	Lines        []OrderLine   `json:"items"`
	Source       PlacementPath `json:"source"`
	Timestamp    time.Time     `json:"timestamp"`
}

const EventOrderPlaced = "order_placed"

// BoardEntry is one order on a restaurant's live board.
type BoardEntry struct {
	OrderID     int       `json:"order_id"`
	TotalAmount float64   `json:"total_amount"`
	Items       string    `json:"items"`
	Source      string    `json:"source"`
	PlacedAt    time.Time `json:"placed_at"`
}

type PopularItem struct {
	FoodName string `json:"food_name"`
	Quantity int64  `json:"quantity"`
}

type Board struct {
	RestaurantID int           `json:"restaurant_id"`
	OrderCount   int64         `json:"order_count"`
	Revenue      float64       `json:"revenue"`
	Recent       []BoardEntry  `json:"recent"`
	PopularToday []PopularItem `json:"popular_today"`
}
