package service

import "errors"

var (
	ErrEmptyBasket       = errors.New("basket is empty")
	ErrInvalidBasketLine = errors.New("invalid basket line")
	ErrPersistenceFailed = errors.New("order could not be stored")

	ErrNotFound            = errors.New("not found")
	ErrInvalidRestaurant   = errors.New("restaurant name is required")
	ErrInvalidFood         = errors.New("food item needs a name, a type and a non-negative price")
	ErrRestaurantHasOrders = errors.New("restaurant still has orders")
)
