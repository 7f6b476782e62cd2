package service_test

import (
	"bytes"
	"database/sql"
	"errors"
	"testing"

	"food-ordering/internal/domain"
	"food-ordering/internal/mocks"
	"food-ordering/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedBurgerOrder() *domain.Order {
	return &domain.Order{
		ID:           7,
		Date:         "2024-05-01 12:30:00",
		TotalAmount:  12,
		RestaurantID: 1,
		Lines: []domain.OrderLine{
			{ID: 1, OrderID: 7, FoodName: "Burger", Quantity: 2, UnitPrice: 5},
			{ID: 2, OrderID: 7, FoodName: "Coke", Quantity: 1, UnitPrice: 2},
		},
	}
}

func TestOrderService_Reorder(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	finder := mocks.NewFoodFinder(t)
	svc := service.NewOrderService(repo, finder, nil)

	repriced := burger
	repriced.Price = 6
	repo.On("GetOrder", 7).Return(storedBurgerOrder(), nil).Once()
	finder.On("FindFoodByName", "Burger").Return(&repriced, nil).Once()
	finder.On("FindFoodByName", "Coke").Return(nil, sql.ErrNoRows).Once()

	basket, err := svc.Reorder(7)

	require.NoError(t, err)
	assert.Equal(t, []domain.BasketLine{
		{Food: repriced, Quantity: 2},
		{Food: domain.FoodItem{Name: "Coke", Price: 2, RestaurantID: 1}, Quantity: 1},
	}, basket)
}

func TestOrderService_ReorderCatalogError(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	finder := mocks.NewFoodFinder(t)
	svc := service.NewOrderService(repo, finder, nil)

	repo.On("GetOrder", 7).Return(storedBurgerOrder(), nil).Once()
	finder.On("FindFoodByName", "Burger").Return(nil, errors.New("connection reset")).Once()

	_, err := svc.Reorder(7)
	assert.Error(t, err)
}

func TestOrderService_Get(t *testing.T) {
	tests := []struct {
		name    string
		order   *domain.Order
		repoErr error
		wantErr error
	}{
		{name: "found", order: storedBurgerOrder()},
		{name: "missing", repoErr: sql.ErrNoRows, wantErr: service.ErrNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			repo.On("GetOrder", 7).Return(testCase.order, testCase.repoErr).Once()

			order, err := service.NewOrderService(repo, nil, nil).Get(7)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 12.0, order.TotalAmount)
		})
	}
}

func TestOrderService_QRCode(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	qr := mocks.NewQRGenerator(t)
	svc := service.NewOrderService(repo, nil, qr)

	repo.On("GetOrder", 7).Return(storedBurgerOrder(), nil).Once()
	qr.On("Generate", 7).Return([]byte("png"), nil).Once()

	png, err := svc.QRCode(7)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
	assert.Equal(t, "/api/orders/7/qrcode", svc.QRLink(7))
}

func TestReceiptQRGenerator(t *testing.T) {
	png, err := service.ReceiptQRGenerator{BaseURL: "http://localhost:8081/"}.Generate(7)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestOrderService_HistoryAndClear(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	svc := service.NewOrderService(repo, nil, nil)

	summaries := []domain.OrderSummary{{ID: 7, TotalAmount: 12, RestaurantID: 1, ItemsDescription: "Burger x2, Coke x1"}}
	repo.On("ListOrders").Return(summaries, nil).Once()
	repo.On("ListRestaurantOrders", 1).Return(summaries, nil).Once()
	repo.On("ClearOrders").Return(nil).Once()
	repo.On("ClearAll").Return(nil).Once()

	history, err := svc.History()
	require.NoError(t, err)
	assert.Equal(t, summaries, history)

	forRestaurant, err := svc.RestaurantOrders(1)
	require.NoError(t, err)
	assert.Len(t, forRestaurant, 1)

	assert.NoError(t, svc.ClearOrders())
	assert.NoError(t, svc.ClearAll())
}
