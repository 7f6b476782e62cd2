package httpapi_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "food-ordering/dish-svc/internal/api/http"
	"food-ordering/internal/domain"
	"food-ordering/internal/mocks"
	"food-ordering/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	catalog *mocks.CatalogRepository
	orders  *mocks.OrderRepository
	qr      *mocks.QRGenerator
	placer  *mocks.Placer
	board   *mocks.BoardReader
	router  *mux.Router
}

func newFixture(t *testing.T, withBoard bool) *fixture {
	f := &fixture{
		catalog: mocks.NewCatalogRepository(t),
		orders:  mocks.NewOrderRepository(t),
		qr:      mocks.NewQRGenerator(t),
		placer:  mocks.NewPlacer(t),
	}
	catalogSvc := service.NewCatalogService(f.catalog)
	orderSvc := service.NewOrderService(f.orders, catalogSvc, f.qr)

	var board service.BoardReader
	if withBoard {
		f.board = mocks.NewBoardReader(t)
		board = f.board
	}

	f.router = mux.NewRouter()
	httpapi.NewHandler(catalogSvc, orderSvc, f.placer, board, nil).RegisterRoutes(f.router)
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

var burger = domain.FoodItem{ID: 1, Name: "Burger", Category: domain.CategoryMainCourse, Price: 5, RestaurantID: 1}

func TestCreateRestaurantHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(*mocks.CatalogRepository)
		wantCode int
	}{
		{
			name: "new restaurant",
			body: `{"name":"Burger Barn"}`,
			setup: func(m *mocks.CatalogRepository) {
				m.On("FindRestaurantByName", "Burger Barn").Return(nil, sql.ErrNoRows).Once()
				m.On("CreateRestaurant", mock.AnythingOfType("*domain.Restaurant")).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "existing name",
			body: `{"name":"burger barn"}`,
			setup: func(m *mocks.CatalogRepository) {
				m.On("FindRestaurantByName", "burger barn").Return(&domain.Restaurant{ID: 1, Name: "Burger Barn"}, nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "invalid JSON",
			body:     `{invalid}`,
			setup:    func(*mocks.CatalogRepository) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "blank name",
			body:     `{"name":"  "}`,
			setup:    func(*mocks.CatalogRepository) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "database error",
			body: `{"name":"Burger Barn"}`,
			setup: func(m *mocks.CatalogRepository) {
				m.On("FindRestaurantByName", "Burger Barn").Return(nil, errors.New("db error")).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t, false)
			testCase.setup(f.catalog)

			w := f.do("POST", "/api/restaurants", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestGetRestaurantHandler(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		setup    func(*mocks.CatalogRepository)
		wantCode int
	}{
		{
			name: "found",
			id:   "1",
			setup: func(m *mocks.CatalogRepository) {
				m.On("GetRestaurant", 1).Return(&domain.Restaurant{ID: 1, Name: "Burger Barn"}, nil).Once()
				m.On("ListFood", 1).Return([]domain.FoodItem{burger}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "not found",
			id:   "999",
			setup: func(m *mocks.CatalogRepository) {
				m.On("GetRestaurant", 999).Return(nil, sql.ErrNoRows).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "bad id",
			id:       "abc",
			setup:    func(*mocks.CatalogRepository) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t, false)
			testCase.setup(f.catalog)

			w := f.do("GET", "/api/restaurants/"+testCase.id, "")

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestDeleteRestaurantHandler(t *testing.T) {
	tests := []struct {
		name     string
		orders   int
		rows     int64
		wantCode int
	}{
		{name: "deleted", rows: 1, wantCode: http.StatusNoContent},
		{name: "still has orders", orders: 3, wantCode: http.StatusConflict},
		{name: "missing", rows: 0, wantCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t, false)
			f.catalog.On("CountRestaurantOrders", 4).Return(testCase.orders, nil).Once()
			if testCase.orders == 0 {
				f.catalog.On("DeleteRestaurant", 4).Return(testCase.rows, nil).Once()
			}

			w := f.do("DELETE", "/api/restaurants/4", "")

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestFoodHandlers(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		f := newFixture(t, false)
		f.catalog.On("GetRestaurant", 1).Return(&domain.Restaurant{ID: 1}, nil).Once()
		f.catalog.On("CreateFood", mock.MatchedBy(func(food *domain.FoodItem) bool {
			return food.RestaurantID == 1 && food.Category == domain.CategoryDrink
		})).Return(nil).Once()

		w := f.do("POST", "/api/restaurants/1/food", `{"name":"Lemonade","type":"drink","price":3}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var food domain.FoodItem
		require.NoError(t, json.NewDecoder(w.Body).Decode(&food))
		assert.Equal(t, domain.CategoryDrink, food.Category)
	})

	t.Run("create invalid", func(t *testing.T) {
		f := newFixture(t, false)

		w := f.do("POST", "/api/restaurants/1/food", `{"name":"Fish|Chips","type":"Main Course","price":3}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("menu", func(t *testing.T) {
		f := newFixture(t, false)
		f.catalog.On("ListFood", 1).Return(nil, nil).Once()

		w := f.do("GET", "/api/restaurants/1/food", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("update missing", func(t *testing.T) {
		f := newFixture(t, false)
		f.catalog.On("UpdateFood", mock.AnythingOfType("*domain.FoodItem")).Return(int64(0), nil).Once()

		w := f.do("PUT", "/api/restaurants/1/food/3", `{"name":"Burger","type":"Main Course","price":6}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		f := newFixture(t, false)
		f.catalog.On("DeleteFood", 1, 3).Return(int64(1), nil).Once()

		w := f.do("DELETE", "/api/restaurants/1/food/3", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

const basketBody = `{"items":[{"food":{"id":1,"name":"Burger","type":"Main Course","price":5,"restaurant_id":1},"quantity":2}]}`

func TestCreateOrderHandler(t *testing.T) {
	basket := []domain.BasketLine{{Food: burger, Quantity: 2}}

	tests := []struct {
		name         string
		body         string
		outcome      service.Outcome
		placeErr     error
		wantCode     int
		wantCreated  float64
		wantReceipts []interface{}
	}{
		{
			name: "placed remotely",
			body: basketBody,
			outcome: service.Outcome{
				Placed: []service.PlacedOrder{{RestaurantID: 1, Total: 10, Path: domain.PathRemote, Ack: "OK:Order stored successfully"}},
				Failed: []service.FailedOrder{},
			},
			wantCode:    http.StatusCreated,
			wantCreated: 1,
		},
		{
			name: "partial success",
			body: basketBody,
			outcome: service.Outcome{
				Placed: []service.PlacedOrder{{RestaurantID: 1, Total: 10, Path: domain.PathLocal, OrderID: 7}},
				Failed: []service.FailedOrder{{RestaurantID: 2, Total: 4.5, Error: "order could not be stored"}},
			},
			placeErr:     errors.New("restaurant 2: order could not be stored"),
			wantCode:     http.StatusCreated,
			wantCreated:  1,
			wantReceipts: []interface{}{"/api/orders/7/qrcode"},
		},
		{
			name: "nothing stored",
			body: basketBody,
			outcome: service.Outcome{
				Placed: []service.PlacedOrder{},
				Failed: []service.FailedOrder{{RestaurantID: 1, Total: 10, Error: "order could not be stored"}},
			},
			placeErr:    service.ErrPersistenceFailed,
			wantCode:    http.StatusInternalServerError,
			wantCreated: 0,
		},
		{
			name:     "empty basket",
			body:     basketBody,
			placeErr: service.ErrEmptyBasket,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t, false)
			f.placer.On("PlaceOrder", mock.Anything, basket).Return(testCase.outcome, testCase.placeErr).Once()

			w := f.do("POST", "/api/orders", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusBadRequest {
				return
			}
			var resp map[string]interface{}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, testCase.wantCreated, resp["orders_created"])
			assert.Len(t, resp["failed"], len(testCase.outcome.Failed))
			if testCase.wantReceipts != nil {
				assert.Equal(t, testCase.wantReceipts, resp["receipts"])
			}
		})
	}
}

func TestCreateOrderHandler_InvalidJSON(t *testing.T) {
	f := newFixture(t, false)

	w := f.do("POST", "/api/orders", `{"items":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func storedOrder() *domain.Order {
	return &domain.Order{
		ID:           7,
		Date:         "2024-05-01 12:30:00",
		TotalAmount:  10,
		RestaurantID: 1,
		Lines:        []domain.OrderLine{{ID: 1, OrderID: 7, FoodName: "Burger", Quantity: 2, UnitPrice: 5}},
	}
}

func TestGetOrderHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t, false)
		f.orders.On("GetOrder", 7).Return(storedOrder(), nil).Once()

		w := f.do("GET", "/api/orders/7", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "/api/orders/7/qrcode", resp["qr_code"])
		assert.Equal(t, 10.0, resp["total_amount"])
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t, false)
		f.orders.On("GetOrder", 8).Return(nil, sql.ErrNoRows).Once()

		w := f.do("GET", "/api/orders/8", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetOrderQRCodeHandler(t *testing.T) {
	f := newFixture(t, false)
	f.orders.On("GetOrder", 7).Return(storedOrder(), nil).Once()
	f.qr.On("Generate", 7).Return([]byte("\x89PNG"), nil).Once()

	w := f.do("GET", "/api/orders/7/qrcode", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, []byte("\x89PNG"), w.Body.Bytes())
}

func TestReorderHandler(t *testing.T) {
	repriced := burger
	repriced.Price = 6

	t.Run("returns basket", func(t *testing.T) {
		f := newFixture(t, false)
		f.orders.On("GetOrder", 7).Return(storedOrder(), nil).Once()
		f.catalog.On("FindFoodByName", "Burger").Return(&repriced, nil).Once()

		w := f.do("POST", "/api/orders/7/reorder", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Items []domain.BasketLine `json:"items"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, []domain.BasketLine{{Food: repriced, Quantity: 2}}, resp.Items)
	})

	t.Run("places basket", func(t *testing.T) {
		f := newFixture(t, false)
		f.orders.On("GetOrder", 7).Return(storedOrder(), nil).Once()
		f.catalog.On("FindFoodByName", "Burger").Return(&repriced, nil).Once()
		f.placer.On("PlaceOrder", mock.Anything, []domain.BasketLine{{Food: repriced, Quantity: 2}}).
			Return(service.Outcome{Placed: []service.PlacedOrder{{RestaurantID: 1, Total: 12, Path: domain.PathRemote}}}, nil).Once()

		w := f.do("POST", "/api/orders/7/reorder?place=true", "")

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newFixture(t, false)
		f.orders.On("GetOrder", 9).Return(nil, sql.ErrNoRows).Once()

		w := f.do("POST", "/api/orders/9/reorder", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOrderListHandlers(t *testing.T) {
	summaries := []domain.OrderSummary{{ID: 7, Date: "2024-05-01 12:30:00", TotalAmount: 10, RestaurantID: 1, ItemsDescription: "Burger x2"}}

	t.Run("history", func(t *testing.T) {
		f := newFixture(t, false)
		f.orders.On("ListOrders").Return(summaries, nil).Once()

		w := f.do("GET", "/api/orders", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var got []domain.OrderSummary
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, summaries, got)
	})

	t.Run("restaurant orders", func(t *testing.T) {
		f := newFixture(t, false)
		f.orders.On("ListRestaurantOrders", 2).Return(nil, nil).Once()

		w := f.do("GET", "/api/restaurants/2/orders", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestLiveBoardHandler(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		f := newFixture(t, false)

		w := f.do("GET", "/api/restaurants/1/orders/live", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("board", func(t *testing.T) {
		f := newFixture(t, true)
		f.board.On("Board", mock.Anything, 1).Return(&domain.Board{RestaurantID: 1, OrderCount: 2, Revenue: 22}, nil).Once()

		w := f.do("GET", "/api/restaurants/1/orders/live", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var board domain.Board
		require.NoError(t, json.NewDecoder(w.Body).Decode(&board))
		assert.Equal(t, int64(2), board.OrderCount)
	})

	t.Run("redis down", func(t *testing.T) {
		f := newFixture(t, true)
		f.board.On("Board", mock.Anything, 1).Return(nil, errors.New("connection refused")).Once()

		w := f.do("GET", "/api/restaurants/1/orders/live", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestClearHandlers(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		method   string
		err      error
		wantCode int
	}{
		{name: "clear orders", target: "/api/orders", method: "ClearOrders", wantCode: http.StatusNoContent},
		{name: "clear all", target: "/api/admin/data", method: "ClearAll", wantCode: http.StatusNoContent},
		{name: "clear fails", target: "/api/admin/data", method: "ClearAll", err: errors.New("locked"), wantCode: http.StatusInternalServerError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t, false)
			f.orders.On(testCase.method).Return(testCase.err).Once()

			w := f.do("DELETE", testCase.target, "")

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestHealthAndCORS(t *testing.T) {
	f := newFixture(t, false)
	handler := httpapi.NewRouter(httpapi.NewHandler(nil, nil, nil, nil, nil))

	w := f.do("GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest("OPTIONS", "/api/orders", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
