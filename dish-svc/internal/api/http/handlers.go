package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"food-ordering/internal/domain"
	"food-ordering/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
	Orders  service.OrderServiceInterface
	Placer  service.Placer
	Board   service.BoardReader
	Logger  *zap.Logger
}

func NewHandler(catalog service.CatalogServiceInterface, orders service.OrderServiceInterface, placer service.Placer, board service.BoardReader, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Catalog: catalog,
		Orders:  orders,
		Placer:  placer,
		Board:   board,
		Logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}", h.deleteRestaurant).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{id}/orders", h.getRestaurantOrders).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/orders/live", h.getLiveBoard).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/food", h.createFood).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/food", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/food/{foodId}", h.updateFood).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/food/{foodId}", h.deleteFood).Methods("DELETE")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders", h.clearOrders).Methods("DELETE")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{id}/reorder", h.reorder).Methods("POST")

	r.HandleFunc("/api/admin/data", h.clearAll).Methods("DELETE")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto status codes.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrEmptyBasket),
		errors.Is(err, service.ErrInvalidBasketLine),
		errors.Is(err, service.ErrInvalidRestaurant),
		errors.Is(err, service.ErrInvalidFood):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrRestaurantHasOrders):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.Logger.Error("request failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	return id, err == nil
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "dish-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type restaurantRequest struct {
	Name string `json:"name"`
}

// createRestaurant returns the existing restaurant when the name is already
// taken in any letter case.
func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var req restaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest, err := h.Catalog.GetOrCreateRestaurant(req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants()
	if err != nil {
		h.writeError(w, err)
		return
	}
	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}
	rest, err := h.Catalog.GetRestaurant(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}
	var req restaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest, err := h.Catalog.RenameRestaurant(id, req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}
	if err := h.Catalog.DeleteRestaurant(id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}
	orders, err := h.Orders.RestaurantOrders(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.OrderSummary{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getLiveBoard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}
	if h.Board == nil {
		http.Error(w, "Live board is not configured", http.StatusServiceUnavailable)
		return
	}
	board, err := h.Board.Board(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (h *Handler) createFood(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := pathID(r, "restaurantId")
	if !ok {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}
	var food domain.FoodItem
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	food.RestaurantID = restaurantID
	if err := h.Catalog.AddFood(&food); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, food)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := pathID(r, "restaurantId")
	if !ok {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}
	menu, err := h.Catalog.Menu(restaurantID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if menu == nil {
		menu = []domain.FoodItem{}
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) updateFood(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := pathID(r, "restaurantId")
	if !ok {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}
	foodID, ok := pathID(r, "foodId")
	if !ok {
		http.Error(w, "Invalid food id", http.StatusBadRequest)
		return
	}
	var food domain.FoodItem
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	food.ID = foodID
	food.RestaurantID = restaurantID
	if err := h.Catalog.UpdateFood(&food); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, food)
}

func (h *Handler) deleteFood(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := pathID(r, "restaurantId")
	if !ok {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}
	foodID, ok := pathID(r, "foodId")
	if !ok {
		http.Error(w, "Invalid food id", http.StatusBadRequest)
		return
	}
	if err := h.Catalog.DeleteFood(restaurantID, foodID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type placeOrderRequest struct {
	Items []domain.BasketLine `json:"items"`
}

type placeOrderResponse struct {
	service.Outcome
	OrdersCreated int      `json:"orders_created"`
	Receipts      []string `json:"receipts,omitempty"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	h.place(w, r, req.Items)
}

// place reports 201 when at least one (sub-)order was stored, listing any
// that were lost, and 500 when none were.
func (h *Handler) place(w http.ResponseWriter, r *http.Request, basket []domain.BasketLine) {
	outcome, err := h.Placer.PlaceOrder(r.Context(), basket)
	if errors.Is(err, service.ErrEmptyBasket) || errors.Is(err, service.ErrInvalidBasketLine) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := placeOrderResponse{Outcome: outcome, OrdersCreated: outcome.OrdersCreated()}
	for _, placed := range outcome.Placed {
		if placed.OrderID > 0 {
			resp.Receipts = append(resp.Receipts, h.Orders.QRLink(placed.OrderID))
		}
	}

	if err != nil && outcome.OrdersCreated() == 0 {
		h.Logger.Error("order placement failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}
	if err != nil {
		h.Logger.Warn("order placed partially", zap.Int("failed", len(outcome.Failed)), zap.Error(err))
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.History()
	if err != nil {
		h.writeError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.OrderSummary{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) clearOrders(w http.ResponseWriter, r *http.Request) {
	if err := h.Orders.ClearOrders(); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type orderResponse struct {
	*domain.Order
	QRCode string `json:"qr_code"`
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}
	order, err := h.Orders.Get(orderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orderResponse{Order: order, QRCode: h.Orders.QRLink(order.ID)})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}
	png, err := h.Orders.QRCode(orderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// reorder rebuilds the basket of a past order. With ?place=true the basket
// is placed right away.
func (h *Handler) reorder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}
	basket, err := h.Orders.Reorder(orderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if place, _ := strconv.ParseBool(r.URL.Query().Get("place")); place {
		h.place(w, r, basket)
		return
	}
	writeJSON(w, http.StatusOK, placeOrderRequest{Items: basket})
}

func (h *Handler) clearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.Orders.ClearAll(); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
