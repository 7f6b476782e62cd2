package storage

import (
	"database/sql"
	"fmt"
	"time"

	"food-ordering/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB  *sql.DB
	Now func() time.Time
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db, Now: time.Now}
}

// nullableID stores ids that were never resolved as NULL so the foreign key
// on orders.restaurant_id holds.
func nullableID(id int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(id), Valid: id > 0}
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"INSERT INTO restaurants (name) VALUES ($1) RETURNING id",
		rest.Name,
	).Scan(&rest.ID)
}

// FindRestaurantByName matches names case-insensitively and returns the
// oldest row when several match.
func (r *PostgresRepository) FindRestaurantByName(name string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(
		"SELECT id, name FROM restaurants WHERE LOWER(name) = LOWER($1) ORDER BY id LIMIT 1",
		name,
	).Scan(&rest.ID, &rest.Name)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query("SELECT id, name FROM restaurants ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	if err := r.DB.QueryRow("SELECT id, name FROM restaurants WHERE id = $1", id).
		Scan(&rest.ID, &rest.Name); err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"UPDATE restaurants SET name = $1 WHERE id = $2 RETURNING id, name",
		rest.Name, rest.ID,
	).Scan(&rest.ID, &rest.Name)
}

func (r *PostgresRepository) CountRestaurantOrders(id int) (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM orders WHERE restaurant_id = $1", id).Scan(&count)
	return count, err
}

// DeleteRestaurant removes the restaurant's menu and then the restaurant in
// one transaction. Orders are not touched; callers refuse the delete while
// orders still reference the restaurant.
func (r *PostgresRepository) DeleteRestaurant(id int) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM food WHERE restaurant_id = $1", id); err != nil {
		return 0, err
	}
	result, err := tx.Exec("DELETE FROM restaurants WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return affected, tx.Commit()
}

func (r *PostgresRepository) CreateFood(food *domain.FoodItem) error {
	return r.DB.QueryRow(
		"INSERT INTO food (name, type, price, restaurant_id) VALUES ($1, $2, $3, $4) RETURNING id",
		food.Name, string(food.Category), food.Price, food.RestaurantID,
	).Scan(&food.ID)
}

func (r *PostgresRepository) ListFood(restaurantID int) ([]domain.FoodItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, type, price, restaurant_id
		FROM food
		WHERE restaurant_id = $1
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.FoodItem{}
	for rows.Next() {
		item, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetFood(restaurantID, foodID int) (*domain.FoodItem, error) {
	item, err := scanFood(r.DB.QueryRow(
		"SELECT id, name, type, price, restaurant_id FROM food WHERE id = $1 AND restaurant_id = $2",
		foodID, restaurantID))
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindFoodByName returns the first catalog item with exactly this name.
func (r *PostgresRepository) FindFoodByName(name string) (*domain.FoodItem, error) {
	item, err := scanFood(r.DB.QueryRow(
		"SELECT id, name, type, price, restaurant_id FROM food WHERE name = $1 ORDER BY id LIMIT 1",
		name))
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateFood(food *domain.FoodItem) (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE food
		SET name = $1, type = $2, price = $3
		WHERE id = $4 AND restaurant_id = $5`,
		food.Name, string(food.Category), food.Price, food.ID, food.RestaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteFood(restaurantID, foodID int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM food WHERE id = $1 AND restaurant_id = $2", foodID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFood(row rowScanner) (domain.FoodItem, error) {
	var (
		item         domain.FoodItem
		category     string
		restaurantID sql.NullInt64
	)
	if err := row.Scan(&item.ID, &item.Name, &category, &item.Price, &restaurantID); err != nil {
		return domain.FoodItem{}, err
	}
	item.Category = domain.Category(category)
	item.RestaurantID = int(restaurantID.Int64)
	return item, nil
}

// CreateOrder writes the order header and all of its lines in one
// transaction. Lines are streamed with COPY; nothing is kept on failure.
func (r *PostgresRepository) CreateOrder(restaurantID int, total float64, lines []domain.OrderLine) (int, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var orderID int
	if err := tx.QueryRow(
		"INSERT INTO orders (date, total_amount, restaurant_id) VALUES ($1, $2, $3) RETURNING id",
		r.Now().Format(domain.DateLayout), total, nullableID(restaurantID),
	).Scan(&orderID); err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	stmt, err := tx.Prepare(pq.CopyIn("order_items", "order_id", "food_name", "quantity", "price"))
	if err != nil {
		return 0, fmt.Errorf("prepare items: %w", err)
	}
	for _, line := range lines {
		if _, err := stmt.Exec(orderID, line.FoodName, line.Quantity, line.UnitPrice); err != nil {
			stmt.Close()
			return 0, fmt.Errorf("insert item %q: %w", line.FoodName, err)
		}
	}
	if _, err := stmt.Exec(); err != nil {
		stmt.Close()
		return 0, fmt.Errorf("flush items: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return 0, fmt.Errorf("close items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return orderID, nil
}

const orderSummaryQuery = `
	SELECT o.id, o.date, o.total_amount, COALESCE(o.restaurant_id, 0),
		COALESCE(string_agg(oi.food_name || ' x' || oi.quantity, ', ' ORDER BY oi.id), '')
	FROM orders o
	LEFT JOIN order_items oi ON oi.order_id = o.id`

func (r *PostgresRepository) ListOrders() ([]domain.OrderSummary, error) {
	return r.queryOrderSummaries(orderSummaryQuery + `
	GROUP BY o.id
	ORDER BY o.id DESC`)
}

func (r *PostgresRepository) ListRestaurantOrders(restaurantID int) ([]domain.OrderSummary, error) {
	return r.queryOrderSummaries(orderSummaryQuery+`
	WHERE o.restaurant_id = $1
	GROUP BY o.id
	ORDER BY o.id DESC`, restaurantID)
}

func (r *PostgresRepository) queryOrderSummaries(query string, args ...any) ([]domain.OrderSummary, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []domain.OrderSummary{}
	for rows.Next() {
		var s domain.OrderSummary
		if err := rows.Scan(&s.ID, &s.Date, &s.TotalAmount, &s.RestaurantID, &s.ItemsDescription); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	if err := r.DB.QueryRow(`
		SELECT id, date, total_amount, COALESCE(restaurant_id, 0)
		FROM orders WHERE id = $1`, orderID).
		Scan(&order.ID, &order.Date, &order.TotalAmount, &order.RestaurantID); err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT id, order_id, food_name, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Lines = []domain.OrderLine{}
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.FoodName, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, err
		}
		order.Lines = append(order.Lines, line)
	}
	return &order, rows.Err()
}

// ClearOrders empties the ledger.
func (r *PostgresRepository) ClearOrders() error {
	return r.execInTx(
		"DELETE FROM order_items",
		"DELETE FROM orders",
	)
}

// ClearAll empties the ledger and the catalog, children first.
func (r *PostgresRepository) ClearAll() error {
	return r.execInTx(
		"DELETE FROM order_items",
		"DELETE FROM orders",
		"DELETE FROM food",
		"DELETE FROM restaurants",
	)
}

func (r *PostgresRepository) execInTx(statements ...string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("exec `%s`: %w", stmt, err)
		}
	}
	return tx.Commit()
}
