package storage

import "fmt"

// orders starts without restaurant_id; older ledgers were created that way
// and the column is added by EnsureSchema.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS food (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		restaurant_id INTEGER REFERENCES restaurants(id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		date TEXT NOT NULL,
		total_amount NUMERIC(10,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id SERIAL PRIMARY KEY,
		order_id INTEGER REFERENCES orders(id),
		food_name TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price NUMERIC(10,2) NOT NULL
	)`,
}

const (
	restaurantColumnExists = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_schema = current_schema()
				AND table_name = 'orders'
				AND column_name = 'restaurant_id'
		)`
	addRestaurantColumn = "ALTER TABLE orders ADD COLUMN restaurant_id INTEGER REFERENCES restaurants(id)"
)

// EnsureSchema creates missing tables and adds orders.restaurant_id when an
// older ledger lacks it. Running it again changes nothing.
func (r *PostgresRepository) EnsureSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}

	var exists bool
	if err := r.DB.QueryRow(restaurantColumnExists).Scan(&exists); err != nil {
		return fmt.Errorf("check orders.restaurant_id: %w", err)
	}
	if exists {
		return nil
	}
	if _, err := r.DB.Exec(addRestaurantColumn); err != nil {
		return fmt.Errorf("ensure schema `%s`: %w", addRestaurantColumn, err)
	}
	return nil
}
