//go:build integration
// +build integration

package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"food-ordering/internal/domain"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupLedger(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("food_ordering"),
		postgres.WithUsername("ledger"),
		postgres.WithPassword("ledger"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { pgContainer.Terminate(ctx) })

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Ping())
	return db
}

func TestIntegration_LedgerRoundTrip(t *testing.T) {
	db := setupLedger(t)

	// a ledger created before orders carried a restaurant
	_, err := db.Exec("CREATE TABLE restaurants (id SERIAL PRIMARY KEY, name TEXT NOT NULL)")
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE orders (id SERIAL PRIMARY KEY, date TEXT NOT NULL, total_amount NUMERIC(10,2) NOT NULL)")
	require.NoError(t, err)

	repo := NewPostgresRepository(db)
	require.NoError(t, repo.EnsureSchema())
	require.NoError(t, repo.EnsureSchema())

	rest := &domain.Restaurant{Name: "Burger Barn"}
	require.NoError(t, repo.CreateRestaurant(rest))
	burger := &domain.FoodItem{Name: "Burger", Category: domain.CategoryMainCourse, Price: 5, RestaurantID: rest.ID}
	require.NoError(t, repo.CreateFood(burger))

	found, err := repo.FindRestaurantByName("BURGER BARN")
	require.NoError(t, err)
	assert.Equal(t, rest.ID, found.ID)

	lines := []domain.OrderLine{
		{FoodName: "Burger", Quantity: 2, UnitPrice: 5},
		{FoodName: "Coke", Quantity: 1, UnitPrice: 2},
	}
	orderID, err := repo.CreateOrder(rest.ID, 12, lines)
	require.NoError(t, err)

	order, err := repo.GetOrder(orderID)
	require.NoError(t, err)
	assert.Equal(t, 12.0, order.TotalAmount)
	assert.Equal(t, rest.ID, order.RestaurantID)
	require.Len(t, order.Lines, 2)
	assert.Equal(t, "Burger", order.Lines[0].FoodName)
	assert.Equal(t, 2, order.Lines[0].Quantity)
	assert.Equal(t, 5.0, order.Lines[0].UnitPrice)
	_, err = time.ParseInLocation(domain.DateLayout, order.Date, time.Local)
	assert.NoError(t, err)

	history, err := repo.ListOrders()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Burger x2, Coke x1", history[0].ItemsDescription)

	count, err := repo.CountRestaurantOrders(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.ClearAll())
	history, err = repo.ListOrders()
	require.NoError(t, err)
	assert.Empty(t, history)
}
