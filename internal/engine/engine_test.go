package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"brewbite-pos/internal/database"
	"brewbite-pos/internal/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestEngine builds an Engine over a fresh in-memory database. The
// shared-cache DSN keyed by test name keeps the database alive across
// pooled connections without leaking between tests.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return New(db, zaptest.NewLogger(t))
}

func seedSupplier(t *testing.T, e *Engine) *models.User {
	t.Helper()
	supplier, err := e.RegisterUser(context.Background(), RegisterUserInput{
		Username:         "freshfarms",
		Password:         "secret123",
		Contact:          "0123456789",
		Email:            "orders@freshfarms.test",
		RegistrationType: RegistrationSupplier,
		CompanyName:      "Fresh Farms",
		CompanyCity:      "Leeds",
		CompanyCategory:  "Food",
	})
	require.NoError(t, err)
	return supplier
}

func countItems(t *testing.T, e *Engine) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&models.InventoryItem{}).Count(&n).Error)
	return n
}

func countExpenses(t *testing.T, e *Engine) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&models.Expense{}).Count(&n).Error)
	return n
}

func countSales(t *testing.T, e *Engine) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&models.Sale{}).Count(&n).Error)
	return n
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}
