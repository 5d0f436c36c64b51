package database

import (
	"fmt"
	"testing"
	"time"

	"brewbite-pos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func seedReportData(t *testing.T, db *gorm.DB) {
	t.Helper()
	supplier := models.User{
		Username: "freshfarms", PasswordHash: "x",
		RegistrationType: "supplier", CompanyName: "Fresh Farms",
	}
	require.NoError(t, db.Create(&supplier).Error)

	items := []models.InventoryItem{
		{ItemName: "Beans", Category: "Coffee", Quantity: 10, UnitCost: 8.0, SupplierID: &supplier.ID},
		{ItemName: "Earl Grey", Category: "Tea", Quantity: 50, UnitCost: 0.1, SupplierID: &supplier.ID},
		{ItemName: "Assam", Category: "Tea", Quantity: 20, UnitCost: 0.2, SupplierID: &supplier.ID},
	}
	require.NoError(t, db.Create(&items).Error)

	aug1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	aug2 := aug1.Add(24 * time.Hour)
	sales := []models.Sale{
		{ItemID: items[0].ID, QuantitySold: 2, UnitPrice: 3.0, TotalCost: 6.0, SaleDate: aug1},
		{ItemID: items[1].ID, QuantitySold: 5, UnitPrice: 2.0, TotalCost: 10.0, SaleDate: aug1},
		{ItemID: items[2].ID, QuantitySold: 1, UnitPrice: 2.0, TotalCost: 2.0, SaleDate: aug2},
	}
	require.NoError(t, db.Create(&sales).Error)

	expenses := []models.Expense{
		{ExpenseDate: aug1, Category: "Food", SupplierID: &supplier.ID, ExpenseName: "Beans", TotalItems: 10, UnitCost: 8.0, TotalCost: 80.0},
		{ExpenseDate: aug2, Category: "Cleaning", SupplierID: &supplier.ID, ExpenseName: "Bleach", TotalItems: 2, UnitCost: 2.5, TotalCost: 5.0},
	}
	require.NoError(t, db.Create(&expenses).Error)
}

func TestSalesPerDay(t *testing.T) {
	db := newTestDB(t)
	seedReportData(t, db)

	rows, err := SalesPerDay(db)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 16.0, rows[0].Total)
	assert.Equal(t, 2.0, rows[1].Total)
}

func TestSalesByCategory(t *testing.T) {
	db := newTestDB(t)
	seedReportData(t, db)

	rows, err := SalesByCategory(db)
	require.NoError(t, err)
	totals := map[string]float64{}
	for _, r := range rows {
		totals[r.Category] = r.Total
	}
	assert.Equal(t, 6.0, totals["Coffee"])
	assert.Equal(t, 12.0, totals["Tea"])
}

func TestExpenseVsSales(t *testing.T) {
	db := newTestDB(t)
	seedReportData(t, db)

	summary, err := ExpenseVsSales(db)
	require.NoError(t, err)
	assert.Equal(t, 18.0, summary.TotalSales)
	assert.Equal(t, 85.0, summary.TotalExpenses)
	assert.Equal(t, -67.0, summary.Difference)
}

func TestExpenseVsSalesEmptyDatabase(t *testing.T) {
	db := newTestDB(t)

	summary, err := ExpenseVsSales(db)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalSales)
	assert.Zero(t, summary.TotalExpenses)
}

func TestExpensesBySupplier(t *testing.T) {
	db := newTestDB(t)
	seedReportData(t, db)

	rows, err := ExpensesBySupplier(db)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, "Fresh Farms", r.Supplier)
	}
}

func TestStockValuation(t *testing.T) {
	db := newTestDB(t)
	seedReportData(t, db)

	valuation, err := StockValuation(db)
	require.NoError(t, err)
	require.Len(t, valuation.Categories, 2)

	assert.Equal(t, "Coffee", valuation.Categories[0].CategoryName)
	assert.Equal(t, 80.0, valuation.Categories[0].Subtotal)

	assert.Equal(t, "Tea", valuation.Categories[1].CategoryName)
	require.Len(t, valuation.Categories[1].Items, 2)
	assert.Equal(t, 9.0, valuation.Categories[1].Subtotal)

	assert.Equal(t, 89.0, valuation.GrandTotal)
}
