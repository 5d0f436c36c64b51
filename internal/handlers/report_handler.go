package handlers

import (
	"net/http"

	"brewbite-pos/internal/database"

	"github.com/gin-gonic/gin"
)

// GetFinancialReport bundles every aggregation the dashboard renders.
func (h *Handler) GetFinancialReport(c *gin.Context) {
	salesPerDay, err := database.SalesPerDay(h.db)
	if err != nil {
		h.writeError(c, err)
		return
	}
	salesByCategory, err := database.SalesByCategory(h.db)
	if err != nil {
		h.writeError(c, err)
		return
	}
	expensesPerDay, err := database.ExpensesPerDay(h.db)
	if err != nil {
		h.writeError(c, err)
		return
	}
	summary, err := database.ExpenseVsSales(h.db)
	if err != nil {
		h.writeError(c, err)
		return
	}
	bySupplier, err := database.ExpensesBySupplier(h.db)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sales_per_day":        salesPerDay,
		"sales_by_category":    salesByCategory,
		"expenses_per_day":     expensesPerDay,
		"expense_vs_sales":     summary,
		"expenses_by_supplier": bySupplier,
	})
}

// GetStockValuation reports current stock value grouped by category.
func (h *Handler) GetStockValuation(c *gin.Context) {
	valuation, err := database.StockValuation(h.db)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, valuation)
}
