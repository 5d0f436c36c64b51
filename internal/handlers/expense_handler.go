package handlers

import (
	"net/http"
	"strconv"
	"time"

	"brewbite-pos/internal/engine"

	"github.com/gin-gonic/gin"
)

type expenseRequest struct {
	ExpenseDate string  `json:"expense_date" binding:"required"` // YYYY-MM-DD
	Category    string  `json:"category" binding:"required"`
	SupplierID  *uint   `json:"supplier_id"`
	ExpenseName string  `json:"expense_name" binding:"required"`
	TotalItems  int     `json:"total_items"`
	UnitCost    float64 `json:"unit_cost"`
}

// AddExpense records a purchase; the engine mirrors it into stock.
func (h *Handler) AddExpense(c *gin.Context) {
	var input expenseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	date, err := time.Parse("2006-01-02", input.ExpenseDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expense_date must be YYYY-MM-DD"})
		return
	}

	expense, err := h.engine.AddExpense(c.Request.Context(), engine.ExpenseInput{
		Date:       date,
		Category:   input.Category,
		SupplierID: input.SupplierID,
		Name:       input.ExpenseName,
		TotalItems: input.TotalItems,
		UnitCost:   input.UnitCost,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// GetExpenses lists all expenses with suppliers.
func (h *Handler) GetExpenses(c *gin.Context) {
	expenses, err := h.engine.ListExpenses(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// UpdateExpense changes a single expense field and cascades the change
// into inventory where applicable.
func (h *Handler) UpdateExpense(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID"})
		return
	}

	var req fieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	upd, err := engine.ExpenseUpdateForField(req.Field, req.Value)
	if err != nil {
		h.writeError(c, err)
		return
	}

	expense, err := h.engine.UpdateExpense(c.Request.Context(), uint(id), upd)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// DeleteExpense removes a purchase and its contribution to stock.
func (h *Handler) DeleteExpense(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID"})
		return
	}

	if err := h.engine.DeleteExpense(c.Request.Context(), uint(id)); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
