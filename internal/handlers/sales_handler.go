package handlers

import (
	"net/http"
	"strconv"

	"brewbite-pos/internal/engine"

	"github.com/gin-gonic/gin"
)

// salesRequest is what the checkout screen sends: one batch of lines.
type salesRequest struct {
	Lines []struct {
		ItemID    uint    `json:"item_id"`
		Quantity  int     `json:"quantity"`
		UnitPrice float64 `json:"unit_price"`
	} `json:"lines" binding:"required"`
}

// RegisterSales applies a sales batch; all lines commit or none do.
func (h *Handler) RegisterSales(c *gin.Context) {
	var req salesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	lines := make([]engine.SaleLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, engine.SaleLine{
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	sales, err := h.engine.RegisterSales(c.Request.Context(), lines)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var total float64
	for _, s := range sales {
		total += s.TotalCost
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Sales registered successfully",
		"count":   len(sales),
		"total":   total,
		"sales":   sales,
	})
}

// GetSales lists sales records joined with item names.
func (h *Handler) GetSales(c *gin.Context) {
	records, err := h.engine.ListSales(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// UpdateSalesRecord changes the quantity or price of one sale.
func (h *Handler) UpdateSalesRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sales ID"})
		return
	}

	var req fieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	upd, err := engine.SaleUpdateForField(req.Field, req.Value)
	if err != nil {
		h.writeError(c, err)
		return
	}

	sale, err := h.engine.UpdateSalesRecord(c.Request.Context(), uint(id), upd)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

// DeleteSalesRecord removes one sale row.
func (h *Handler) DeleteSalesRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sales ID"})
		return
	}

	if err := h.engine.DeleteSalesRecord(c.Request.Context(), uint(id)); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sales record deleted successfully"})
}
