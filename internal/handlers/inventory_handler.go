package handlers

import (
	"net/http"
	"strconv"

	"brewbite-pos/internal/engine"

	"github.com/gin-gonic/gin"
)

type inventoryRequest struct {
	ItemName   string  `json:"item_name" binding:"required"`
	Category   string  `json:"category" binding:"required"`
	Quantity   int     `json:"quantity"`
	UnitCost   float64 `json:"unit_cost"`
	SupplierID uint    `json:"supplier_id" binding:"required"`
}

// AddInventoryItem records stock entered directly; the engine creates the
// matching expense trail when none exists.
func (h *Handler) AddInventoryItem(c *gin.Context) {
	var input inventoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	item, err := h.engine.AddInventoryItem(c.Request.Context(), engine.InventoryInput{
		Name:       input.ItemName,
		Category:   input.Category,
		Quantity:   input.Quantity,
		UnitCost:   input.UnitCost,
		SupplierID: input.SupplierID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetInventory lists stock, optionally filtered with ?category=.
func (h *Handler) GetInventory(c *gin.Context) {
	items, err := h.engine.FetchInventory(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// UpdateInventoryItem changes a single stock field. No expense back-sync.
func (h *Handler) UpdateInventoryItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var req fieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	upd, err := engine.InventoryUpdateForField(req.Field, req.Value)
	if err != nil {
		h.writeError(c, err)
		return
	}

	item, err := h.engine.UpdateInventoryItem(c.Request.Context(), uint(id), upd)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteInventoryItem removes a stock row.
func (h *Handler) DeleteInventoryItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	if err := h.engine.DeleteInventoryItem(c.Request.Context(), uint(id)); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully"})
}
