package handlers

import (
	"net/http"

	"restaurant-pos/services"

	"github.com/gin-gonic/gin"
)

type InventoryItemRequest struct {
	Name              string   `json:"name" binding:"required"`
	Quantity          float64  `json:"quantity" binding:"gte=0"`
	Unit              string   `json:"unit" binding:"required"`
	CostPrice         float64  `json:"cost_price" binding:"gte=0"`
	ThresholdQuantity *float64 `json:"threshold_quantity" binding:"omitempty,gte=0"`
}

func (r InventoryItemRequest) input() services.InventoryInput {
	return services.InventoryInput{
		Name:              r.Name,
		Quantity:          r.Quantity,
		Unit:              r.Unit,
		CostPrice:         r.CostPrice,
		ThresholdQuantity: r.ThresholdQuantity,
	}
}

func (h *Handler) ListInventory(c *gin.Context) {
	items, err := h.Inventory.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "inventory_items": items})
}

// LowStock lists items at or below their reorder threshold
func (h *Handler) LowStock(c *gin.Context) {
	items, err := h.Inventory.LowStock(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "inventory_items": items})
}

func (h *Handler) GetInventoryItem(c *gin.Context) {
	item, err := h.Inventory.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Inventory item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory_item": item})
}

func (h *Handler) CreateInventoryItem(c *gin.Context) {
	var req InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.Inventory.Create(c.Request.Context(), req.input())
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Inventory item added", "inventory_item": item})
}

func (h *Handler) UpdateInventoryItem(c *gin.Context) {
	var req InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.Inventory.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		h.respondError(c, err, "Inventory item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item updated", "inventory_item": item})
}

func (h *Handler) DeleteInventoryItem(c *gin.Context) {
	if err := h.Inventory.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "Inventory item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted"})
}
