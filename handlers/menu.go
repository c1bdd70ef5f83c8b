package handlers

import (
	"net/http"
	"strconv"

	"restaurant-pos/models"
	"restaurant-pos/services"

	"github.com/gin-gonic/gin"
)

// ── Menu ─────────────────────────────────────────────────────────────────────

type MenuItemRequest struct {
	Name        string               `json:"name" binding:"required"`
	Price       float64              `json:"price" binding:"gte=0"`
	Category    models.Category      `json:"category" binding:"required,oneof=main_course side_dish beverage dessert"`
	ImageURL    *string              `json:"image_url"`
	Description *string              `json:"description"`
	IsAvailable *bool                `json:"is_available"`
	Recipe      []models.RecipeEntry `json:"recipe"`
}

func (r MenuItemRequest) input() services.MenuInput {
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	return services.MenuInput{
		Name:        r.Name,
		Price:       r.Price,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		IsAvailable: available,
		Recipe:      r.Recipe,
	}
}

// ListMenu returns menu items, optionally filtered by ?category= and ?available=true
func (h *Handler) ListMenu(c *gin.Context) {
	filter := services.MenuFilter{Category: models.Category(c.Query("category"))}
	if v := c.Query("available"); v != "" {
		only, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "available must be true or false"})
			return
		}
		filter.AvailableOnly = only
	}

	items, err := h.Menu.List(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu_items": items})
}

// ListCategories returns the categories in use plus the full vocabulary
func (h *Handler) ListCategories(c *gin.Context) {
	used, err := h.Menu.Categories(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": used, "all": models.Categories})
}

func (h *Handler) GetMenuItem(c *gin.Context) {
	item, err := h.Menu.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Menu item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

// CreateMenuItem adds a menu item; recipe entries are cleaned before saving
func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.Menu.Create(c.Request.Context(), req.input())
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "menu_item": item})
}

func (h *Handler) UpdateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.Menu.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		h.respondError(c, err, "Menu item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "menu_item": item})
}

func (h *Handler) DeleteMenuItem(c *gin.Context) {
	if err := h.Menu.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "Menu item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
