package handlers

import (
	"errors"
	"net/http"

	"restaurant-pos/middleware"
	"restaurant-pos/services"
	"restaurant-pos/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler holds the services every route needs.
type Handler struct {
	Auth      *middleware.Auth
	Users     *services.AuthService
	Menu      *services.MenuService
	Inventory *services.InventoryService
	Orders    *services.OrderService
	Customers *services.CustomerService
	Settings  *services.SettingsService
	Logger    *zap.Logger
}

// respondError maps service and store errors onto HTTP statuses.
func (h *Handler) respondError(c *gin.Context, err error, notFound string) {
	switch {
	case services.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, services.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is disabled"})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case errors.Is(err, store.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "Order number already in use, please retry"})
	default:
		_ = c.Error(err)
		h.Logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// Health reports liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Restaurant POS API",
		"version": "1.0.0",
	})
}
