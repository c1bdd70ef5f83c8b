package routes

import (
	"restaurant-pos/handlers"
	"restaurant-pos/middleware"
	"restaurant-pos/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/health", handlers.Health)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", h.Login)

		// Unit vocabulary and conversion table
		public.GET("/units", handlers.ListUnits)
		public.POST("/units/convert", handlers.ConvertUnits)
	}

	// ── Any signed-in staff ────────────────────────────────────────
	staff := r.Group("/api")
	staff.Use(h.Auth.Required())
	{
		staff.GET("/profile", h.GetProfile)

		staff.GET("/menu", h.ListMenu)
		staff.GET("/menu/categories", h.ListCategories)
		staff.GET("/menu/:id", h.GetMenuItem)

		staff.POST("/orders", h.PlaceOrder)
		staff.GET("/orders", h.ListOrders)
		staff.GET("/orders/:id", h.GetOrder)
	}

	// ── Owner and warehouse admin: stock and menu upkeep ───────────
	stock := r.Group("/api")
	stock.Use(h.Auth.Required(), middleware.RoleRequired(models.RoleOwner, models.RoleWarehouseAdmin))
	{
		stock.POST("/menu", h.CreateMenuItem)
		stock.PUT("/menu/:id", h.UpdateMenuItem)
		stock.DELETE("/menu/:id", h.DeleteMenuItem)

		stock.GET("/inventory", h.ListInventory)
		stock.GET("/inventory/low-stock", h.LowStock)
		stock.GET("/inventory/:id", h.GetInventoryItem)
		stock.POST("/inventory", h.CreateInventoryItem)
		stock.PUT("/inventory/:id", h.UpdateInventoryItem)
		stock.DELETE("/inventory/:id", h.DeleteInventoryItem)
	}

	// ── Owner only ─────────────────────────────────────────────────
	owner := r.Group("/api")
	owner.Use(h.Auth.Required(), middleware.RoleRequired(models.RoleOwner))
	{
		owner.GET("/customers", h.ListCustomers)
		owner.PUT("/customers", h.SaveCustomer)
		owner.DELETE("/customers/:id", h.DeleteCustomer)

		owner.GET("/users", h.ListUsers)
		owner.POST("/users", h.CreateUser)
		owner.PUT("/users/:id/active", h.SetUserActive)
		owner.DELETE("/users/:id", h.DeleteUser)

		owner.GET("/settings", h.GetSettings)
		owner.PUT("/settings", h.UpdateSettings)
	}
}
