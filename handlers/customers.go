package handlers

import (
	"net/http"

	"restaurant-pos/services"

	"github.com/gin-gonic/gin"
)

type CustomerRequest struct {
	Name       string  `json:"name" binding:"required"`
	Contact    string  `json:"contact" binding:"required"`
	Notes      string  `json:"notes"`
	VisitCount int     `json:"visit_count" binding:"gte=0"`
	TotalSpent float64 `json:"total_spent" binding:"gte=0"`
}

// ListCustomers returns customers, optionally searched with ?q=
func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.Customers.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(customers), "customers": customers})
}

// SaveCustomer creates or edits the customer with the given contact
func (h *Handler) SaveCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer, err := h.Customers.Save(c.Request.Context(), services.CustomerInput{
		Name:       req.Name,
		Contact:    req.Contact,
		Notes:      req.Notes,
		VisitCount: req.VisitCount,
		TotalSpent: req.TotalSpent,
	})
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer saved", "customer": customer})
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	if err := h.Customers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
