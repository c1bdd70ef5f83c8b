package handlers

import (
	"net/http"

	"restaurant-pos/middleware"
	"restaurant-pos/models"
	"restaurant-pos/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PlaceOrderRequest struct {
	Items []struct {
		MenuItemID string `json:"menu_item_id" binding:"required"`
		Quantity   int    `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1,dive"`
	PaymentMethod   models.PaymentMethod `json:"payment_method" binding:"required,oneof=cash card"`
	AmountPaid      float64              `json:"amount_paid" binding:"gte=0"`
	CustomerName    string               `json:"customer_name"`
	CustomerContact string               `json:"customer_contact"`
}

// PlaceOrder checks out a cart for the signed-in cashier
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkout := services.CheckoutRequest{
		PaymentMethod:   req.PaymentMethod,
		AmountPaid:      req.AmountPaid,
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
	}
	for _, it := range req.Items {
		checkout.Items = append(checkout.Items, services.CheckoutLine{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
	}

	res, err := h.Orders.Checkout(c.Request.Context(), middleware.GetUserID(c), checkout)
	if err != nil {
		h.respondError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   res.Order,
		"change":  res.Change,
	})
}

// ListOrders returns orders newest first with a small sales summary.
// Optional filters: ?cashier_id= and ?payment_method=
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.Orders.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "")
		return
	}

	cashierID := c.Query("cashier_id")
	method := models.PaymentMethod(c.Query("payment_method"))
	filtered := make([]models.Order, 0, len(orders))
	byMethod := map[string]int{}
	revenue := decimal.Zero
	for _, o := range orders {
		if cashierID != "" && o.CashierID != cashierID {
			continue
		}
		if method != "" && o.PaymentMethod != method {
			continue
		}
		filtered = append(filtered, o)
		byMethod[string(o.PaymentMethod)]++
		revenue = revenue.Add(decimal.NewFromFloat(o.Total))
	}

	c.JSON(http.StatusOK, gin.H{
		"count":             len(filtered),
		"total_revenue":     revenue.InexactFloat64(),
		"by_payment_method": byMethod,
		"orders":            filtered,
	})
}

// GetOrder returns a single order as receipt data
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.Orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
