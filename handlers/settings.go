package handlers

import (
	"net/http"

	"restaurant-pos/services"

	"github.com/gin-gonic/gin"
)

type SettingsRequest struct {
	RestaurantName     string  `json:"restaurant_name" binding:"required"`
	Address            string  `json:"address"`
	Phone              string  `json:"phone"`
	Email              string  `json:"email" binding:"omitempty,email"`
	TaxRate            float64 `json:"tax_rate" binding:"gte=0,lte=100"`
	LogoURL            *string `json:"logo_url"`
	ShowLogo           bool    `json:"show_logo"`
	ShowTaxDetails     bool    `json:"show_tax_details"`
	ReceiptFooter      string  `json:"receipt_footer"`
	PrintAutomatically bool    `json:"print_automatically"`
}

// GetSettings returns restaurant and receipt settings (owner only)
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.Settings.Get(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings replaces every setting with the request body
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	settings, err := h.Settings.Update(c.Request.Context(), services.SettingsInput{
		RestaurantName:     req.RestaurantName,
		Address:            req.Address,
		Phone:              req.Phone,
		Email:              req.Email,
		TaxRate:            req.TaxRate,
		LogoURL:            req.LogoURL,
		ShowLogo:           req.ShowLogo,
		ShowTaxDetails:     req.ShowTaxDetails,
		ReceiptFooter:      req.ReceiptFooter,
		PrintAutomatically: req.PrintAutomatically,
	})
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings saved", "settings": settings})
}
