package handlers

import (
	"net/http"

	"restaurant-pos/units"

	"github.com/gin-gonic/gin"
)

type ConvertRequest struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from" binding:"required"`
	To     string  `json:"to" binding:"required"`
}

// ListUnits documents the unit vocabulary and the conversion table
func ListUnits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"units":   units.Common,
		"factors": units.Factors(),
	})
}

// ConvertUnits normalizes both units and converts amount between them.
// A pair with no registered factor is reported with convertible=false.
func ConvertUnits(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from, to := units.Normalize(req.From), units.Normalize(req.To)
	resp := gin.H{
		"amount":      req.Amount,
		"from":        from,
		"to":          to,
		"convertible": false,
	}
	if converted, ok := units.Convert(req.Amount, from, to); ok {
		resp["convertible"] = true
		resp["result"] = converted
	}
	c.JSON(http.StatusOK, resp)
}
