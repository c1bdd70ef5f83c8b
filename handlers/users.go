package handlers

import (
	"net/http"

	"restaurant-pos/middleware"
	"restaurant-pos/models"
	"restaurant-pos/services"

	"github.com/gin-gonic/gin"
)

type CreateUserRequest struct {
	Email     string          `json:"email" binding:"required,email"`
	Password  string          `json:"password" binding:"required,min=6"`
	FirstName string          `json:"first_name" binding:"required"`
	LastName  string          `json:"last_name"`
	Role      models.UserRole `json:"role" binding:"required"`
}

// ListUsers returns staff accounts, optionally filtered by ?role= (owner only)
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.Users(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	if role := models.UserRole(c.Query("role")); role != "" {
		filtered := users[:0]
		for _, u := range users {
			if u.Role == role {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.Users.CreateUser(c.Request.Context(), services.NewUser{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully", "user": userJSON(user)})
}

// SetUserActive enables or disables a staff account
func (h *Handler) SetUserActive(c *gin.Context) {
	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.Users.SetActive(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), *req.Active)
	if err != nil {
		h.respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account updated", "user": userJSON(user)})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.Users.DeleteUser(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		h.respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
