package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleOwner          UserRole = "owner"
	RoleWarehouseAdmin UserRole = "warehouse_admin"
	RoleCashier        UserRole = "cashier"
)

// Valid reports whether r is a known staff role.
func (r UserRole) Valid() bool {
	switch r {
	case RoleOwner, RoleWarehouseAdmin, RoleCashier:
		return true
	}
	return false
}

// User is a staff member who can sign in to the till.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	FirstName    string    `json:"first_name" gorm:"not null"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null"`
	IsActive     bool      `json:"is_active" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
