package models

import "time"

// Customer is keyed by contact (phone) and accumulates visits across orders.
type Customer struct {
	ID                    string    `json:"id" gorm:"primaryKey"`
	Name                  string    `json:"name" gorm:"not null"`
	Contact               string    `json:"contact" gorm:"uniqueIndex;not null"`
	LastVisitDate         time.Time `json:"last_visit_date"`
	LastTransactionAmount float64   `json:"last_transaction_amount"`
	VisitCount            int       `json:"visit_count"`
	TotalSpent            float64   `json:"total_spent"`
	Notes                 string    `json:"notes"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
