package models

import "time"

// InventoryItem is a stocked ingredient. Quantity is expressed in Unit and
// never drops below zero.
type InventoryItem struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name" gorm:"not null"`
	Quantity          float64   `json:"quantity" gorm:"not null"`
	Unit              string    `json:"unit" gorm:"not null"`
	CostPrice         float64   `json:"cost_price"`
	ThresholdQuantity *float64  `json:"threshold_quantity"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// IsLowStock reports whether the item has a threshold and sits at or below it.
func (i InventoryItem) IsLowStock() bool {
	return i.ThresholdQuantity != nil && i.Quantity <= *i.ThresholdQuantity
}

func (i InventoryItem) Clone() InventoryItem {
	out := i
	if i.ThresholdQuantity != nil {
		v := *i.ThresholdQuantity
		out.ThresholdQuantity = &v
	}
	return out
}
