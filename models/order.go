package models

import "time"

// PaymentMethod is how the customer settled the bill
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Order is written once at checkout and never edited afterwards.
type Order struct {
	ID              string        `json:"id" gorm:"primaryKey"`
	OrderNumber     string        `json:"order_number" gorm:"uniqueIndex;not null"`
	Items           []OrderItem   `json:"items" gorm:"foreignKey:OrderID"`
	Total           float64       `json:"total" gorm:"not null"`
	AmountPaid      float64       `json:"amount_paid"`
	Change          float64       `json:"change"`
	PaymentMethod   PaymentMethod `json:"payment_method" gorm:"not null"`
	CashierID       string        `json:"cashier_id" gorm:"index"`
	CustomerName    string        `json:"customer_name,omitempty"`
	CustomerContact string        `json:"customer_contact,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

type OrderItem struct {
	ID         uint    `json:"-" gorm:"primaryKey"`
	OrderID    string  `json:"-" gorm:"index;not null"`
	MenuItemID string  `json:"menu_item_id" gorm:"not null"`
	Name       string  `json:"name"`                  // snapshot name
	Price      float64 `json:"price" gorm:"not null"` // snapshot price at time of order
	Quantity   int     `json:"quantity" gorm:"not null"`
}

func (o Order) Clone() Order {
	out := o
	if o.Items != nil {
		out.Items = append([]OrderItem(nil), o.Items...)
	}
	return out
}
