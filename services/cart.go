package services

import (
	"restaurant-pos/models"

	"github.com/shopspring/decimal"
)

// CartLine is one menu item in the cart with the name and price it had when
// it was added.
type CartLine struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// Cart collects lines before checkout. The zero value is an empty cart.
type Cart struct {
	lines []CartLine
}

func (c *Cart) index(menuItemID string) int {
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			return i
		}
	}
	return -1
}

// Add puts qty more of item into the cart. A non-positive qty is ignored.
func (c *Cart) Add(item models.MenuItem, qty int) {
	if qty <= 0 {
		return
	}
	if i := c.index(item.ID); i >= 0 {
		c.lines[i].Quantity += qty
		return
	}
	c.lines = append(c.lines, CartLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   qty,
	})
}

// Remove takes one unit of the item out, dropping the line at the last unit.
func (c *Cart) Remove(menuItemID string) {
	i := c.index(menuItemID)
	if i < 0 {
		return
	}
	if c.lines[i].Quantity > 1 {
		c.lines[i].Quantity--
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// SetQuantity overwrites a line's quantity; zero or less drops the line.
func (c *Cart) SetQuantity(menuItemID string, qty int) {
	i := c.index(menuItemID)
	if i < 0 {
		return
	}
	if qty <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
	c.lines[i].Quantity = qty
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []CartLine {
	return append([]CartLine(nil), c.lines...)
}

// Total is the sum of price times quantity over every line.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// OrderItems snapshots the cart as order lines.
func (c *Cart) OrderItems() []models.OrderItem {
	items := make([]models.OrderItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, models.OrderItem{
			MenuItemID: l.MenuItemID,
			Name:       l.Name,
			Price:      l.Price,
			Quantity:   l.Quantity,
		})
	}
	return items
}
