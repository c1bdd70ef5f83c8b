package services_test

import (
	"testing"

	"restaurant-pos/models"
	"restaurant-pos/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	burger = models.MenuItem{ID: "1", Name: "Beef Burger", Price: 35000, IsAvailable: true}
	tea    = models.MenuItem{ID: "3", Name: "Iced Tea", Price: 10000, IsAvailable: true}
)

func TestCart_AddIncrementsExistingLine(t *testing.T) {
	var c services.Cart
	c.Add(burger, 1)
	c.Add(tea, 2)
	c.Add(burger, 1)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "1", lines[0].MenuItemID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, lines[1].Quantity)
	assert.True(t, decimal.NewFromInt(90000).Equal(c.Total()))
}

func TestCart_AddSnapshotsPrice(t *testing.T) {
	var c services.Cart
	item := burger
	c.Add(item, 1)
	item.Price = 99999
	c.Add(item, 1)

	assert.Equal(t, 35000.0, c.Lines()[0].Price)
}

func TestCart_AddIgnoresNonPositive(t *testing.T) {
	var c services.Cart
	c.Add(burger, 0)
	c.Add(burger, -3)
	assert.True(t, c.IsEmpty())
}

func TestCart_RemoveDecrementsThenDrops(t *testing.T) {
	var c services.Cart
	c.Add(burger, 2)

	c.Remove("1")
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 1, c.Lines()[0].Quantity)

	c.Remove("1")
	assert.True(t, c.IsEmpty())

	c.Remove("missing")
	assert.True(t, c.IsEmpty())
}

func TestCart_SetQuantityAndClear(t *testing.T) {
	var c services.Cart
	c.Add(burger, 1)
	c.Add(tea, 1)

	c.SetQuantity("3", 5)
	assert.Equal(t, 5, c.Lines()[1].Quantity)

	c.SetQuantity("1", 0)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, "3", c.Lines()[0].MenuItemID)

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total().IsZero())
}

func TestCart_TotalHasNoFloatDrift(t *testing.T) {
	var c services.Cart
	c.Add(models.MenuItem{ID: "a", Price: 0.1}, 1)
	c.Add(models.MenuItem{ID: "b", Price: 0.2}, 1)

	assert.Equal(t, "0.3", c.Total().String())
}

func TestCart_OrderItems(t *testing.T) {
	var c services.Cart
	c.Add(burger, 2)

	items := c.OrderItems()
	require.Len(t, items, 1)
	assert.Equal(t, models.OrderItem{MenuItemID: "1", Name: "Beef Burger", Price: 35000, Quantity: 2}, items[0])
}
