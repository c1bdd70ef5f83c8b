// Package store is the persistence facade behind the till. Every collection
// is read and written as a whole: reads return the current collection (seeding
// defaults the first time a collection is touched) and Set* replaces it.
//
// There is no concurrency control. Two read-modify-write cycles that overlap
// lose the earlier write; a single till does not need more than that.
package store

import (
	"context"
	"errors"

	"restaurant-pos/models"
)

var (
	// ErrNotFound is returned when a keyed lookup, update or delete misses.
	ErrNotFound  = errors.New("record not found")
	// ErrDuplicate is returned when an order id or order number is already taken.
	ErrDuplicate = errors.New("duplicate record")
)

// Seed holds the collections written the first time they are read.
type Seed struct {
	Menu      []models.MenuItem
	Inventory []models.InventoryItem
}

type MenuRepository interface {
	GetMenuItems(ctx context.Context) ([]models.MenuItem, error)
	SetMenuItems(ctx context.Context, items []models.MenuItem) error
	AddMenuItem(ctx context.Context, item models.MenuItem) error
	UpdateMenuItem(ctx context.Context, item models.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) error
}

type InventoryRepository interface {
	GetInventoryItems(ctx context.Context) ([]models.InventoryItem, error)
	// SetInventoryItems replaces the whole collection. Last writer wins.
	SetInventoryItems(ctx context.Context, items []models.InventoryItem) error
	AddInventoryItem(ctx context.Context, item models.InventoryItem) error
	UpdateInventoryItem(ctx context.Context, item models.InventoryItem) error
	DeleteInventoryItem(ctx context.Context, id string) error
}

type OrderRepository interface {
	GetOrders(ctx context.Context) ([]models.Order, error)
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	AddOrder(ctx context.Context, order models.Order) error
}

type CustomerRepository interface {
	GetCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomerByContact(ctx context.Context, contact string) (*models.Customer, error)
	// SaveCustomer inserts or replaces the customer with the same ID.
	SaveCustomer(ctx context.Context, customer models.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
}

type UserRepository interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	AddUser(ctx context.Context, user models.User) error
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, id string) error
}

// SettingsRepository keeps the single settings record. GetSettings returns
// ErrNotFound until something has been saved.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	SaveSettings(ctx context.Context, settings models.Settings) error
}

// Store bundles every repository a till needs.
type Store interface {
	MenuRepository
	InventoryRepository
	OrderRepository
	CustomerRepository
	UserRepository
	SettingsRepository
}

func cloneMenu(items []models.MenuItem) []models.MenuItem {
	out := make([]models.MenuItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

func cloneInventory(items []models.InventoryItem) []models.InventoryItem {
	out := make([]models.InventoryItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
