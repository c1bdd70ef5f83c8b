package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restaurant-pos/models"
	"restaurant-pos/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is shared by every seeded staff account.
const DemoPassword = "password"

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

// DefaultSeed is the menu and stock a fresh till starts with.
func DefaultSeed(now time.Time) store.Seed {
	now = now.UTC()

	inventory := []models.InventoryItem{
		{ID: "inv-1", Name: "Beef", Quantity: 10, Unit: "kg", CostPrice: 120000, ThresholdQuantity: floatPtr(5)},
		{ID: "inv-2", Name: "Potatoes", Quantity: 20, Unit: "kg", CostPrice: 15000, ThresholdQuantity: floatPtr(8)},
		{ID: "inv-3", Name: "Tea Leaves", Quantity: 5, Unit: "kg", CostPrice: 30000, ThresholdQuantity: floatPtr(2)},
		{ID: "inv-4", Name: "Cheese", Quantity: 4, Unit: "kg", CostPrice: 90000, ThresholdQuantity: floatPtr(1)},
		{ID: "inv-5", Name: "Milk", Quantity: 12, Unit: "l", CostPrice: 18000, ThresholdQuantity: floatPtr(3)},
		{ID: "inv-6", Name: "Burger Buns", Quantity: 60, Unit: "pcs", CostPrice: 2500, ThresholdQuantity: floatPtr(20)},
	}
	for i := range inventory {
		inventory[i].CreatedAt = now
		inventory[i].UpdatedAt = now
	}

	menu := []models.MenuItem{
		{
			ID: "1", Name: "Beef Burger", Price: 35000, Category: models.CategoryMainCourse,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1568901346375-23c9450c58cd"),
			Description: strPtr("Beef burger with cheese"),
			IsAvailable: true,
			Recipe: []models.RecipeEntry{
				{InventoryID: "inv-1", Amount: 150, Unit: "g"},
				{InventoryID: "inv-4", Amount: 20, Unit: "g"},
				{InventoryID: "inv-6", Amount: 1, Unit: "pcs"},
			},
		},
		{
			ID: "2", Name: "French Fries", Price: 20000, Category: models.CategorySideDish,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1576777647209-e8733d7b851d"),
			Description: strPtr("Crispy fried potatoes"),
			IsAvailable: true,
			Recipe:      []models.RecipeEntry{{InventoryID: "inv-2", Amount: 200, Unit: "g"}},
		},
		{
			ID: "3", Name: "Iced Tea", Price: 10000, Category: models.CategoryBeverage,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1588310566453-8eb669be9132"),
			Description: strPtr("Refreshing cold tea"),
			IsAvailable: true,
			Recipe:      []models.RecipeEntry{{InventoryID: "inv-3", Amount: 10, Unit: "g"}},
		},
		{
			ID: "4", Name: "Pizza", Price: 75000, Category: models.CategoryMainCourse,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1513104890138-7c749659a591"),
			Description: strPtr("Cheese pizza with tomato sauce"),
			IsAvailable: true,
			Recipe: []models.RecipeEntry{
				{InventoryID: "inv-4", Amount: 0.15, Unit: "kg"},
				{InventoryID: "inv-1", Amount: 80, Unit: "g"},
			},
		},
		{
			ID: "5", Name: "Ice Cream", Price: 18000, Category: models.CategoryDessert,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1566454419290-57a0cb3c3429"),
			Description: strPtr("Vanilla ice cream"),
			IsAvailable: true,
			Recipe:      []models.RecipeEntry{{InventoryID: "inv-5", Amount: 150, Unit: "ml"}},
		},
	}
	for i := range menu {
		menu[i].CreatedAt = now
		menu[i].UpdatedAt = now
	}

	return store.Seed{Menu: menu, Inventory: inventory}
}

// DemoUsers are the staff accounts a fresh till can sign in with.
var DemoUsers = []models.User{
	{Email: "owner@example.com", FirstName: "Olivia", LastName: "Owner", Role: models.RoleOwner},
	{Email: "warehouse@example.com", FirstName: "Walt", LastName: "Warehouse", Role: models.RoleWarehouseAdmin},
	{Email: "cashier@example.com", FirstName: "Cass", LastName: "Cashier", Role: models.RoleCashier},
}

// SeedUsers creates any demo account that does not exist yet.
func SeedUsers(ctx context.Context, users store.UserRepository, log *zap.Logger) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	for _, u := range DemoUsers {
		_, err := users.GetUserByEmail(ctx, u.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("look up %s: %w", u.Email, err)
		}

		u.ID = uuid.NewString()
		u.PasswordHash = string(hash)
		u.IsActive = true
		if err := users.AddUser(ctx, u); err != nil {
			return fmt.Errorf("create %s: %w", u.Email, err)
		}
		log.Info("demo account created", zap.String("email", u.Email), zap.String("role", string(u.Role)))
	}
	return nil
}
