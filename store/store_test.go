package store_test

import (
	"context"
	"testing"
	"time"

	"restaurant-pos/models"
	"restaurant-pos/store"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testSeed() store.Seed {
	threshold := 5.0
	return store.Seed{
		Menu: []models.MenuItem{
			{ID: "1", Name: "Beef Burger", Price: 35000, Category: models.CategoryMainCourse, IsAvailable: true,
				Recipe: []models.RecipeEntry{{InventoryID: "inv-1", Amount: 150, Unit: "g"}}},
			{ID: "3", Name: "Iced Tea", Price: 10000, Category: models.CategoryBeverage, IsAvailable: true},
		},
		Inventory: []models.InventoryItem{
			{ID: "inv-1", Name: "Beef", Quantity: 10, Unit: "kg", CostPrice: 120000, ThresholdQuantity: &threshold},
		},
	}
}

func newGormStore(t *testing.T, seed store.Seed) *store.GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	s := store.NewGorm(db, seed)
	require.NoError(t, s.Migrate())
	return s
}

// forEachStore runs the same contract against every implementation.
func forEachStore(t *testing.T, seed store.Seed, fn func(t *testing.T, s store.Store)) {
	t.Run("memory", func(t *testing.T) { fn(t, store.NewMemory(seed)) })
	t.Run("gorm", func(t *testing.T) { fn(t, newGormStore(t, seed)) })
}

func TestStore_SeedsOnFirstRead(t *testing.T) {
	forEachStore(t, testSeed(), func(t *testing.T, s store.Store) {
		ctx := context.Background()

		menu, err := s.GetMenuItems(ctx)
		require.NoError(t, err)
		require.Len(t, menu, 2)
		assert.Equal(t, "Beef Burger", menu[0].Name)
		require.Len(t, menu[0].Recipe, 1)
		assert.Equal(t, "inv-1", menu[0].Recipe[0].InventoryID)

		stock, err := s.GetInventoryItems(ctx)
		require.NoError(t, err)
		require.Len(t, stock, 1)
		require.NotNil(t, stock[0].ThresholdQuantity)
		assert.Equal(t, 5.0, *stock[0].ThresholdQuantity)
	})
}

func TestStore_EmptiedCollectionIsNotReseeded(t *testing.T) {
	forEachStore(t, testSeed(), func(t *testing.T, s store.Store) {
		ctx := context.Background()

		require.NoError(t, s.SetMenuItems(ctx, nil))
		menu, err := s.GetMenuItems(ctx)
		require.NoError(t, err)
		assert.Empty(t, menu)

		_, err = s.GetInventoryItems(ctx)
		require.NoError(t, err)
		require.NoError(t, s.DeleteInventoryItem(ctx, "inv-1"))
		stock, err := s.GetInventoryItems(ctx)
		require.NoError(t, err)
		assert.Empty(t, stock)
	})
}

func TestStore_SetInventoryItemsReplacesCollection(t *testing.T) {
	forEachStore(t, testSeed(), func(t *testing.T, s store.Store) {
		ctx := context.Background()
		now := time.Now().UTC().Truncate(time.Second)

		replacement := []models.InventoryItem{
			{ID: "inv-1", Name: "Beef", Quantity: 9.6, Unit: "kg", UpdatedAt: now, CreatedAt: now},
			{ID: "inv-9", Name: "Oil", Quantity: 2, Unit: "l", UpdatedAt: now, CreatedAt: now},
		}
		require.NoError(t, s.SetInventoryItems(ctx, replacement))

		stock, err := s.GetInventoryItems(ctx)
		require.NoError(t, err)
		require.Len(t, stock, 2)
		assert.Equal(t, "Beef", stock[0].Name)
		assert.Equal(t, 9.6, stock[0].Quantity)
		assert.Nil(t, stock[0].ThresholdQuantity)
		assert.True(t, now.Equal(stock[0].UpdatedAt))
		assert.Equal(t, "Oil", stock[1].Name)
	})
}

func TestStore_ReadsAreIsolatedFromCallerMutation(t *testing.T) {
	forEachStore(t, testSeed(), func(t *testing.T, s store.Store) {
		ctx := context.Background()

		stock, err := s.GetInventoryItems(ctx)
		require.NoError(t, err)
		stock[0].Quantity = 0

		again, err := s.GetInventoryItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, 10.0, again[0].Quantity)
	})
}

func TestStore_MenuCRUD(t *testing.T) {
	forEachStore(t, testSeed(), func(t *testing.T, s store.Store) {
		ctx := context.Background()

		item := models.MenuItem{ID: "menu-x", Name: "Apple Pie", Price: 18000, Category: models.CategoryDessert}
		require.NoError(t, s.AddMenuItem(ctx, item))

		menu, err := s.GetMenuItems(ctx)
		require.NoError(t, err)
		require.Len(t, menu, 3)
		assert.Equal(t, "Apple Pie", menu[0].Name)
		assert.False(t, menu[0].IsAvailable)

		item.Price = 20000
		item.IsAvailable = true
		require.NoError(t, s.UpdateMenuItem(ctx, item))
		menu, err = s.GetMenuItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, 20000.0, menu[0].Price)
		assert.True(t, menu[0].IsAvailable)

		err = s.UpdateMenuItem(ctx, models.MenuItem{ID: "nope", Name: "x", Category: models.CategoryDessert})
		assert.ErrorIs(t, err, store.ErrNotFound)

		require.NoError(t, s.DeleteMenuItem(ctx, "menu-x"))
		menu, err = s.GetMenuItems(ctx)
		require.NoError(t, err)
		assert.Len(t, menu, 2)

		assert.ErrorIs(t, s.DeleteMenuItem(ctx, "menu-x"), store.ErrNotFound)
	})
}

func TestStore_DeleteMissingIsNotFound(t *testing.T) {
	forEachStore(t, testSeed(), func(t *testing.T, s store.Store) {
		ctx := context.Background()
		assert.ErrorIs(t, s.DeleteMenuItem(ctx, "ghost"), store.ErrNotFound)
		assert.ErrorIs(t, s.DeleteInventoryItem(ctx, "ghost"), store.ErrNotFound)
		assert.ErrorIs(t, s.DeleteCustomer(ctx, "ghost"), store.ErrNotFound)
		assert.ErrorIs(t, s.DeleteUser(ctx, "ghost"), store.ErrNotFound)
	})
}

func TestStore_DeleteSeededItemBeforeFirstRead(t *testing.T) {
	forEachStore(t, testSeed(), func(t *testing.T, s store.Store) {
		ctx := context.Background()
		require.NoError(t, s.DeleteInventoryItem(ctx, "inv-1"))

		items, err := s.GetInventoryItems(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestStore_InventoryUpdateMissing(t *testing.T) {
	forEachStore(t, testSeed(), func(t *testing.T, s store.Store) {
		err := s.UpdateInventoryItem(context.Background(), models.InventoryItem{ID: "ghost", Name: "x", Unit: "kg"})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestStore_Orders(t *testing.T) {
	forEachStore(t, testSeed(), func(t *testing.T, s store.Store) {
		ctx := context.Background()
		base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

		first := models.Order{
			ID: "order-1", OrderNumber: "INV202605011200-001", Total: 70000,
			PaymentMethod: models.PaymentCash, CashierID: "u1", CreatedAt: base,
			Items: []models.OrderItem{{MenuItemID: "1", Name: "Beef Burger", Price: 35000, Quantity: 2}},
		}
		second := models.Order{
			ID: "order-2", OrderNumber: "INV202605011205-002", Total: 10000,
			PaymentMethod: models.PaymentCard, CashierID: "u1", CreatedAt: base.Add(5 * time.Minute),
			Items: []models.OrderItem{
				{MenuItemID: "3", Name: "Iced Tea", Price: 10000, Quantity: 1},
			},
		}
		require.NoError(t, s.AddOrder(ctx, first))
		require.NoError(t, s.AddOrder(ctx, second))

		orders, err := s.GetOrders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "order-2", orders[0].ID)
		assert.Equal(t, "order-1", orders[1].ID)

		got, err := s.GetOrderByID(ctx, "order-1")
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "Beef Burger", got.Items[0].Name)
		assert.Equal(t, 2, got.Items[0].Quantity)

		_, err = s.GetOrderByID(ctx, "missing")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestStore_AddOrderRejectsTakenIDOrNumber(t *testing.T) {
	forEachStore(t, testSeed(), func(t *testing.T, s store.Store) {
		ctx := context.Background()
		at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
		order := models.Order{
			ID: "order-1", OrderNumber: "INV202605011200-007", Total: 10000,
			PaymentMethod: models.PaymentCard, CreatedAt: at,
			Items: []models.OrderItem{{MenuItemID: "3", Name: "Iced Tea", Price: 10000, Quantity: 1}},
		}
		require.NoError(t, s.AddOrder(ctx, order))

		sameNumber := order
		sameNumber.ID = "order-2"
		assert.ErrorIs(t, s.AddOrder(ctx, sameNumber), store.ErrDuplicate)

		sameID := order
		sameID.OrderNumber = "INV202605011200-008"
		assert.ErrorIs(t, s.AddOrder(ctx, sameID), store.ErrDuplicate)

		orders, err := s.GetOrders(ctx)
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})
}

func TestStore_Customers(t *testing.T) {
	forEachStore(t, store.Seed{}, func(t *testing.T, s store.Store) {
		ctx := context.Background()

		c := models.Customer{ID: "c1", Name: "Sari", Contact: "0812", VisitCount: 1, TotalSpent: 50000}
		require.NoError(t, s.SaveCustomer(ctx, c))

		c.VisitCount = 2
		c.TotalSpent = 80000
		require.NoError(t, s.SaveCustomer(ctx, c))

		got, err := s.GetCustomerByContact(ctx, "0812")
		require.NoError(t, err)
		assert.Equal(t, 2, got.VisitCount)
		assert.Equal(t, 80000.0, got.TotalSpent)

		all, err := s.GetCustomers(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)

		require.NoError(t, s.DeleteCustomer(ctx, "c1"))
		assert.ErrorIs(t, s.DeleteCustomer(ctx, "c1"), store.ErrNotFound)
		_, err = s.GetCustomerByContact(ctx, "0812")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestStore_Users(t *testing.T) {
	forEachStore(t, store.Seed{}, func(t *testing.T, s store.Store) {
		ctx := context.Background()

		u := models.User{ID: "u1", Email: "owner@example.com", FirstName: "John", PasswordHash: "x", Role: models.RoleOwner, IsActive: true}
		require.NoError(t, s.AddUser(ctx, u))

		got, err := s.GetUserByEmail(ctx, "Owner@Example.com")
		require.NoError(t, err)
		assert.Equal(t, "u1", got.ID)

		u.IsActive = false
		require.NoError(t, s.UpdateUser(ctx, u))
		got, err = s.GetUserByID(ctx, "u1")
		require.NoError(t, err)
		assert.False(t, got.IsActive)

		assert.ErrorIs(t, s.UpdateUser(ctx, models.User{ID: "ghost"}), store.ErrNotFound)
		require.NoError(t, s.DeleteUser(ctx, "u1"))
		assert.ErrorIs(t, s.DeleteUser(ctx, "u1"), store.ErrNotFound)

		users, err := s.GetUsers(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestStore_Settings(t *testing.T) {
	forEachStore(t, testSeed(), func(t *testing.T, s store.Store) {
		ctx := context.Background()
		_, err := s.GetSettings(ctx)
		assert.ErrorIs(t, err, store.ErrNotFound)

		settings := models.DefaultSettings()
		require.NoError(t, s.SaveSettings(ctx, settings))

		settings.RestaurantName = "Warung Bu Sri"
		settings.TaxRate = 11
		require.NoError(t, s.SaveSettings(ctx, settings))

		got, err := s.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Warung Bu Sri", got.RestaurantName)
		assert.Equal(t, 11.0, got.TaxRate)
		assert.True(t, got.ShowLogo)
	})
}
