package store

import (
	"context"
	"errors"
	"fmt"

	"restaurant-pos/models"

	"gorm.io/gorm"
)

// collection marks that a seeded collection has been initialised once, so an
// owner who deletes every menu item gets an empty menu back, not the seed.
type collection struct {
	Name string `gorm:"primaryKey"`
}

const (
	collectionMenu      = "menu_items"
	collectionInventory = "inventory_items"
)

// Models lists every table the gorm store needs migrated.
func Models() []interface{} {
	return []interface{}{
		&collection{},
		&models.MenuItem{},
		&models.InventoryItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Customer{},
		&models.User{},
		&models.Settings{},
	}
}

// GormStore persists collections through gorm.
type GormStore struct {
	db   *gorm.DB
	seed Seed
}

func NewGorm(db *gorm.DB, seed Seed) *GormStore {
	return &GormStore{db: db, seed: seed}
}

var _ Store = (*GormStore)(nil)

// Migrate creates or updates every table.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(Models()...)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// deleted turns a delete that matched no row into ErrNotFound.
func deleted(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ensureSeeded writes seed rows the first time a collection is read.
func (s *GormStore) ensureSeeded(tx *gorm.DB, name string, write func(tx *gorm.DB) error) error {
	var count int64
	if err := tx.Model(&collection{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return tx.Transaction(func(tx *gorm.DB) error {
		if err := write(tx); err != nil {
			return err
		}
		return tx.Create(&collection{Name: name}).Error
	})
}

func markReady(tx *gorm.DB, name string) error {
	var count int64
	if err := tx.Model(&collection{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return tx.Create(&collection{Name: name}).Error
}

// ── Menu ────────────────────────────────────────────────────────────────────

func (s *GormStore) GetMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	db := s.db.WithContext(ctx)
	err := s.ensureSeeded(db, collectionMenu, func(tx *gorm.DB) error {
		if len(s.seed.Menu) == 0 {
			return nil
		}
		rows := cloneMenu(s.seed.Menu)
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("seed menu: %w", err)
	}

	var items []models.MenuItem
	if err := db.Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) SetMenuItems(ctx context.Context, items []models.MenuItem) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			rows := cloneMenu(items)
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return markReady(tx, collectionMenu)
	})
}

func (s *GormStore) AddMenuItem(ctx context.Context, item models.MenuItem) error {
	if _, err := s.GetMenuItems(ctx); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(&item).Error
}

func (s *GormStore) UpdateMenuItem(ctx context.Context, item models.MenuItem) error {
	db := s.db.WithContext(ctx)
	var existing models.MenuItem
	if err := db.First(&existing, "id = ?", item.ID).Error; err != nil {
		return notFound(err)
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = existing.CreatedAt
	}
	return db.Save(&item).Error
}

func (s *GormStore) DeleteMenuItem(ctx context.Context, id string) error {
	if _, err := s.GetMenuItems(ctx); err != nil {
		return err
	}
	return deleted(s.db.WithContext(ctx).Delete(&models.MenuItem{}, "id = ?", id))
}

// ── Inventory ───────────────────────────────────────────────────────────────

func (s *GormStore) GetInventoryItems(ctx context.Context) ([]models.InventoryItem, error) {
	db := s.db.WithContext(ctx)
	err := s.ensureSeeded(db, collectionInventory, func(tx *gorm.DB) error {
		if len(s.seed.Inventory) == 0 {
			return nil
		}
		rows := cloneInventory(s.seed.Inventory)
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("seed inventory: %w", err)
	}

	var items []models.InventoryItem
	if err := db.Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) SetInventoryItems(ctx context.Context, items []models.InventoryItem) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.InventoryItem{}).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			rows := cloneInventory(items)
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return markReady(tx, collectionInventory)
	})
}

func (s *GormStore) AddInventoryItem(ctx context.Context, item models.InventoryItem) error {
	if _, err := s.GetInventoryItems(ctx); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(&item).Error
}

func (s *GormStore) UpdateInventoryItem(ctx context.Context, item models.InventoryItem) error {
	db := s.db.WithContext(ctx)
	var existing models.InventoryItem
	if err := db.First(&existing, "id = ?", item.ID).Error; err != nil {
		return notFound(err)
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = existing.CreatedAt
	}
	return db.Save(&item).Error
}

func (s *GormStore) DeleteInventoryItem(ctx context.Context, id string) error {
	if _, err := s.GetInventoryItems(ctx); err != nil {
		return err
	}
	return deleted(s.db.WithContext(ctx).Delete(&models.InventoryItem{}, "id = ?", id))
}

// ── Orders ──────────────────────────────────────────────────────────────────

func (s *GormStore) GetOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormStore) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

func (s *GormStore) AddOrder(ctx context.Context, order models.Order) error {
	order = order.Clone()
	for i := range order.Items {
		order.Items[i].ID = 0
		order.Items[i].OrderID = order.ID
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		err := tx.Model(&models.Order{}).
			Where("id = ? OR order_number = ?", order.ID, order.OrderNumber).
			Count(&taken).Error
		if err != nil {
			return err
		}
		if taken > 0 {
			return ErrDuplicate
		}
		if err := tx.Create(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicate
			}
			return err
		}
		return nil
	})
}

// ── Customers ───────────────────────────────────────────────────────────────

func (s *GormStore) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.WithContext(ctx).Order("name").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *GormStore) GetCustomerByContact(ctx context.Context, contact string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).Where("contact = ?", contact).First(&customer).Error; err != nil {
		return nil, notFound(err)
	}
	return &customer, nil
}

func (s *GormStore) SaveCustomer(ctx context.Context, customer models.Customer) error {
	return s.db.WithContext(ctx).Save(&customer).Error
}

func (s *GormStore) DeleteCustomer(ctx context.Context, id string) error {
	return deleted(s.db.WithContext(ctx).Delete(&models.Customer{}, "id = ?", id))
}

// ── Users ───────────────────────────────────────────────────────────────────

func (s *GormStore) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("email").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *GormStore) AddUser(ctx context.Context, user models.User) error {
	return s.db.WithContext(ctx).Create(&user).Error
}

func (s *GormStore) UpdateUser(ctx context.Context, user models.User) error {
	db := s.db.WithContext(ctx)
	var existing models.User
	if err := db.First(&existing, "id = ?", user.ID).Error; err != nil {
		return notFound(err)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = existing.CreatedAt
	}
	return db.Save(&user).Error
}

func (s *GormStore) DeleteUser(ctx context.Context, id string) error {
	return deleted(s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id))
}

// ── Settings ────────────────────────────────────────────────────────────────

const settingsID = 1

func (s *GormStore) GetSettings(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	if err := s.db.WithContext(ctx).First(&settings, settingsID).Error; err != nil {
		return nil, notFound(err)
	}
	return &settings, nil
}

func (s *GormStore) SaveSettings(ctx context.Context, settings models.Settings) error {
	settings.ID = settingsID
	return s.db.WithContext(ctx).Save(&settings).Error
}
