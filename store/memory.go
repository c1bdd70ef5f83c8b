package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"restaurant-pos/models"
)

// Memory keeps every collection in process memory. It backs tests and the
// STORAGE=memory mode; everything is lost on restart.
type Memory struct {
	mu        sync.Mutex
	seed      Seed
	menu      []models.MenuItem
	inventory []models.InventoryItem
	orders    []models.Order
	customers []models.Customer
	users     []models.User
	settings  *models.Settings

	menuReady      bool
	inventoryReady bool
}

func NewMemory(seed Seed) *Memory {
	return &Memory{seed: seed}
}

var _ Store = (*Memory)(nil)

func (m *Memory) ensureMenu() {
	if !m.menuReady {
		m.menu = cloneMenu(m.seed.Menu)
		m.menuReady = true
	}
}

func (m *Memory) ensureInventory() {
	if !m.inventoryReady {
		m.inventory = cloneInventory(m.seed.Inventory)
		m.inventoryReady = true
	}
}

// ── Menu ────────────────────────────────────────────────────────────────────

func (m *Memory) GetMenuItems(_ context.Context) ([]models.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureMenu()
	out := cloneMenu(m.menu)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) SetMenuItems(_ context.Context, items []models.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.menu = cloneMenu(items)
	m.menuReady = true
	return nil
}

func (m *Memory) AddMenuItem(_ context.Context, item models.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureMenu()
	m.menu = append(m.menu, item.Clone())
	return nil
}

func (m *Memory) UpdateMenuItem(_ context.Context, item models.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureMenu()
	for i := range m.menu {
		if m.menu[i].ID == item.ID {
			m.menu[i] = item.Clone()
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteMenuItem(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureMenu()
	for i := range m.menu {
		if m.menu[i].ID == id {
			m.menu = append(m.menu[:i], m.menu[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ── Inventory ───────────────────────────────────────────────────────────────

func (m *Memory) GetInventoryItems(_ context.Context) ([]models.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureInventory()
	out := cloneInventory(m.inventory)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) SetInventoryItems(_ context.Context, items []models.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inventory = cloneInventory(items)
	m.inventoryReady = true
	return nil
}

func (m *Memory) AddInventoryItem(_ context.Context, item models.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureInventory()
	m.inventory = append(m.inventory, item.Clone())
	return nil
}

func (m *Memory) UpdateInventoryItem(_ context.Context, item models.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureInventory()
	for i := range m.inventory {
		if m.inventory[i].ID == item.ID {
			m.inventory[i] = item.Clone()
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteInventoryItem(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureInventory()
	for i := range m.inventory {
		if m.inventory[i].ID == id {
			m.inventory = append(m.inventory[:i], m.inventory[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ── Orders ──────────────────────────────────────────────────────────────────

func (m *Memory) GetOrders(_ context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Order, len(m.orders))
	for i, o := range m.orders {
		out[i] = o.Clone()
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) GetOrderByID(_ context.Context, id string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.ID == id {
			c := o.Clone()
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) AddOrder(_ context.Context, order models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.ID == order.ID || o.OrderNumber == order.OrderNumber {
			return ErrDuplicate
		}
	}
	m.orders = append(m.orders, order.Clone())
	return nil
}

// ── Customers ───────────────────────────────────────────────────────────────

func (m *Memory) GetCustomers(_ context.Context) ([]models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.Customer(nil), m.customers...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) GetCustomerByContact(_ context.Context, contact string) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.customers {
		if c.Contact == contact {
			found := c
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) SaveCustomer(_ context.Context, customer models.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.customers {
		if m.customers[i].ID == customer.ID {
			m.customers[i] = customer
			return nil
		}
	}
	m.customers = append(m.customers, customer)
	return nil
}

func (m *Memory) DeleteCustomer(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.customers {
		if m.customers[i].ID == id {
			m.customers = append(m.customers[:i], m.customers[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ── Users ───────────────────────────────────────────────────────────────────

func (m *Memory) GetUsers(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.User(nil), m.users...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (m *Memory) GetUserByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) AddUser(_ context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, user)
	return nil
}

func (m *Memory) UpdateUser(_ context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == user.ID {
			m.users[i] = user
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ── Settings ────────────────────────────────────────────────────────────────

func (m *Memory) GetSettings(_ context.Context) (*models.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settings == nil {
		return nil, ErrNotFound
	}
	out := m.settings.Clone()
	return &out, nil
}

func (m *Memory) SaveSettings(_ context.Context, settings models.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	saved := settings.Clone()
	m.settings = &saved
	return nil
}
