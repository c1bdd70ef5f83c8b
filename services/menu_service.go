package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restaurant-pos/models"
	"restaurant-pos/store"
	"restaurant-pos/units"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MenuInput carries the editable fields of a menu item.
type MenuInput struct {
	Name        string
	Price       float64
	Category    models.Category
	ImageURL    *string
	Description *string
	IsAvailable bool
	Recipe      []models.RecipeEntry
}

// MenuFilter narrows List. Zero values match everything.
type MenuFilter struct {
	Category      models.Category
	AvailableOnly bool
}

type MenuService struct {
	menu   store.MenuRepository
	stock  store.InventoryRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewMenuService(menu store.MenuRepository, stock store.InventoryRepository, logger *zap.Logger) *MenuService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MenuService{menu: menu, stock: stock, logger: logger, now: time.Now}
}

// SanitizeRecipe drops entries without an inventory reference or with a
// non-positive amount and normalizes every kept unit. An entry with no unit
// takes the unit its inventory item is stocked in; when that item is unknown
// the entry is dropped.
func SanitizeRecipe(entries []models.RecipeEntry, stock []models.InventoryItem) []models.RecipeEntry {
	stockUnit := make(map[string]string, len(stock))
	for _, it := range stock {
		stockUnit[it.ID] = it.Unit
	}

	var out []models.RecipeEntry
	for _, e := range entries {
		id := strings.TrimSpace(e.InventoryID)
		if id == "" || e.Amount <= 0 {
			continue
		}
		unit := units.Normalize(e.Unit)
		if unit == "" {
			suggested, ok := stockUnit[id]
			if !ok || units.Normalize(suggested) == "" {
				continue
			}
			unit = units.Normalize(suggested)
		}
		out = append(out, models.RecipeEntry{InventoryID: id, Amount: e.Amount, Unit: unit})
	}
	return out
}

func (s *MenuService) validate(in MenuInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("menu item name is required")
	}
	if in.Price < 0 {
		return invalid("price cannot be negative")
	}
	if !in.Category.Valid() {
		return invalid("unknown category %q", in.Category)
	}
	return nil
}

func (s *MenuService) sanitize(ctx context.Context, recipe []models.RecipeEntry) ([]models.RecipeEntry, error) {
	if len(recipe) == 0 {
		return nil, nil
	}
	stock, err := s.stock.GetInventoryItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	return SanitizeRecipe(recipe, stock), nil
}

func (s *MenuService) List(ctx context.Context, f MenuFilter) ([]models.MenuItem, error) {
	items, err := s.menu.GetMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	if f.Category == "" && !f.AvailableOnly {
		return items, nil
	}
	out := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if f.AvailableOnly && !it.IsAvailable {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (s *MenuService) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	items, err := s.menu.GetMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, store.ErrNotFound
}

// Categories returns the categories currently used by the menu, in the
// fixed display order.
func (s *MenuService) Categories(ctx context.Context) ([]models.Category, error) {
	items, err := s.menu.GetMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	used := make(map[models.Category]bool)
	for _, it := range items {
		used[it.Category] = true
	}
	out := []models.Category{}
	for _, c := range models.Categories {
		if used[c] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MenuService) Create(ctx context.Context, in MenuInput) (*models.MenuItem, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	recipe, err := s.sanitize(ctx, in.Recipe)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	item := models.MenuItem{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		IsAvailable: in.IsAvailable,
		Recipe:      recipe,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.menu.AddMenuItem(ctx, item); err != nil {
		return nil, fmt.Errorf("add menu item: %w", err)
	}
	s.logger.Info("menu item created", zap.String("menu_item_id", item.ID), zap.String("name", item.Name))
	return &item, nil
}

func (s *MenuService) Update(ctx context.Context, id string, in MenuInput) (*models.MenuItem, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	recipe, err := s.sanitize(ctx, in.Recipe)
	if err != nil {
		return nil, err
	}

	item := *existing
	item.Name = strings.TrimSpace(in.Name)
	item.Price = in.Price
	item.Category = in.Category
	item.ImageURL = in.ImageURL
	item.Description = in.Description
	item.IsAvailable = in.IsAvailable
	item.Recipe = recipe
	item.UpdatedAt = s.now().UTC()

	if err := s.menu.UpdateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.menu.DeleteMenuItem(ctx, id); err != nil {
		return err
	}
	s.logger.Info("menu item deleted", zap.String("menu_item_id", id))
	return nil
}
