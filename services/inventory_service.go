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

type InventoryInput struct {
	Name              string
	Quantity          float64
	Unit              string
	CostPrice         float64
	ThresholdQuantity *float64
}

type InventoryService struct {
	repo   store.InventoryRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewInventoryService(repo store.InventoryRepository, logger *zap.Logger) *InventoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryService{repo: repo, logger: logger, now: time.Now}
}

func validateInventory(in InventoryInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return invalid("inventory item name is required")
	case units.Normalize(in.Unit) == "":
		return invalid("unit is required")
	case in.Quantity < 0:
		return invalid("quantity cannot be negative")
	case in.CostPrice < 0:
		return invalid("cost price cannot be negative")
	case in.ThresholdQuantity != nil && *in.ThresholdQuantity < 0:
		return invalid("threshold cannot be negative")
	}
	return nil
}

func (s *InventoryService) List(ctx context.Context) ([]models.InventoryItem, error) {
	return s.repo.GetInventoryItems(ctx)
}

func (s *InventoryService) Get(ctx context.Context, id string) (*models.InventoryItem, error) {
	items, err := s.repo.GetInventoryItems(ctx)
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

// LowStock lists items that have a threshold and sit at or below it.
func (s *InventoryService) LowStock(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := s.repo.GetInventoryItems(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.InventoryItem{}
	for _, it := range items {
		if it.IsLowStock() {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *InventoryService) Create(ctx context.Context, in InventoryInput) (*models.InventoryItem, error) {
	if err := validateInventory(in); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	item := models.InventoryItem{
		ID:                uuid.NewString(),
		Name:              strings.TrimSpace(in.Name),
		Quantity:          in.Quantity,
		Unit:              units.Normalize(in.Unit),
		CostPrice:         in.CostPrice,
		ThresholdQuantity: in.ThresholdQuantity,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repo.AddInventoryItem(ctx, item); err != nil {
		return nil, fmt.Errorf("add inventory item: %w", err)
	}
	s.logger.Info("inventory item created",
		zap.String("inventory_id", item.ID),
		zap.String("name", item.Name),
		zap.Float64("quantity", item.Quantity),
		zap.String("unit", item.Unit),
	)
	return &item, nil
}

func (s *InventoryService) Update(ctx context.Context, id string, in InventoryInput) (*models.InventoryItem, error) {
	if err := validateInventory(in); err != nil {
		return nil, err
	}
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	item := *existing
	item.Name = strings.TrimSpace(in.Name)
	item.Quantity = in.Quantity
	item.Unit = units.Normalize(in.Unit)
	item.CostPrice = in.CostPrice
	item.ThresholdQuantity = in.ThresholdQuantity
	item.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateInventoryItem(ctx, item); err != nil {
		return nil, err
	}
	if existing.Unit != item.Unit {
		// recipes keep their own unit; a pairing may now have no conversion
		s.logger.Warn("inventory unit changed",
			zap.String("inventory_id", id),
			zap.String("from", existing.Unit),
			zap.String("to", item.Unit),
		)
	}
	return &item, nil
}

func (s *InventoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteInventoryItem(ctx, id); err != nil {
		return err
	}
	s.logger.Info("inventory item deleted", zap.String("inventory_id", id))
	return nil
}
