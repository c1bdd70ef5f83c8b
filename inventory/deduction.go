package inventory

import (
	"time"

	"restaurant-pos/models"
	"restaurant-pos/units"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SkipReason explains why a line or recipe entry did not touch stock
type SkipReason string

const (
	SkipMenuItemNotFound      SkipReason = "menu_item_not_found"
	SkipNoRecipe              SkipReason = "no_recipe"
	SkipInventoryItemNotFound SkipReason = "inventory_item_not_found"
	SkipNoConversion          SkipReason = "no_conversion"
)

// Deduction records one applied decrement, expressed in the stock unit.
type Deduction struct {
	MenuItemID  string  `json:"menu_item_id"`
	InventoryID string  `json:"inventory_id"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Unit        string  `json:"unit"`
	Previous    float64 `json:"previous"`
	Remaining   float64 `json:"remaining"`
}

type Skip struct {
	MenuItemID  string     `json:"menu_item_id"`
	InventoryID string     `json:"inventory_id,omitempty"`
	Reason      SkipReason `json:"reason"`
	RecipeUnit  string     `json:"recipe_unit,omitempty"`
	StockUnit   string     `json:"stock_unit,omitempty"`
}

// Report summarises a deduction run.
type Report struct {
	Deductions []Deduction `json:"deductions"`
	Skipped    []Skip      `json:"skipped"`
}

// Changed reports whether any stock level was touched.
func (r Report) Changed() bool {
	return len(r.Deductions) > 0
}

// Failures returns the skips caused by unit pairings with no conversion.
func (r Report) Failures() []Skip {
	var out []Skip
	for _, s := range r.Skipped {
		if s.Reason == SkipNoConversion {
			out = append(out, s)
		}
	}
	return out
}

// Engine turns a placed order into stock decrements.
type Engine struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger, now: time.Now}
}

// WithClock swaps the clock used for UpdatedAt stamps.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Deduct walks every order line, resolves its recipe against the current
// menu and stock, and returns the full stock collection with quantities
// reduced. The input slices are not modified.
//
// Dangling references are skipped. A recipe entry whose unit cannot be
// converted into the stock unit leaves that item untouched and processing
// carries on with the remaining entries. Quantities are clamped at zero.
func (e *Engine) Deduct(order models.Order, menu []models.MenuItem, stock []models.InventoryItem) ([]models.InventoryItem, Report) {
	updated := make([]models.InventoryItem, len(stock))
	index := make(map[string]int, len(stock))
	for i, item := range stock {
		updated[i] = item.Clone()
		index[item.ID] = i
	}

	recipes := make(map[string]models.MenuItem, len(menu))
	for _, m := range menu {
		recipes[m.ID] = m
	}

	var report Report
	now := e.now().UTC()

	for _, line := range order.Items {
		menuItem, ok := recipes[line.MenuItemID]
		if !ok {
			e.logger.Debug("menu item not found, skipping line",
				zap.String("order_id", order.ID), zap.String("menu_item_id", line.MenuItemID))
			report.Skipped = append(report.Skipped, Skip{MenuItemID: line.MenuItemID, Reason: SkipMenuItemNotFound})
			continue
		}
		if !menuItem.HasRecipe() {
			report.Skipped = append(report.Skipped, Skip{MenuItemID: line.MenuItemID, Reason: SkipNoRecipe})
			continue
		}

		for _, entry := range menuItem.Recipe {
			i, ok := index[entry.InventoryID]
			if !ok {
				e.logger.Debug("inventory item not found, skipping recipe entry",
					zap.String("menu_item_id", menuItem.ID), zap.String("inventory_id", entry.InventoryID))
				report.Skipped = append(report.Skipped, Skip{
					MenuItemID:  menuItem.ID,
					InventoryID: entry.InventoryID,
					Reason:      SkipInventoryItemNotFound,
				})
				continue
			}
			item := &updated[i]

			amount, ok := deductionAmount(entry, line.Quantity, item.Unit)
			if !ok {
				e.logger.Warn("no unit conversion, stock not deducted",
					zap.String("order_id", order.ID),
					zap.String("menu_item_id", menuItem.ID),
					zap.String("inventory_id", item.ID),
					zap.String("recipe_unit", units.Normalize(entry.Unit)),
					zap.String("stock_unit", units.Normalize(item.Unit)),
				)
				report.Skipped = append(report.Skipped, Skip{
					MenuItemID:  menuItem.ID,
					InventoryID: item.ID,
					Reason:      SkipNoConversion,
					RecipeUnit:  units.Normalize(entry.Unit),
					StockUnit:   units.Normalize(item.Unit),
				})
				continue
			}

			previous := decimal.NewFromFloat(item.Quantity)
			remaining := decimal.Max(decimal.Zero, previous.Sub(amount))
			item.Quantity = remaining.InexactFloat64()
			item.UpdatedAt = now

			report.Deductions = append(report.Deductions, Deduction{
				MenuItemID:  menuItem.ID,
				InventoryID: item.ID,
				Name:        item.Name,
				Amount:      amount.InexactFloat64(),
				Unit:        item.Unit,
				Previous:    previous.InexactFloat64(),
				Remaining:   item.Quantity,
			})
		}
	}

	return updated, report
}

// deductionAmount is the recipe amount times the sold quantity, expressed in
// the stock unit. ok is false when the two units do not convert.
func deductionAmount(entry models.RecipeEntry, quantity int, stockUnit string) (decimal.Decimal, bool) {
	raw := decimal.NewFromFloat(entry.Amount).Mul(decimal.NewFromInt(int64(quantity)))
	if units.Equal(entry.Unit, stockUnit) {
		return raw, true
	}
	converted, ok := units.Convert(raw.InexactFloat64(), entry.Unit, stockUnit)
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(converted), true
}
