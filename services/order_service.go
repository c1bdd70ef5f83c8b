package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"restaurant-pos/inventory"
	"restaurant-pos/models"
	"restaurant-pos/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CheckoutLine asks for quantity units of one menu item.
type CheckoutLine struct {
	MenuItemID string
	Quantity   int
}

type CheckoutRequest struct {
	Items           []CheckoutLine
	PaymentMethod   models.PaymentMethod
	AmountPaid      float64 // cash tendered; ignored for card
	CustomerName    string
	CustomerContact string
}

// CheckoutResult is the receipt data for a completed sale.
type CheckoutResult struct {
	Order     models.Order     `json:"order"`
	Change    float64          `json:"change"`
	Deduction inventory.Report `json:"-"`
}

// OrderStore is the slice of the store checkout touches.
type OrderStore interface {
	store.MenuRepository
	store.InventoryRepository
	store.OrderRepository
}

type OrderService struct {
	store     OrderStore
	customers *CustomerService
	engine    *inventory.Engine
	logger    *zap.Logger
	now       func() time.Time
	suffix    func() int
}

func NewOrderService(st OrderStore, customers *CustomerService, engine *inventory.Engine, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		store:     st,
		customers: customers,
		engine:    engine,
		logger:    logger,
		now:       time.Now,
		suffix:    func() int { return rand.IntN(1000) },
	}
}

// WithClock replaces the time source used for ids, order numbers and stamps.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

// WithSuffix replaces the random order-number suffix source.
func (s *OrderService) WithSuffix(suffix func() int) *OrderService {
	s.suffix = suffix
	return s
}

// maxOrderAttempts bounds how often checkout draws a fresh order number after
// the store reports the id or number as taken.
const maxOrderAttempts = 5

// GenerateOrderNumber formats INV + yyyymmdd + hhmm + "-" + a three digit suffix.
func GenerateOrderNumber(t time.Time, suffix int) string {
	return fmt.Sprintf("INV%s-%03d", t.Format("200601021504"), suffix%1000)
}

// Checkout prices the lines against the current menu, takes payment and
// records the order. Stock deduction and the customer record are best effort:
// once the order is stored the sale has happened.
func (s *OrderService) Checkout(ctx context.Context, cashierID string, req CheckoutRequest) (*CheckoutResult, error) {
	if len(req.Items) == 0 {
		return nil, invalid("cart is empty")
	}
	if req.PaymentMethod != models.PaymentCash && req.PaymentMethod != models.PaymentCard {
		return nil, invalid("unknown payment method %q", req.PaymentMethod)
	}

	menu, err := s.store.GetMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	byID := make(map[string]models.MenuItem, len(menu))
	for _, m := range menu {
		byID[m.ID] = m
	}

	var cart Cart
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, invalid("quantity for %s must be positive", line.MenuItemID)
		}
		item, ok := byID[line.MenuItemID]
		if !ok {
			return nil, invalid("menu item %s not found", line.MenuItemID)
		}
		if !item.IsAvailable {
			return nil, invalid("%s is not available", item.Name)
		}
		cart.Add(item, line.Quantity)
	}

	total := cart.Total()
	paid := total
	if req.PaymentMethod == models.PaymentCash {
		paid = decimal.NewFromFloat(req.AmountPaid)
		if paid.LessThan(total) {
			return nil, invalid("amount paid %s is less than total %s", paid.String(), total.String())
		}
	}
	change := paid.Sub(total)

	now := s.now()
	order := models.Order{
		Items:           cart.OrderItems(),
		Total:           total.InexactFloat64(),
		AmountPaid:      paid.InexactFloat64(),
		Change:          change.InexactFloat64(),
		PaymentMethod:   req.PaymentMethod,
		CashierID:       cashierID,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerContact: strings.TrimSpace(req.CustomerContact),
		CreatedAt:       now.UTC(),
	}

	for attempt := 0; ; attempt++ {
		order.ID = orderID(now, attempt)
		order.OrderNumber = GenerateOrderNumber(now, s.suffix())

		report, err := s.AddOrder(ctx, order)
		if errors.Is(err, store.ErrDuplicate) && attempt+1 < maxOrderAttempts {
			s.logger.Debug("order number taken, drawing another",
				zap.String("order_number", order.OrderNumber), zap.Int("attempt", attempt+1))
			continue
		}
		if err != nil {
			return nil, err
		}
		return &CheckoutResult{Order: order, Change: order.Change, Deduction: report}, nil
	}
}

// orderID is order-{unix millis}; retries within the same millisecond get
// an attempt suffix.
func orderID(now time.Time, attempt int) string {
	if attempt == 0 {
		return fmt.Sprintf("order-%d", now.UnixMilli())
	}
	return fmt.Sprintf("order-%d-%d", now.UnixMilli(), attempt)
}

// AddOrder appends the order, then upserts the customer and deducts stock.
// Only a failure to store the order is returned.
func (s *OrderService) AddOrder(ctx context.Context, order models.Order) (inventory.Report, error) {
	if err := s.store.AddOrder(ctx, order); err != nil {
		return inventory.Report{}, fmt.Errorf("save order: %w", err)
	}
	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.Float64("total", order.Total),
		zap.String("payment_method", string(order.PaymentMethod)),
		zap.String("cashier_id", order.CashierID),
	)

	if order.CustomerName != "" && order.CustomerContact != "" && s.customers != nil {
		_, err := s.customers.RecordVisit(ctx, Visit{
			Name:    order.CustomerName,
			Contact: order.CustomerContact,
			Amount:  order.Total,
			At:      order.CreatedAt,
		})
		if err != nil {
			s.logger.Error("customer not updated", zap.String("order_id", order.ID), zap.Error(err))
		}
	}

	return s.deductStock(ctx, order), nil
}

func (s *OrderService) deductStock(ctx context.Context, order models.Order) inventory.Report {
	menu, err := s.store.GetMenuItems(ctx)
	if err != nil {
		s.logger.Error("stock not deducted: load menu", zap.String("order_id", order.ID), zap.Error(err))
		return inventory.Report{}
	}
	stock, err := s.store.GetInventoryItems(ctx)
	if err != nil {
		s.logger.Error("stock not deducted: load inventory", zap.String("order_id", order.ID), zap.Error(err))
		return inventory.Report{}
	}

	updated, report := s.engine.Deduct(order, menu, stock)
	if !report.Changed() {
		return report
	}
	if err := s.store.SetInventoryItems(ctx, updated); err != nil {
		s.logger.Error("stock not deducted: save inventory", zap.String("order_id", order.ID), zap.Error(err))
		return inventory.Report{Skipped: report.Skipped}
	}
	for _, d := range report.Deductions {
		s.logger.Debug("stock deducted",
			zap.String("order_id", order.ID),
			zap.String("inventory_id", d.InventoryID),
			zap.Float64("amount", d.Amount),
			zap.String("unit", d.Unit),
			zap.Float64("remaining", d.Remaining),
		)
	}
	return report
}

// List returns every order, newest first.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.store.GetOrders(ctx)
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	return s.store.GetOrderByID(ctx, id)
}
