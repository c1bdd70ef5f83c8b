package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-pos/models"
	"restaurant-pos/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Visit is one paid order attributed to a customer.
type Visit struct {
	Name    string
	Contact string
	Amount  float64
	Notes   string
	At      time.Time
}

// CustomerInput is a manual edit from the customers screen.
type CustomerInput struct {
	Name       string
	Contact    string
	Notes      string
	VisitCount int
	TotalSpent float64
}

type CustomerService struct {
	repo   store.CustomerRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewCustomerService(repo store.CustomerRepository, logger *zap.Logger) *CustomerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerService{repo: repo, logger: logger, now: time.Now}
}

func (s *CustomerService) lookup(ctx context.Context, contact string) (*models.Customer, error) {
	existing, err := s.repo.GetCustomerByContact(ctx, contact)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return existing, err
}

// RecordVisit upserts the customer keyed by contact. A returning customer
// gets one more visit and the amount added to their running spend; the
// latest name and visit snapshot overwrite the old ones.
func (s *CustomerService) RecordVisit(ctx context.Context, v Visit) (*models.Customer, error) {
	name := strings.TrimSpace(v.Name)
	contact := strings.TrimSpace(v.Contact)
	if name == "" || contact == "" {
		return nil, invalid("customer name and contact are required")
	}
	at := v.At
	if at.IsZero() {
		at = s.now()
	}

	existing, err := s.lookup(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("look up customer: %w", err)
	}

	var c models.Customer
	if existing == nil {
		c = models.Customer{
			ID:         uuid.NewString(),
			Contact:    contact,
			VisitCount: 1,
			TotalSpent: v.Amount,
			CreatedAt:  at.UTC(),
		}
	} else {
		c = *existing
		c.VisitCount++
		c.TotalSpent = decimal.NewFromFloat(c.TotalSpent).Add(decimal.NewFromFloat(v.Amount)).InexactFloat64()
	}
	c.Name = name
	c.LastVisitDate = at.UTC()
	c.LastTransactionAmount = v.Amount
	if notes := strings.TrimSpace(v.Notes); notes != "" {
		c.Notes = notes
	}
	c.UpdatedAt = at.UTC()

	if err := s.repo.SaveCustomer(ctx, c); err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}
	return &c, nil
}

// Save writes a manual edit. Counters are replaced, never incremented.
func (s *CustomerService) Save(ctx context.Context, in CustomerInput) (*models.Customer, error) {
	name := strings.TrimSpace(in.Name)
	contact := strings.TrimSpace(in.Contact)
	if name == "" || contact == "" {
		return nil, invalid("customer name and contact are required")
	}
	if in.VisitCount < 0 || in.TotalSpent < 0 {
		return nil, invalid("visit count and total spent cannot be negative")
	}

	existing, err := s.lookup(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("look up customer: %w", err)
	}
	now := s.now().UTC()

	var c models.Customer
	if existing == nil {
		c = models.Customer{ID: uuid.NewString(), Contact: contact, CreatedAt: now}
	} else {
		c = *existing
	}
	c.Name = name
	c.Notes = strings.TrimSpace(in.Notes)
	c.VisitCount = in.VisitCount
	c.TotalSpent = in.TotalSpent
	c.UpdatedAt = now

	if err := s.repo.SaveCustomer(ctx, c); err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}
	return &c, nil
}

// List returns every customer whose name or contact contains query.
// An empty query matches everyone.
func (s *CustomerService) List(ctx context.Context, query string) ([]models.Customer, error) {
	all, err := s.repo.GetCustomers(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}
	out := make([]models.Customer, 0, len(all))
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(c.Contact, q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	s.logger.Info("customer deleted", zap.String("customer_id", id))
	return nil
}
