package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"restaurant-pos/models"
	"restaurant-pos/store"

	"go.uber.org/zap"
)

type SettingsInput struct {
	RestaurantName     string
	Address            string
	Phone              string
	Email              string
	TaxRate            float64
	LogoURL            *string
	ShowLogo           bool
	ShowTaxDetails     bool
	ReceiptFooter      string
	PrintAutomatically bool
}

// SettingsService reads and replaces the restaurant and receipt settings.
type SettingsService struct {
	repo   store.SettingsRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewSettingsService(repo store.SettingsRepository, logger *zap.Logger) *SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{repo: repo, logger: logger, now: time.Now}
}

// Get returns the saved settings, or the defaults when none were saved yet.
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if errors.Is(err, store.ErrNotFound) {
		defaults := models.DefaultSettings()
		return &defaults, nil
	}
	return settings, err
}

func (s *SettingsService) Update(ctx context.Context, in SettingsInput) (*models.Settings, error) {
	email := strings.TrimSpace(in.Email)
	switch {
	case strings.TrimSpace(in.RestaurantName) == "":
		return nil, invalid("restaurant name is required")
	case in.TaxRate < 0 || in.TaxRate > 100:
		return nil, invalid("tax rate must be between 0 and 100")
	case email != "" && !strings.Contains(email, "@"):
		return nil, invalid("invalid email %q", email)
	}

	settings := models.Settings{
		RestaurantName:     strings.TrimSpace(in.RestaurantName),
		Address:            strings.TrimSpace(in.Address),
		Phone:              strings.TrimSpace(in.Phone),
		Email:              email,
		TaxRate:            in.TaxRate,
		LogoURL:            in.LogoURL,
		ShowLogo:           in.ShowLogo,
		ShowTaxDetails:     in.ShowTaxDetails,
		ReceiptFooter:      in.ReceiptFooter,
		PrintAutomatically: in.PrintAutomatically,
		UpdatedAt:          s.now().UTC(),
	}
	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}
	s.logger.Info("settings updated", zap.Float64("tax_rate", settings.TaxRate))
	return &settings, nil
}
