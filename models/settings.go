package models

import "time"

// Settings holds the restaurant details and receipt preferences. There is
// only ever one row.
type Settings struct {
	ID                 uint      `json:"-" gorm:"primaryKey"`
	RestaurantName     string    `json:"restaurant_name" gorm:"not null"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	Email              string    `json:"email"`
	TaxRate            float64   `json:"tax_rate"` // percent
	LogoURL            *string   `json:"logo_url"`
	ShowLogo           bool      `json:"show_logo"`
	ShowTaxDetails     bool      `json:"show_tax_details"`
	ReceiptFooter      string    `json:"receipt_footer"`
	PrintAutomatically bool      `json:"print_automatically"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DefaultSettings is what an owner sees before saving anything.
func DefaultSettings() Settings {
	return Settings{
		RestaurantName:     "Restaurant Name",
		Address:            "123 Restaurant St, City",
		Phone:              "(123) 456-7890",
		Email:              "info@restaurant.com",
		TaxRate:            8.5,
		ShowLogo:           true,
		ShowTaxDetails:     true,
		ReceiptFooter:      "Thank you for your visit!\nPlease come again",
		PrintAutomatically: true,
	}
}

func (s Settings) Clone() Settings {
	out := s
	if s.LogoURL != nil {
		logo := *s.LogoURL
		out.LogoURL = &logo
	}
	return out
}
