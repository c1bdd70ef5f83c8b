package models

import "time"

// Category groups menu items on the POS screen
type Category string

const (
	CategoryMainCourse Category = "main_course"
	CategorySideDish   Category = "side_dish"
	CategoryBeverage   Category = "beverage"
	CategoryDessert    Category = "dessert"
)

// Categories is the fixed category vocabulary, in display order.
var Categories = []Category{CategoryMainCourse, CategorySideDish, CategoryBeverage, CategoryDessert}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// RecipeEntry says how much of one inventory item a single unit of a menu
// item consumes. Unit is the recipe's unit and may differ from the unit the
// inventory item is stocked in.
type RecipeEntry struct {
	InventoryID string  `json:"inventory_id"`
	Amount      float64 `json:"amount"`
	Unit        string  `json:"unit"`
}

type MenuItem struct {
	ID          string        `json:"id" gorm:"primaryKey"`
	Name        string        `json:"name" gorm:"not null"`
	Price       float64       `json:"price" gorm:"not null"`
	Category    Category      `json:"category" gorm:"index;not null"`
	ImageURL    *string       `json:"image_url"`
	Description *string       `json:"description"`
	IsAvailable bool          `json:"is_available" gorm:"not null"`
	Recipe      []RecipeEntry `json:"recipe,omitempty" gorm:"serializer:json"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// HasRecipe reports whether selling the item consumes any stock.
func (m MenuItem) HasRecipe() bool {
	return len(m.Recipe) > 0
}

// Clone returns a copy that shares no slices or pointers with m.
func (m MenuItem) Clone() MenuItem {
	out := m
	if m.Recipe != nil {
		out.Recipe = append([]RecipeEntry(nil), m.Recipe...)
	}
	if m.ImageURL != nil {
		v := *m.ImageURL
		out.ImageURL = &v
	}
	if m.Description != nil {
		v := *m.Description
		out.Description = &v
	}
	return out
}
