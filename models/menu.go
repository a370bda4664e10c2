package models

import "time"

// Menu categories the kitchen actually serves
const (
	CategoryAppetizers  = "Appetizers"
	CategoryMainCourses = "Main Courses"
	CategoryDesserts    = "Desserts"
	CategoryBeverages   = "Beverages"
	CategorySpecials    = "Specials"
)

// ValidCategories is the set of accepted menu categories
var ValidCategories = map[string]bool{
	CategoryAppetizers:  true,
	CategoryMainCourses: true,
	CategoryDesserts:    true,
	CategoryBeverages:   true,
	CategorySpecials:    true,
}

// DefaultImageURL is used when a menu item is created without an image
const DefaultImageURL = "https://placehold.co/400x300/FEE2E2/B91C1C?text=Food+Item"

type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null"`
	ImageURL    string    `json:"image_url"`
	Available   bool      `json:"available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
