package models

import "gorm.io/gorm"

// GroceryItem is a scanned product saved to the shopping list, with
// the nutrition snapshot taken at scan time.
type GroceryItem struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	ProductName string    `gorm:"not null" json:"product_name"`
	BrandName   string    `json:"brand_name"`
	Nutrition   Nutrition `gorm:"embedded" json:"nutrition"`
	IsPurchased bool      `gorm:"default:false" json:"is_purchased"`
}
