package services

import (
	"errors"
	"strings"

	"github.com/SBP359/MyNutriMate/config"
	"github.com/SBP359/MyNutriMate/models"
)

func ListGroceryItems(userID uint) ([]models.GroceryItem, error) {
	var items []models.GroceryItem
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// AddGroceryItem saves a scanned product with its nutrition snapshot.
func AddGroceryItem(userID uint, productName, brandName string, nutrition models.Nutrition) (*models.GroceryItem, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, errors.New("product name is required")
	}
	item := models.GroceryItem{
		UserID:      userID,
		ProductName: productName,
		BrandName:   brandName,
		Nutrition:   nutrition,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func SetGroceryItemPurchased(userID, itemID uint, purchased bool) error {
	res := config.DB.Model(&models.GroceryItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("is_purchased", purchased)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("item not found")
	}
	return nil
}

func DeleteGroceryItem(userID, itemID uint) error {
	res := config.DB.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.GroceryItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("item not found")
	}
	return nil
}
