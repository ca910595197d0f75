package controllers

import (
	"net/http"
	"strconv"

	"github.com/SBP359/MyNutriMate/models"
	"github.com/SBP359/MyNutriMate/services"

	"github.com/gin-gonic/gin"
)

func ListGroceryItems(c *gin.Context) {
	items, err := services.ListGroceryItems(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

type GroceryItemInput struct {
	ProductName string           `json:"product_name" binding:"required"`
	BrandName   string           `json:"brand_name"`
	Nutrition   models.Nutrition `json:"nutrition"`
}

func AddGroceryItem(c *gin.Context) {
	var input GroceryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := services.AddGroceryItem(c.GetUint("userID"), input.ProductName, input.BrandName, input.Nutrition)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func SetGroceryItemPurchased(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var input struct {
		Purchased bool `json:"purchased"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SetGroceryItemPurchased(c.GetUint("userID"), uint(id), input.Purchased); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item updated"})
}

func DeleteGroceryItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	if err := services.DeleteGroceryItem(c.GetUint("userID"), uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}
