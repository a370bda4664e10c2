package handlers

import (
	"net/http"

	"restaurant-api/config"
	"restaurant-api/logger"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Category    string  `json:"category" binding:"required"`
	ImageURL    string  `json:"image_url"`
	Available   *bool   `json:"available"`
}

type UpdateMenuItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	Available   *bool    `json:"available"`
}

// ListMenu returns all menu items (public)
func ListMenu(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if available := c.Query("available"); available == "true" {
		query = query.Where("available = ?", true)
	}

	query.Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// GetMenuItem returns a single menu item (public)
func GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// CreateMenuItem adds a new catalog entry — admin only
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCategories[req.Category] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category. Must be: Appetizers, Main Courses, Desserts, Beverages, or Specials"})
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Available:   true,
	}
	if item.ImageURL == "" {
		item.ImageURL = models.DefaultImageURL
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := config.DB.Create(&item).Error; err != nil {
		logger.Get().Errorw("menu item create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// UpdateMenuItem partially updates a catalog entry — admin only.
// Omitted fields keep their current value.
func UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Category != "" && !models.ValidCategories[req.Category] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category. Must be: Appetizers, Main Courses, Desserts, Beverages, or Specials"})
		return
	}
	if req.Price != nil && *req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be non-negative"})
		return
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.ImageURL != "" {
		item.ImageURL = req.ImageURL
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := config.DB.Save(&item).Error; err != nil {
		logger.Get().Errorw("menu item update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteMenuItem removes a catalog entry — admin only. Orders keep their
// snapshotted name and price, so deletion never touches order history.
func DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		logger.Get().Errorw("menu item delete failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item removed"})
}
