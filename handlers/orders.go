package handlers

import (
	"fmt"
	"net/http"

	"restaurant-api/config"
	"restaurant-api/logger"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/statemachine"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	OrderType       models.OrderType `json:"order_type" binding:"required,oneof=delivery pickup"`
	DeliveryAddress string           `json:"delivery_address"`
	Items           []struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// PlaceOrder creates a new order for the caller. Every line is validated
// and priced before anything is written: if any referenced menu item is
// missing or unavailable the whole order is rejected and nothing persists.
func PlaceOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.OrderType == models.TypeDelivery && req.DeliveryAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery address is required for delivery orders"})
		return
	}

	// Validate every line and snapshot name/price before persisting.
	var orderItems []models.OrderItem
	var total float64
	for _, reqItem := range req.Items {
		var menuItem models.MenuItem
		if err := config.DB.First(&menuItem, reqItem.MenuItemID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Menu item not found: %d", reqItem.MenuItemID)})
			return
		}
		if !menuItem.Available {
			c.JSON(http.StatusBadRequest, gin.H{"error": menuItem.Name + " is currently not available"})
			return
		}
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Price:      menuItem.Price,
			Quantity:   reqItem.Quantity,
		})
		total += menuItem.Price * float64(reqItem.Quantity)
	}

	order := models.Order{
		UserID:          userID,
		Items:           orderItems,
		TotalAmount:     total,
		OrderType:       req.OrderType,
		DeliveryAddress: req.DeliveryAddress,
		Status:          models.OrderPending,
	}
	if req.OrderType == models.TypePickup {
		order.DeliveryAddress = ""
	}

	// Order and its items go in together; gorm wraps this in a transaction.
	if err := config.DB.Create(&order).Error; err != nil {
		logger.Get().Errorw("order create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// GetMyOrders returns the caller's orders, newest first
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetAllOrders returns every order — admin only
func GetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("Items").Preload("User")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrder returns a single order. The owner may fetch their own; an admin
// may fetch any.
func GetOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items").Preload("User").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	decision := statemachine.CanViewOrder(middleware.GetUserID(c), middleware.IsAdmin(c), &order)
	if !decision.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": decision.Reason})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// UpdateOrderStatus changes an order's status — admin only
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !statemachine.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status: " + string(req.Status)})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	decision := statemachine.CanSetOrderStatus(middleware.IsAdmin(c), req.Status)
	if !decision.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": decision.Reason})
		return
	}

	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		logger.Get().Errorw("order status update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	order.Status = req.Status
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// DeleteOrder removes an order — admin only
func DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err := config.DB.Select("Items").Delete(&order).Error; err != nil {
		logger.Get().Errorw("order delete failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order removed"})
}
