package handlers_test

import (
	"fmt"
	"testing"

	"restaurant-api/config"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrder(t *testing.T, r *gin.Engine, token string, body gin.H) map[string]any {
	t.Helper()
	w := doRequest(r, "POST", "/api/orders", token, body)
	require.Equal(t, 201, w.Code, w.Body.String())
	return parseBody(t, w)["order"].(map[string]any)
}

func TestPlaceOrderSnapshotsPrices(t *testing.T) {
	r := setupRouter(t)
	adminToken := seedAdmin(t)
	tea := seedMenuItem(t, "Tea", 3, models.CategoryBeverages, true)
	userToken, _ := registerUser(t, r, "bob", "bob@example.com", "secret123")

	order := placeOrder(t, r, userToken, gin.H{
		"order_type": "pickup",
		"items":      []gin.H{{"menu_item_id": tea.ID, "quantity": 2}},
	})
	orderID := uint(order["id"].(float64))
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, 6.0, order["total_amount"])

	items := order["items"].([]any)
	require.Len(t, items, 1)
	line := items[0].(map[string]any)
	assert.Equal(t, "Tea", line["name"])
	assert.Equal(t, 3.0, line["price"])
	assert.Equal(t, float64(2), line["quantity"])

	// Raising the catalog price never touches the frozen total
	w := doRequest(r, "PUT", fmt.Sprintf("/api/menu/%d", tea.ID), adminToken, gin.H{"price": 9.0})
	require.Equal(t, 200, w.Code)

	w = doRequest(r, "GET", fmt.Sprintf("/api/orders/item/%d", orderID), userToken, nil)
	require.Equal(t, 200, w.Code)
	reread := parseBody(t, w)["order"].(map[string]any)
	assert.Equal(t, 6.0, reread["total_amount"])

	// Neither does deleting the menu item
	w = doRequest(r, "DELETE", fmt.Sprintf("/api/menu/%d", tea.ID), adminToken, nil)
	require.Equal(t, 200, w.Code)
	w = doRequest(r, "GET", fmt.Sprintf("/api/orders/item/%d", orderID), userToken, nil)
	require.Equal(t, 200, w.Code)
	reread = parseBody(t, w)["order"].(map[string]any)
	assert.Equal(t, 6.0, reread["total_amount"])
	assert.Equal(t, "Tea", reread["items"].([]any)[0].(map[string]any)["name"])
}

func TestPlaceOrderAllOrNothing(t *testing.T) {
	r := setupRouter(t)
	tea := seedMenuItem(t, "Tea", 3, models.CategoryBeverages, true)
	soup := seedMenuItem(t, "Soup", 5, models.CategoryAppetizers, false)
	userToken, _ := registerUser(t, r, "bob", "bob@example.com", "secret123")

	// Second line references a nonexistent item
	w := doRequest(r, "POST", "/api/orders", userToken, gin.H{
		"order_type": "pickup",
		"items": []gin.H{
			{"menu_item_id": tea.ID, "quantity": 1},
			{"menu_item_id": 999, "quantity": 1},
		},
	})
	assert.Equal(t, 404, w.Code)

	// Second line references an unavailable item
	w = doRequest(r, "POST", "/api/orders", userToken, gin.H{
		"order_type": "pickup",
		"items": []gin.H{
			{"menu_item_id": tea.ID, "quantity": 1},
			{"menu_item_id": soup.ID, "quantity": 1},
		},
	})
	assert.Equal(t, 400, w.Code)

	// No order and no orphaned lines were persisted
	var orders, lines int64
	config.DB.Model(&models.Order{}).Count(&orders)
	config.DB.Model(&models.OrderItem{}).Count(&lines)
	assert.Equal(t, int64(0), orders)
	assert.Equal(t, int64(0), lines)
}

func TestPlaceOrderValidation(t *testing.T) {
	r := setupRouter(t)
	tea := seedMenuItem(t, "Tea", 3, models.CategoryBeverages, true)
	userToken, _ := registerUser(t, r, "bob", "bob@example.com", "secret123")

	// Empty item list
	w := doRequest(r, "POST", "/api/orders", userToken, gin.H{
		"order_type": "pickup",
		"items":      []gin.H{},
	})
	assert.Equal(t, 400, w.Code)

	// Delivery with no address
	w = doRequest(r, "POST", "/api/orders", userToken, gin.H{
		"order_type": "delivery",
		"items":      []gin.H{{"menu_item_id": tea.ID, "quantity": 1}},
	})
	assert.Equal(t, 400, w.Code)

	// Quantity below one
	w = doRequest(r, "POST", "/api/orders", userToken, gin.H{
		"order_type": "pickup",
		"items":      []gin.H{{"menu_item_id": tea.ID, "quantity": 0}},
	})
	assert.Equal(t, 400, w.Code)

	// Unknown order type
	w = doRequest(r, "POST", "/api/orders", userToken, gin.H{
		"order_type": "dine_in",
		"items":      []gin.H{{"menu_item_id": tea.ID, "quantity": 1}},
	})
	assert.Equal(t, 400, w.Code)

	// Delivery with an address is fine
	order := placeOrder(t, r, userToken, gin.H{
		"order_type":       "delivery",
		"delivery_address": "42 Main St",
		"items":            []gin.H{{"menu_item_id": tea.ID, "quantity": 1}},
	})
	assert.Equal(t, "42 Main St", order["delivery_address"])
}

func TestOrderOwnership(t *testing.T) {
	r := setupRouter(t)
	adminToken := seedAdmin(t)
	tea := seedMenuItem(t, "Tea", 3, models.CategoryBeverages, true)
	bobToken, _ := registerUser(t, r, "bob", "bob@example.com", "secret123")
	eveToken, _ := registerUser(t, r, "eve", "eve@example.com", "secret123")

	order := placeOrder(t, r, bobToken, gin.H{
		"order_type": "pickup",
		"items":      []gin.H{{"menu_item_id": tea.ID, "quantity": 1}},
	})
	orderID := uint(order["id"].(float64))
	path := fmt.Sprintf("/api/orders/item/%d", orderID)

	// Owner and admin may read it; another customer may not
	assert.Equal(t, 200, doRequest(r, "GET", path, bobToken, nil).Code)
	assert.Equal(t, 200, doRequest(r, "GET", path, adminToken, nil).Code)
	assert.Equal(t, 403, doRequest(r, "GET", path, eveToken, nil).Code)

	// /orders/my only lists the caller's own
	w := doRequest(r, "GET", "/api/orders/my", eveToken, nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, float64(0), parseBody(t, w)["count"])

	w = doRequest(r, "GET", "/api/orders/my", bobToken, nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, float64(1), parseBody(t, w)["count"])

	// Full listing is admin-only
	assert.Equal(t, 403, doRequest(r, "GET", "/api/orders", bobToken, nil).Code)
	w = doRequest(r, "GET", "/api/orders", adminToken, nil)
	require.Equal(t, 200, w.Code)

	// Unknown id
	assert.Equal(t, 404, doRequest(r, "GET", "/api/orders/item/999", adminToken, nil).Code)
}

func TestOrderStatusAdminOnly(t *testing.T) {
	r := setupRouter(t)
	adminToken := seedAdmin(t)
	tea := seedMenuItem(t, "Tea", 3, models.CategoryBeverages, true)
	bobToken, _ := registerUser(t, r, "bob", "bob@example.com", "secret123")

	order := placeOrder(t, r, bobToken, gin.H{
		"order_type": "pickup",
		"items":      []gin.H{{"menu_item_id": tea.ID, "quantity": 2}},
	})
	orderID := uint(order["id"].(float64))
	path := fmt.Sprintf("/api/orders/item/%d", orderID)

	// Admin may jump straight to completed
	w := doRequest(r, "PUT", path, adminToken, gin.H{"status": "completed"})
	require.Equal(t, 200, w.Code, w.Body.String())
	assert.Equal(t, "completed", parseBody(t, w)["order"].(map[string]any)["status"])

	// The owner may not move it back, or change status at all
	w = doRequest(r, "PUT", path, bobToken, gin.H{"status": "pending"})
	assert.Equal(t, 403, w.Code)

	// Unknown status is rejected even for admin
	w = doRequest(r, "PUT", path, adminToken, gin.H{"status": "vaporized"})
	assert.Equal(t, 400, w.Code)

	// Unknown id
	w = doRequest(r, "PUT", "/api/orders/item/999", adminToken, gin.H{"status": "confirmed"})
	assert.Equal(t, 404, w.Code)
}

func TestDeleteOrderAdminOnly(t *testing.T) {
	r := setupRouter(t)
	adminToken := seedAdmin(t)
	tea := seedMenuItem(t, "Tea", 3, models.CategoryBeverages, true)
	bobToken, _ := registerUser(t, r, "bob", "bob@example.com", "secret123")

	order := placeOrder(t, r, bobToken, gin.H{
		"order_type": "pickup",
		"items":      []gin.H{{"menu_item_id": tea.ID, "quantity": 1}},
	})
	path := fmt.Sprintf("/api/orders/item/%d", uint(order["id"].(float64)))

	assert.Equal(t, 403, doRequest(r, "DELETE", path, bobToken, nil).Code)
	assert.Equal(t, 200, doRequest(r, "DELETE", path, adminToken, nil).Code)
	assert.Equal(t, 404, doRequest(r, "GET", path, adminToken, nil).Code)
}
