package handlers

import (
	"net/http"

	"restaurant-api/models"
	"restaurant-api/statemachine"

	"github.com/gin-gonic/gin"
)

// Health is a liveness endpoint
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Restaurant Ordering & Reservation API",
		"version": "1.0.0",
	})
}

// Welcome greets at the root path
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Restaurant Ordering & Reservation API",
		"docs":    "/api/lifecycle",
		"health":  "/health",
	})
}

// GetLifecycleInfo publishes the nominal order and reservation lifecycles.
// Informational: admins may move either status outside these chains.
func GetLifecycleInfo(c *gin.Context) {
	orderFlow := gin.H{}
	for _, from := range []models.OrderStatus{
		models.OrderPending, models.OrderConfirmed, models.OrderPreparing,
		models.OrderOutForDelivery, models.OrderReadyForPickup,
		models.OrderCompleted, models.OrderCancelled,
	} {
		orderFlow[string(from)] = statemachine.NextOrderStatuses(from)
	}

	reservationFlow := gin.H{}
	for _, from := range []models.ReservationStatus{
		models.ReservationPending, models.ReservationConfirmed,
		models.ReservationCancelled, models.ReservationCompleted,
	} {
		reservationFlow[string(from)] = statemachine.NextReservationStatuses(from)
	}

	c.JSON(http.StatusOK, gin.H{
		"order_lifecycle":       orderFlow,
		"reservation_lifecycle": reservationFlow,
		"notes": []string{
			"order status is changed by admins only",
			"reservation owners may only cancel; admins may set any status",
		},
	})
}
