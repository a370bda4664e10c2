package handlers

import (
	"net/http"
	"time"

	"restaurant-api/config"
	"restaurant-api/logger"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/statemachine"

	"github.com/gin-gonic/gin"
)

type CreateReservationRequest struct {
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Guests          int    `json:"guests" binding:"required,min=1"`
	SpecialRequests string `json:"special_requests"`
}

type UpdateReservationRequest struct {
	Status models.ReservationStatus `json:"status" binding:"required"`
}

// CreateReservation books a table for the caller. No capacity check is
// performed: any number of reservations may exist for the same date and time.
func CreateReservation(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	resv := models.Reservation{
		UserID:          userID,
		Date:            date,
		Time:            req.Time,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		Status:          models.ReservationPending,
	}
	if err := config.DB.Create(&resv).Error; err != nil {
		logger.Get().Errorw("reservation create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reservation": resv})
}

// GetMyReservations returns the caller's reservations ordered by date and time
func GetMyReservations(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var reservations []models.Reservation
	config.DB.Where("user_id = ?", userID).
		Order("date asc, time asc").
		Find(&reservations)
	c.JSON(http.StatusOK, gin.H{"count": len(reservations), "reservations": reservations})
}

// GetAllReservations returns every reservation — admin only
func GetAllReservations(c *gin.Context) {
	var reservations []models.Reservation
	query := config.DB.Preload("User")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("date asc, time asc").Find(&reservations)
	c.JSON(http.StatusOK, gin.H{"count": len(reservations), "reservations": reservations})
}

// GetReservation returns a single reservation. The owner may fetch their
// own; an admin may fetch any.
func GetReservation(c *gin.Context) {
	var resv models.Reservation
	if err := config.DB.First(&resv, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}

	decision := statemachine.CanViewReservation(middleware.GetUserID(c), middleware.IsAdmin(c), &resv)
	if !decision.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": decision.Reason})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": resv})
}

// UpdateReservation changes a reservation's status. The owner may only
// cancel; an admin may set any status.
func UpdateReservation(c *gin.Context) {
	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !statemachine.ValidReservationStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown reservation status: " + string(req.Status)})
		return
	}

	var resv models.Reservation
	if err := config.DB.First(&resv, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}

	decision := statemachine.CanSetReservationStatus(middleware.GetUserID(c), middleware.IsAdmin(c), &resv, req.Status)
	if !decision.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": decision.Reason})
		return
	}

	if err := config.DB.Model(&resv).Update("status", req.Status).Error; err != nil {
		logger.Get().Errorw("reservation status update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation"})
		return
	}
	resv.Status = req.Status
	c.JSON(http.StatusOK, gin.H{"reservation": resv})
}

// DeleteReservation removes a reservation — admin only
func DeleteReservation(c *gin.Context) {
	var resv models.Reservation
	if err := config.DB.First(&resv, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}
	if err := config.DB.Delete(&resv).Error; err != nil {
		logger.Get().Errorw("reservation delete failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reservation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation removed"})
}
