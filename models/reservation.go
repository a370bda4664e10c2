package models

import "time"

// ReservationStatus represents all possible states of a table reservation
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

type Reservation struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	UserID          uint              `json:"user_id" gorm:"not null"`
	User            User              `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Date            time.Time         `json:"date" gorm:"not null"`
	Time            string            `json:"time" gorm:"not null"` // e.g. "19:00"
	Guests          int               `json:"guests" gorm:"not null"`
	SpecialRequests string            `json:"special_requests"`
	Status          ReservationStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
