package statemachine

import "restaurant-api/models"

// reservationFlow is the nominal reservation lifecycle. cancelled and
// completed are terminal for non-admin actors.
var reservationFlow = map[models.ReservationStatus][]models.ReservationStatus{
	models.ReservationPending:   {models.ReservationConfirmed, models.ReservationCancelled},
	models.ReservationConfirmed: {models.ReservationCancelled, models.ReservationCompleted},
	models.ReservationCancelled: {},
	models.ReservationCompleted: {},
}

// ValidReservationStatus reports whether s is a known reservation status
func ValidReservationStatus(s models.ReservationStatus) bool {
	_, ok := reservationFlow[s]
	return ok
}

// NextReservationStatuses returns the nominal next states from a given state
func NextReservationStatuses(from models.ReservationStatus) []models.ReservationStatus {
	return reservationFlow[from]
}

// CanSetReservationStatus decides whether the caller may move a reservation
// to the requested status. The owner may only cancel; an admin may set any
// known status, including reopening a cancelled or completed reservation.
func CanSetReservationStatus(callerID uint, isAdmin bool, resv *models.Reservation, to models.ReservationStatus) Decision {
	if !ValidReservationStatus(to) {
		return Deny("unknown reservation status: " + string(to))
	}
	if isAdmin {
		return Allow()
	}
	if resv.UserID != callerID {
		return Deny("this reservation does not belong to you")
	}
	if to != models.ReservationCancelled {
		return Deny("you may only cancel your reservation")
	}
	return Allow()
}

// CanViewReservation decides whether the caller may read a reservation: the
// owner or any admin.
func CanViewReservation(callerID uint, isAdmin bool, resv *models.Reservation) Decision {
	if isAdmin || resv.UserID == callerID {
		return Allow()
	}
	return Deny("this reservation does not belong to you")
}
