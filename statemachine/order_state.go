package statemachine

import "restaurant-api/models"

// orderFlow is the nominal order lifecycle. The fulfilment branch depends on
// order type: delivery orders go out_for_delivery, pickup orders go
// ready_for_pickup. Cancellation is reachable from every non-terminal state.
var orderFlow = map[models.OrderStatus][]models.OrderStatus{
	models.OrderPending:        {models.OrderConfirmed, models.OrderCancelled},
	models.OrderConfirmed:      {models.OrderPreparing, models.OrderCancelled},
	models.OrderPreparing:      {models.OrderOutForDelivery, models.OrderReadyForPickup, models.OrderCancelled},
	models.OrderOutForDelivery: {models.OrderCompleted, models.OrderCancelled},
	models.OrderReadyForPickup: {models.OrderCompleted, models.OrderCancelled},
	models.OrderCompleted:      {},
	models.OrderCancelled:      {},
}

// ValidOrderStatus reports whether s is a known order status
func ValidOrderStatus(s models.OrderStatus) bool {
	_, ok := orderFlow[s]
	return ok
}

// NextOrderStatuses returns the nominal next states from a given state.
// Informational only: admins are not held to this chain (see
// CanSetOrderStatus).
func NextOrderStatuses(from models.OrderStatus) []models.OrderStatus {
	return orderFlow[from]
}

// CanSetOrderStatus decides whether the caller may move an order to the
// requested status. Only admins change order status — there is no owner
// self-cancel path, unlike reservations. An admin may set any known status,
// including backward jumps; the nominal chain is published but not enforced.
func CanSetOrderStatus(isAdmin bool, to models.OrderStatus) Decision {
	if !ValidOrderStatus(to) {
		return Deny("unknown order status: " + string(to))
	}
	if !isAdmin {
		return Deny("only an admin may change order status")
	}
	return Allow()
}

// CanViewOrder decides whether the caller may read an order: the owner or
// any admin.
func CanViewOrder(callerID uint, isAdmin bool, order *models.Order) Decision {
	if isAdmin || order.UserID == callerID {
		return Allow()
	}
	return Deny("this order does not belong to you")
}
