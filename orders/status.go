package orders

import (
	"github.com/onlinestore/backend/apperr"
	"github.com/onlinestore/backend/auth"
	"github.com/onlinestore/backend/models"
	"github.com/onlinestore/backend/storage"
)

// UpdateStatus applies the order status lifecycle rules: an admin may set
// any valid status, a customer may only cancel their own order while it is
// not already in a terminal state. Cancelling does not restock the order's
// items; inventory is reconciled outside this flow.
func (s *Service) UpdateStatus(caller auth.Identity, orderID uint, status models.OrderStatus) error {
	if !status.Valid() {
		return apperr.Validation("Invalid order status. Must be between 1 (Pending) and 6 (Completed)")
	}

	order, err := s.store.FindOrder(orderID)
	if err != nil {
		if storage.IsNotFound(err) {
			return apperr.NotFound("Order with ID %d not found", orderID)
		}
		return apperr.Persistence(err, "failed to look up order %d", orderID)
	}

	if !caller.IsAdmin() {
		if order.CustomerID != caller.CustomerID {
			return apperr.Forbidden("You can only update your own orders")
		}
		if status != models.OrderCancelled {
			return apperr.Forbidden("Customers may only cancel orders")
		}
		if order.Status.Terminal() {
			return apperr.Validation("Order is already %s and cannot be cancelled", order.Status)
		}
	}

	order.Status = status
	if err := s.store.SaveOrder(order); err != nil {
		return apperr.Persistence(err, "failed to update order %d", orderID)
	}
	return nil
}
