package services

import (
	"foodcourt/entity"

	"gorm.io/gorm"
)

// Advance moves an order along the linear workflow. Only the owner of the
// order's restaurant may call it, and only the two legal edges pass:
// PENDING -> PREPARING and PREPARING -> DELIVERED. The write is guarded on
// the previously read status, so a concurrent advance (double click) makes
// the second attempt fail instead of skipping a step.
func (s *OrderService) Advance(ownerID, orderID uint, to entity.OrderStatus) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}

	ok, err := s.RestRepo.IsOwnedBy(o.RestaurantID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return entity.ErrNotAuthorized
	}

	if !o.Status.CanTransitionTo(to) {
		return &entity.IllegalTransitionError{From: o.Status, To: to}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return &entity.IllegalTransitionError{From: o.Status, To: to}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notify(o.UserID, o.RestaurantID)
	return nil
}

// OwnerAccept starts preparation of a pending order.
func (s *OrderService) OwnerAccept(ownerID, orderID uint) error {
	return s.Advance(ownerID, orderID, entity.StatusPreparing)
}

// OwnerComplete marks a preparing order delivered.
func (s *OrderService) OwnerComplete(ownerID, orderID uint) error {
	return s.Advance(ownerID, orderID, entity.StatusDelivered)
}
