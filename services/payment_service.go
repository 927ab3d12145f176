package services

import (
	"foodcourt/entity"
)

// PaymentService is the simulated confirmation gate in front of checkout:
// the user re-enters the grand total and must match it exactly. This is a
// placeholder, not a payment integration; nothing settles anywhere.
type PaymentService struct{}

func NewPaymentService() *PaymentService { return &PaymentService{} }

func (s *PaymentService) Confirm(expected, entered int64) error {
	if entered != expected {
		return &entity.AmountMismatchError{Expected: expected}
	}
	return nil
}
