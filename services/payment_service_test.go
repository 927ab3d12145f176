package services

import (
	"errors"
	"testing"

	"foodcourt/entity"
)

func TestPaymentConfirm(t *testing.T) {
	svc := NewPaymentService()

	if err := svc.Confirm(89500, 89500); err != nil {
		t.Fatalf("exact amount should pass, got %v", err)
	}

	for _, entered := range []int64{89499, 89501, 0, -89500} {
		err := svc.Confirm(89500, entered)
		var mismatch *entity.AmountMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("Confirm(89500, %d) = %v, want AmountMismatchError", entered, err)
		}
		if mismatch.Expected != 89500 {
			t.Errorf("expected = %d, want 89500", mismatch.Expected)
		}
	}
}
