package services

import (
	"testing"

	"foodcourt/entity"
)

func lines(pairs ...int64) []entity.CartItem {
	var items []entity.CartItem
	for i := 0; i < len(pairs); i += 2 {
		items = append(items, entity.CartItem{UnitPrice: pairs[i], Qty: int(pairs[i+1])})
	}
	return items
}

func TestPriceCartEmpty(t *testing.T) {
	q := PriceCart(nil, nil)
	if q != (Quote{}) {
		t.Fatalf("empty cart should price to zero, got %+v", q)
	}
}

func TestPriceCartNoCoupon(t *testing.T) {
	q := PriceCart(lines(45000, 2), nil)
	if q.Subtotal != 90000 {
		t.Errorf("subtotal = %d, want 90000", q.Subtotal)
	}
	if q.Discount != 0 {
		t.Errorf("discount = %d, want 0", q.Discount)
	}
	if q.Tax != 4500 {
		t.Errorf("tax = %d, want 4500", q.Tax)
	}
	if q.DeliveryFee != 15000 {
		t.Errorf("deliveryFee = %d, want 15000", q.DeliveryFee)
	}
	if q.GrandTotal != 109500 {
		t.Errorf("grandTotal = %d, want 109500", q.GrandTotal)
	}
}

func TestPriceCartPercentageCoupon(t *testing.T) {
	food50 := &entity.Coupon{
		Code:          "FOOD50",
		DiscountType:  entity.DiscountPercentage,
		DiscountValue: 50,
		MinSubtotal:   50000,
	}

	t.Run("capped at 20000", func(t *testing.T) {
		// 50% of 90000 is 45000, well above the cap.
		q := PriceCart(lines(45000, 2), food50)
		if q.Subtotal != 90000 || q.Discount != 20000 || q.Tax != 4500 || q.DeliveryFee != 15000 {
			t.Fatalf("quote = %+v", q)
		}
		if q.GrandTotal != 89500 {
			t.Errorf("grandTotal = %d, want 89500", q.GrandTotal)
		}
		if q.CouponDropped {
			t.Error("coupon should not be dropped")
		}
	})

	t.Run("under the cap", func(t *testing.T) {
		q := PriceCart(lines(30000, 2), food50) // 50% of 60000 = 30000 -> capped
		if q.Discount != 20000 {
			t.Errorf("discount = %d, want 20000", q.Discount)
		}
		twenty := &entity.Coupon{DiscountType: entity.DiscountPercentage, DiscountValue: 20}
		q = PriceCart(lines(30000, 2), twenty) // 20% of 60000 = 12000
		if q.Discount != 12000 {
			t.Errorf("discount = %d, want 12000", q.Discount)
		}
	})

	t.Run("drops below minimum", func(t *testing.T) {
		q := PriceCart(lines(45000, 1), food50) // subtotal 45000 < 50000
		if !q.CouponDropped {
			t.Fatal("coupon should be dropped")
		}
		if q.Discount != 0 {
			t.Errorf("discount = %d, want 0 after drop", q.Discount)
		}
		// 45000 + 2250 tax + 15000 fee
		if q.GrandTotal != 62250 {
			t.Errorf("grandTotal = %d, want 62250", q.GrandTotal)
		}
	})
}

func TestPriceCartFlatCoupon(t *testing.T) {
	flat := &entity.Coupon{DiscountType: entity.DiscountFlat, DiscountValue: 20000, MinSubtotal: 100000}

	q := PriceCart(lines(60000, 2), flat) // subtotal 120000
	if q.Discount != 20000 {
		t.Errorf("discount = %d, want 20000", q.Discount)
	}
	// 120000 + 6000 tax + 15000 fee - 20000
	if q.GrandTotal != 121000 {
		t.Errorf("grandTotal = %d, want 121000", q.GrandTotal)
	}
}

func TestPriceCartDeliveryFee(t *testing.T) {
	t.Run("waived above threshold", func(t *testing.T) {
		q := PriceCart(lines(75000, 2), nil) // subtotal 150000
		if q.DeliveryFee != 0 {
			t.Errorf("deliveryFee = %d, want 0 at the threshold", q.DeliveryFee)
		}
	})

	t.Run("waived by coupon", func(t *testing.T) {
		freedel := &entity.Coupon{DiscountType: entity.DiscountFlat, DiscountValue: 0, FreeDelivery: true, MinSubtotal: 80000}
		q := PriceCart(lines(45000, 2), freedel)
		if q.DeliveryFee != 0 {
			t.Errorf("deliveryFee = %d, want 0 with free-delivery coupon", q.DeliveryFee)
		}
		if q.Discount != 0 {
			t.Errorf("discount = %d, want 0", q.Discount)
		}
	})

	t.Run("dropped coupon does not waive", func(t *testing.T) {
		freedel := &entity.Coupon{DiscountType: entity.DiscountFlat, FreeDelivery: true, MinSubtotal: 80000}
		q := PriceCart(lines(30000, 1), freedel)
		if !q.CouponDropped {
			t.Fatal("coupon should be dropped")
		}
		if q.DeliveryFee != 15000 {
			t.Errorf("deliveryFee = %d, want 15000", q.DeliveryFee)
		}
	})
}

func TestPriceCartGrandTotalNeverNegative(t *testing.T) {
	huge := &entity.Coupon{DiscountType: entity.DiscountFlat, DiscountValue: 1000000}
	q := PriceCart(lines(10000, 1), huge)
	if q.GrandTotal != 0 {
		t.Errorf("grandTotal = %d, want floor at 0", q.GrandTotal)
	}
}

func TestSubtotal(t *testing.T) {
	if got := Subtotal(lines(45000, 2, 15000, 3)); got != 135000 {
		t.Errorf("subtotal = %d, want 135000", got)
	}
	if got := Subtotal(nil); got != 0 {
		t.Errorf("subtotal of empty = %d, want 0", got)
	}
}
