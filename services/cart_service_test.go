package services

import (
	"errors"
	"testing"

	"foodcourt/entity"
)

func TestCartAddMergesLines(t *testing.T) {
	f := newFixture(t)
	svc := f.cartService()
	uid := f.customer.ID

	for i := 0; i < 3; i++ {
		if err := svc.Add(uid, f.whopper.ID); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if err := svc.Add(uid, f.fries.ID); err != nil {
		t.Fatalf("add: %v", err)
	}

	cart, q, err := svc.Get(uid)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("lines = %d, want 2 (same menu merges)", len(cart.Items))
	}

	byMenu := map[uint]entity.CartItem{}
	for _, it := range cart.Items {
		byMenu[it.MenuID] = it
	}
	if got := byMenu[f.whopper.ID].Qty; got != 3 {
		t.Errorf("whopper qty = %d, want 3", got)
	}
	if got := byMenu[f.fries.ID].Qty; got != 1 {
		t.Errorf("fries qty = %d, want 1", got)
	}

	// Snapshots carried from the menu.
	if byMenu[f.whopper.ID].UnitPrice != 45000 {
		t.Errorf("unit price snapshot = %d", byMenu[f.whopper.ID].UnitPrice)
	}
	if byMenu[f.whopper.ID].RestaurantName != "Burger House" {
		t.Errorf("restaurant snapshot = %q", byMenu[f.whopper.ID].RestaurantName)
	}

	if q.Subtotal != 3*45000+15000 {
		t.Errorf("subtotal = %d, want %d", q.Subtotal, 3*45000+15000)
	}
}

func TestCartAddUnavailableMenu(t *testing.T) {
	f := newFixture(t)
	off := entity.Menu{Name: "Seasonal", Price: 9000, Available: false, RestaurantID: f.burgerHouse.ID}
	if err := f.db.Create(&off).Error; err != nil {
		t.Fatal(err)
	}

	if err := f.cartService().Add(f.customer.ID, off.ID); err == nil {
		t.Fatal("adding an unavailable menu should fail")
	}
}

func TestCartUpdateQty(t *testing.T) {
	f := newFixture(t)
	svc := f.cartService()
	uid := f.customer.ID

	if err := svc.Add(uid, f.whopper.ID); err != nil {
		t.Fatal(err)
	}
	cart, _, _ := svc.Get(uid)
	itemID := cart.Items[0].ID

	t.Run("positive delta", func(t *testing.T) {
		if err := svc.UpdateQty(uid, itemID, 2); err != nil {
			t.Fatal(err)
		}
		cart, _, _ := svc.Get(uid)
		if cart.Items[0].Qty != 3 {
			t.Errorf("qty = %d, want 3", cart.Items[0].Qty)
		}
	})

	t.Run("unknown item is a no-op", func(t *testing.T) {
		if err := svc.UpdateQty(uid, 99999, 1); err != nil {
			t.Fatalf("unknown item should not error, got %v", err)
		}
	})

	t.Run("clamp removes the line", func(t *testing.T) {
		if err := svc.UpdateQty(uid, itemID, -10); err != nil {
			t.Fatal(err)
		}
		cart, q, _ := svc.Get(uid)
		if len(cart.Items) != 0 {
			t.Fatalf("line should be removed at qty <= 0, have %d lines", len(cart.Items))
		}
		if q.GrandTotal != 0 {
			t.Errorf("empty cart grandTotal = %d, want 0", q.GrandTotal)
		}
	})
}

func TestCartRemoveItemScopedToOwner(t *testing.T) {
	f := newFixture(t)
	svc := f.cartService()

	if err := svc.Add(f.customer.ID, f.whopper.ID); err != nil {
		t.Fatal(err)
	}
	cart, _, _ := svc.Get(f.customer.ID)
	itemID := cart.Items[0].ID

	// Another user cannot delete it.
	if err := svc.RemoveItem(f.owner.ID, itemID); err != nil {
		t.Fatal(err)
	}
	cart, _, _ = svc.Get(f.customer.ID)
	if len(cart.Items) != 1 {
		t.Fatal("foreign delete must not touch the line")
	}

	if err := svc.RemoveItem(f.customer.ID, itemID); err != nil {
		t.Fatal(err)
	}
	cart, _, _ = svc.Get(f.customer.ID)
	if len(cart.Items) != 0 {
		t.Fatal("owner delete should remove the line")
	}
}

func TestCartApplyCoupon(t *testing.T) {
	f := newFixture(t)
	svc := f.cartService()
	uid := f.customer.ID
	f.seedCoupon(t, entity.Coupon{
		Code: "FOOD50", DiscountType: entity.DiscountPercentage,
		DiscountValue: 50, MinSubtotal: 50000,
	})

	// 2x whopper = 90000
	for i := 0; i < 2; i++ {
		if err := svc.Add(uid, f.whopper.ID); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("unknown code", func(t *testing.T) {
		_, err := svc.ApplyCoupon(uid, "NOPE")
		if !errors.Is(err, entity.ErrCouponNotFound) {
			t.Fatalf("err = %v, want ErrCouponNotFound", err)
		}
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		coupon, err := svc.ApplyCoupon(uid, "food50")
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if coupon.Code != "FOOD50" {
			t.Errorf("code = %q", coupon.Code)
		}

		_, q, err := svc.Get(uid)
		if err != nil {
			t.Fatal(err)
		}
		if q.Discount != 20000 || q.Tax != 4500 || q.DeliveryFee != 15000 || q.GrandTotal != 89500 {
			t.Errorf("quote = %+v", q)
		}
	})

	t.Run("re-apply is idempotent", func(t *testing.T) {
		if _, err := svc.ApplyCoupon(uid, "FOOD50"); err != nil {
			t.Fatalf("re-apply: %v", err)
		}
	})

	t.Run("minimum not met", func(t *testing.T) {
		f.seedCoupon(t, entity.Coupon{
			Code: "BIGSPEND", DiscountType: entity.DiscountFlat,
			DiscountValue: 30000, MinSubtotal: 200000,
		})
		_, err := svc.ApplyCoupon(uid, "BIGSPEND")
		var minErr *entity.MinimumNotMetError
		if !errors.As(err, &minErr) {
			t.Fatalf("err = %v, want MinimumNotMetError", err)
		}
		if minErr.Shortfall != 110000 {
			t.Errorf("shortfall = %d, want 110000", minErr.Shortfall)
		}
		// The previous coupon stays attached after a failed apply.
		cart, _, _ := svc.Get(uid)
		if cart.Coupon == nil || cart.Coupon.Code != "FOOD50" {
			t.Error("failed apply must not detach the current coupon")
		}
	})
}

func TestCartCouponAutoDrops(t *testing.T) {
	f := newFixture(t)
	svc := f.cartService()
	uid := f.customer.ID
	f.seedCoupon(t, entity.Coupon{
		Code: "FOOD50", DiscountType: entity.DiscountPercentage,
		DiscountValue: 50, MinSubtotal: 50000,
	})

	for i := 0; i < 2; i++ {
		if err := svc.Add(uid, f.whopper.ID); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.ApplyCoupon(uid, "FOOD50"); err != nil {
		t.Fatal(err)
	}

	// Drop one whopper: subtotal 45000, below the 50000 minimum.
	cart, _, _ := svc.Get(uid)
	if err := svc.UpdateQty(uid, cart.Items[0].ID, -1); err != nil {
		t.Fatal(err)
	}

	cart, q, err := svc.Get(uid)
	if err != nil {
		t.Fatal(err)
	}
	if q.Discount != 0 {
		t.Errorf("discount = %d, want 0 after auto-drop", q.Discount)
	}
	if cart.CouponID != nil {
		t.Error("coupon should be detached from the stored cart")
	}

	// Detachment persisted, not just in the returned value.
	cart, _, _ = svc.Get(uid)
	if cart.CouponID != nil || cart.Coupon != nil {
		t.Error("auto-drop must persist")
	}
}

func TestCartClear(t *testing.T) {
	f := newFixture(t)
	svc := f.cartService()
	uid := f.customer.ID
	f.seedCoupon(t, entity.Coupon{
		Code: "FOOD50", DiscountType: entity.DiscountPercentage,
		DiscountValue: 50, MinSubtotal: 50000,
	})

	for i := 0; i < 2; i++ {
		if err := svc.Add(uid, f.whopper.ID); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.ApplyCoupon(uid, "FOOD50"); err != nil {
		t.Fatal(err)
	}

	if err := svc.Clear(uid); err != nil {
		t.Fatalf("clear: %v", err)
	}

	cart, q, err := svc.Get(uid)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 0 || cart.CouponID != nil {
		t.Errorf("cart not cleared: %d items, coupon %v", len(cart.Items), cart.CouponID)
	}
	if q != (Quote{}) {
		t.Errorf("cleared cart quote = %+v, want zero", q)
	}

	// Clearing an empty (or never created) cart is fine.
	if err := svc.Clear(f.owner.ID); err != nil {
		t.Fatalf("clear of absent cart: %v", err)
	}
}
