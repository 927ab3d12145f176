package services

import (
	"foodcourt/entity"
)

// Pricing policy constants (currency units).
const (
	TaxRatePercent        = 5      // 5% of subtotal
	PercentageDiscountCap = 20000  // cap for percentage coupons
	DeliveryFee           = 15000  // flat fee below the free-delivery line
	FreeDeliveryMin       = 150000 // subtotal at which delivery is free
)

// Quote is the derived pricing of a cart. CouponDropped is set when the
// coupon's minimum is no longer met: the discount is forced to zero and the
// caller is expected to detach the stored coupon.
type Quote struct {
	Subtotal      int64 `json:"subtotal"`
	Discount      int64 `json:"discount"`
	Tax           int64 `json:"tax"`
	DeliveryFee   int64 `json:"deliveryFee"`
	GrandTotal    int64 `json:"grandTotal"`
	CouponDropped bool  `json:"-"`
}

// Subtotal sums unit price times quantity over the lines.
func Subtotal(items []entity.CartItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.UnitPrice * int64(it.Qty)
	}
	return sum
}

// PriceCart derives the totals for a cart. Pure: no IO, no mutation.
func PriceCart(items []entity.CartItem, coupon *entity.Coupon) Quote {
	q := Quote{Subtotal: Subtotal(items)}
	if len(items) == 0 {
		return q
	}

	// Coupon silently drops when the minimum is no longer met, e.g. items
	// were removed after applying.
	if coupon != nil && q.Subtotal < coupon.MinSubtotal {
		coupon = nil
		q.CouponDropped = true
	}

	if coupon != nil {
		switch coupon.DiscountType {
		case entity.DiscountPercentage:
			d := q.Subtotal * coupon.DiscountValue / 100
			if d > PercentageDiscountCap {
				d = PercentageDiscountCap
			}
			q.Discount = d
		case entity.DiscountFlat:
			q.Discount = coupon.DiscountValue
		}
	}

	q.Tax = q.Subtotal * TaxRatePercent / 100

	if q.Subtotal < FreeDeliveryMin && (coupon == nil || !coupon.FreeDelivery) {
		q.DeliveryFee = DeliveryFee
	}

	q.GrandTotal = q.Subtotal + q.Tax + q.DeliveryFee - q.Discount
	if q.GrandTotal < 0 {
		q.GrandTotal = 0
	}
	return q
}
