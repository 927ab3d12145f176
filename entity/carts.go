package entity

import (
	"gorm.io/gorm"
)

// Cart is the per-customer working order. It survives sessions (DB-backed)
// and is emptied by checkout or an explicit clear. Lines from different
// restaurants may coexist; checkout fans them out per restaurant.
type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	CouponID *uint   `json:"couponId,omitempty"`
	Coupon   *Coupon `json:"coupon,omitempty"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
