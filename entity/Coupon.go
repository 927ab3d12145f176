package entity

import (
	"gorm.io/gorm"
)

// DiscountType is the closed set of coupon kinds.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

// Coupon is admin-managed reference data. Codes are unique and matched
// case-insensitively; at most one coupon is applied to a cart at a time.
type Coupon struct {
	gorm.Model
	Code          string       `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Label         string       `json:"label"`
	DiscountType  DiscountType `gorm:"not null" json:"discountType"`
	DiscountValue int64        `json:"discountValue"`
	MinSubtotal   int64        `json:"minSubtotal"`
	FreeDelivery  bool         `json:"freeDelivery"`
}
