package entity

import (
	"gorm.io/gorm"
)

// CartItem is one distinct menu item in a cart. Name, price and restaurant
// are snapshotted at add time so later menu edits do not reprice the cart.
// Qty is always > 0; a line reduced to zero is deleted, not kept.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`

	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Qty       int    `json:"qty"`

	RestaurantID   uint   `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
}
