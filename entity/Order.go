package entity

import (
	"gorm.io/gorm"
)

// Order is the durable per-restaurant record cut from a cart at checkout.
// A multi-restaurant cart produces one Order per restaurant; TotalAmount is
// that restaurant's line subtotal only (cart-level discount/tax/fee are not
// attributed per restaurant). Status is written only by the owning
// restaurant's account; an order is never deleted or reassigned.
type Order struct {
	gorm.Model
	Reference   string      `gorm:"size:36;uniqueIndex" json:"reference"`
	TotalAmount int64       `json:"totalAmount"`
	Status      OrderStatus `gorm:"not null;default:PENDING" json:"status"`

	UserID       uint   `json:"userId"`
	User         User   `json:"-"`
	CustomerName string `json:"customerName"`

	RestaurantID   uint       `json:"restaurantId"`
	Restaurant     Restaurant `json:"-"`
	RestaurantName string     `json:"restaurantName"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
