package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Description  string  `json:"description"`
	Cuisine      string  `json:"cuisine"`
	Image        string  `json:"image"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"deliveryTime"`

	UserID uint `json:"userId"` // owner (users.id)
	User   User `json:"-"`

	Menus  []Menu  `json:"menus,omitempty"`
	Orders []Order `json:"-"`
}
