package configs

import (
	"foodcourt/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{}, &entity.PasswordReset{},
		&entity.Restaurant{}, &entity.Menu{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Coupon{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
