package configs

import (
	"log"

	"foodcourt/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedCoupons loads the coupon reference set.
func SeedCoupons() error {
	db := DB()
	coupons := []entity.Coupon{
		{Code: "FOOD50", DiscountType: entity.DiscountPercentage, DiscountValue: 50, MinSubtotal: 50000, Label: "50% OFF up to Rp 20rb"},
		{Code: "WELCOME100", DiscountType: entity.DiscountFlat, DiscountValue: 20000, MinSubtotal: 100000, Label: "Flat Rp 20rb OFF"},
		{Code: "FREEDEL", DiscountType: entity.DiscountFlat, DiscountValue: 0, MinSubtotal: 80000, FreeDelivery: true, Label: "Free Delivery (Rp 15rb)"},
		{Code: "SUSHI20", DiscountType: entity.DiscountPercentage, DiscountValue: 20, MinSubtotal: 120000, Label: "20% OFF Sushi Night"},
	}
	for _, c := range coupons {
		if err := db.FirstOrCreate(&entity.Coupon{}, entity.Coupon{Code: c.Code}).Error; err != nil {
			return err
		}
		if err := db.Model(&entity.Coupon{}).Where("code = ?", c.Code).Updates(map[string]any{
			"discount_type":  c.DiscountType,
			"discount_value": c.DiscountValue,
			"min_subtotal":   c.MinSubtotal,
			"free_delivery":  c.FreeDelivery,
			"label":          c.Label,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedRestaurants loads a small storefront catalogue with one owner
// account per restaurant. Idempotent by restaurant name.
func SeedRestaurants() error {
	db := DB()

	type menuRow struct {
		name     string
		price    int64
		category string
	}
	type restRow struct {
		name         string
		cuisine      string
		rating       float64
		deliveryTime string
		ownerEmail   string
		menus        []menuRow
	}

	rows := []restRow{
		{
			name: "Burger King Royale", cuisine: "Burgers, Fast Food", rating: 4.8,
			deliveryTime: "20-25 min", ownerEmail: "owner.burger@foodcourt.local",
			menus: []menuRow{
				{"Whopper Premium", 45000, "Burgers"},
				{"Cheeseburger Deluxe", 35000, "Burgers"},
				{"French Fries Large", 15000, "Sides"},
				{"Onion Rings", 18000, "Sides"},
			},
		},
		{
			name: "Pizza Hut Artisan", cuisine: "Pizza, Italian", rating: 4.2,
			deliveryTime: "30-35 min", ownerEmail: "owner.pizza@foodcourt.local",
			menus: []menuRow{
				{"Pepperoni Feast", 85000, "Pizza"},
				{"Margherita Classic", 65000, "Pizza"},
				{"Garlic Bread", 25000, "Sides"},
			},
		},
		{
			name: "Sushi Tei Zen", cuisine: "Japanese, Sushi", rating: 4.7,
			deliveryTime: "40-45 min", ownerEmail: "owner.sushi@foodcourt.local",
			menus: []menuRow{
				{"Salmon Sashimi", 55000, "Sushi"},
				{"Maki Platter", 45000, "Sushi"},
				{"Miso Soup", 15000, "Soup"},
			},
		},
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(getEnv("SEED_OWNER_PASSWORD", "owner123")), bcrypt.DefaultCost)

	for _, row := range rows {
		var count int64
		db.Model(&entity.Restaurant{}).Where("name = ?", row.name).Count(&count)
		if count > 0 {
			continue
		}

		owner := entity.User{
			Email:    row.ownerEmail,
			Password: string(hash),
			Name:     row.name + " Owner",
			Role:     entity.RoleRestaurant,
		}
		if err := db.Where("email = ?", row.ownerEmail).FirstOrCreate(&owner, owner).Error; err != nil {
			return err
		}

		rest := entity.Restaurant{
			Name:         row.name,
			Cuisine:      row.cuisine,
			Rating:       row.rating,
			DeliveryTime: row.deliveryTime,
			UserID:       owner.ID,
		}
		if err := db.Create(&rest).Error; err != nil {
			return err
		}
		for _, m := range row.menus {
			menu := entity.Menu{
				Name: m.name, Price: m.price, Category: m.category,
				Available: true, RestaurantID: rest.ID,
			}
			if err := db.Create(&menu).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
