package services

import (
	"path/filepath"
	"testing"

	"foodcourt/entity"
	"foodcourt/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.User{}, &entity.PasswordReset{},
		&entity.Restaurant{}, &entity.Menu{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Coupon{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type fixture struct {
	db *gorm.DB

	customer entity.User
	owner    entity.User
	owner2   entity.User

	burgerHouse entity.Restaurant
	sushiBar    entity.Restaurant

	whopper entity.Menu // 45000, burgerHouse
	fries   entity.Menu // 15000, burgerHouse
	sashimi entity.Menu // 55000, sushiBar
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	f := &fixture{db: db}

	f.customer = entity.User{Email: "jess@example.com", Name: "Jess", Role: entity.RoleCustomer}
	f.owner = entity.User{Email: "owner1@example.com", Name: "Owner One", Role: entity.RoleRestaurant}
	f.owner2 = entity.User{Email: "owner2@example.com", Name: "Owner Two", Role: entity.RoleRestaurant}
	for _, u := range []*entity.User{&f.customer, &f.owner, &f.owner2} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	f.burgerHouse = entity.Restaurant{Name: "Burger House", UserID: f.owner.ID}
	f.sushiBar = entity.Restaurant{Name: "Sushi Bar", UserID: f.owner2.ID}
	for _, r := range []*entity.Restaurant{&f.burgerHouse, &f.sushiBar} {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("seed restaurant: %v", err)
		}
	}

	f.whopper = entity.Menu{Name: "Whopper", Price: 45000, Available: true, RestaurantID: f.burgerHouse.ID}
	f.fries = entity.Menu{Name: "Fries", Price: 15000, Available: true, RestaurantID: f.burgerHouse.ID}
	f.sashimi = entity.Menu{Name: "Sashimi", Price: 55000, Available: true, RestaurantID: f.sushiBar.ID}
	for _, m := range []*entity.Menu{&f.whopper, &f.fries, &f.sashimi} {
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("seed menu: %v", err)
		}
	}

	return f
}

func (f *fixture) cartService() *CartService {
	return NewCartService(f.db,
		repository.NewCartRepository(f.db),
		repository.NewMenuRepository(f.db),
		repository.NewRestaurantRepository(f.db),
		repository.NewCouponRepository(f.db))
}

func (f *fixture) orderService() *OrderService {
	return NewOrderService(f.db,
		repository.NewOrderRepository(f.db),
		repository.NewCartRepository(f.db),
		repository.NewRestaurantRepository(f.db),
		repository.NewUserRepository(f.db))
}

func (f *fixture) seedCoupon(t *testing.T, c entity.Coupon) entity.Coupon {
	t.Helper()
	if err := f.db.Create(&c).Error; err != nil {
		t.Fatalf("seed coupon: %v", err)
	}
	return c
}
