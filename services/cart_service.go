package services

import (
	"errors"

	"foodcourt/entity"
	"foodcourt/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB         *gorm.DB
	CartRepo   *repository.CartRepository
	MenuRepo   *repository.MenuRepository
	RestRepo   *repository.RestaurantRepository
	CouponRepo *repository.CouponRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository, rr *repository.RestaurantRepository, pr *repository.CouponRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, RestRepo: rr, CouponRepo: pr}
}

// Get returns the cart with its derived totals. Evaluating the totals may
// detach the coupon (minimum no longer met); that write happens here so
// every read sees a consistent cart.
func (s *CartService) Get(userID uint) (*entity.Cart, Quote, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, Quote{}, err
	}

	q := PriceCart(c.Items, c.Coupon)
	if q.CouponDropped && c.ID != 0 {
		if err := s.CartRepo.SetCoupon(userID, nil); err != nil {
			return nil, Quote{}, err
		}
		c.CouponID = nil
		c.Coupon = nil
	}
	return c, q, nil
}

// Add puts one more of the menu item into the cart: an existing line is
// incremented, otherwise a new line with qty 1 is appended. Name, price and
// restaurant are snapshotted from the menu at this moment.
func (s *CartService) Add(userID, menuID uint) error {
	m, err := s.MenuRepo.FindByID(menuID)
	if err != nil {
		return errors.New("menu not found")
	}
	if !m.Available {
		return errors.New("menu not available")
	}
	restName, err := s.RestRepo.GetName(m.RestaurantID)
	if err != nil {
		return err
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	line := &entity.CartItem{
		MenuID:         m.ID,
		Name:           m.Name,
		UnitPrice:      m.Price,
		RestaurantID:   m.RestaurantID,
		RestaurantName: restName,
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.AddLine(tx, c.ID, line)
	})
}

// UpdateQty adds delta (may be negative) to a line's quantity, clamped at
// zero; a line that reaches zero is removed. Unknown items are a no-op.
func (s *CartService) UpdateQty(userID, itemID uint, delta int) error {
	it, err := s.CartRepo.GetItemForUser(userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	qty := it.Qty + delta
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if qty <= 0 {
			return s.CartRepo.RemoveItem(tx, userID, it.ID)
		}
		return s.CartRepo.SaveItemQty(tx, it.ID, qty)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}

// ApplyCoupon looks the code up case-insensitively and attaches it to the
// cart, replacing any previous coupon. Re-applying an already applied code
// leaves the cart unchanged.
func (s *CartService) ApplyCoupon(userID uint, code string) (*entity.Coupon, error) {
	coupon, err := s.CouponRepo.FindByCode(code)
	if err != nil {
		return nil, err
	}

	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}

	subtotal := Subtotal(c.Items)
	if subtotal < coupon.MinSubtotal {
		return nil, &entity.MinimumNotMetError{
			Minimum:   coupon.MinSubtotal,
			Subtotal:  subtotal,
			Shortfall: coupon.MinSubtotal - subtotal,
		}
	}

	if _, err := s.CartRepo.GetOrCreateCart(userID); err != nil {
		return nil, err
	}
	if err := s.CartRepo.SetCoupon(userID, &coupon.ID); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CartService) RemoveCoupon(userID uint) error {
	return s.CartRepo.SetCoupon(userID, nil)
}
