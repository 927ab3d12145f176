package repository

import (
	"errors"

	"foodcourt/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart, or an empty unsaved cart when
// none exists yet so callers can render without a not-found branch.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Coupon").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// AddLine merges into an existing line for the same menu (qty +1) or
// inserts a fresh line with qty 1.
func (r *CartRepository) AddLine(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_id = ?", cartID, row.MenuID).First(&exist).Error
	if err == nil {
		exist.Qty++
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	row.Qty = 1
	return tx.Create(row).Error
}

// GetItemForUser fetches a line only when it belongs to the user's cart.
func (r *CartRepository) GetItemForUser(userID, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) SaveItemQty(tx *gorm.DB, itemID uint, qty int) error {
	return tx.Model(&entity.CartItem{}).Where("id = ?", itemID).Update("qty", qty).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	return tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) SetCoupon(userID uint, couponID *uint) error {
	return r.DB.Model(&entity.Cart{}).Where("user_id = ?", userID).
		Update("coupon_id", couponID).Error
}

// ClearCart deletes every line and detaches the coupon.
func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).Update("coupon_id", nil).Error
}
