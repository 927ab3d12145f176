package repository

import (
	"errors"
	"strings"

	"foodcourt/entity"

	"gorm.io/gorm"
)

type CouponRepository struct{ DB *gorm.DB }

func NewCouponRepository(db *gorm.DB) *CouponRepository { return &CouponRepository{DB: db} }

func (r *CouponRepository) List() ([]entity.Coupon, error) {
	var coupons []entity.Coupon
	err := r.DB.Order("id").Find(&coupons).Error
	return coupons, err
}

// FindByCode matches case-insensitively.
func (r *CouponRepository) FindByCode(code string) (*entity.Coupon, error) {
	var c entity.Coupon
	err := r.DB.Where("UPPER(code) = ?", strings.ToUpper(strings.TrimSpace(code))).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entity.ErrCouponNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) FindByID(id uint) (*entity.Coupon, error) {
	var c entity.Coupon
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) Create(c *entity.Coupon) error {
	return r.DB.Create(c).Error
}

func (r *CouponRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Coupon{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CouponRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Coupon{}, id).Error
}
