package services

import (
	"errors"
	"strings"

	"foodcourt/entity"
	"foodcourt/repository"
)

// CouponService is the admin's management surface for the coupon
// reference set; customers only read it through the cart.
type CouponService struct {
	Repo *repository.CouponRepository
}

func NewCouponService(repo *repository.CouponRepository) *CouponService {
	return &CouponService{Repo: repo}
}

type CouponIn struct {
	Code          string              `json:"code" binding:"required"`
	Label         string              `json:"label"`
	DiscountType  entity.DiscountType `json:"discountType" binding:"required"`
	DiscountValue int64               `json:"discountValue"`
	MinSubtotal   int64               `json:"minSubtotal"`
	FreeDelivery  bool                `json:"freeDelivery"`
}

func (s *CouponService) List() ([]entity.Coupon, error) {
	return s.Repo.List()
}

func (s *CouponService) Create(in *CouponIn) (*entity.Coupon, error) {
	switch in.DiscountType {
	case entity.DiscountPercentage, entity.DiscountFlat:
	default:
		return nil, errors.New("invalid discount type")
	}

	c := &entity.Coupon{
		Code:          strings.ToUpper(strings.TrimSpace(in.Code)),
		Label:         in.Label,
		DiscountType:  in.DiscountType,
		DiscountValue: in.DiscountValue,
		MinSubtotal:   in.MinSubtotal,
		FreeDelivery:  in.FreeDelivery,
	}
	if c.Code == "" {
		return nil, errors.New("code is required")
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CouponService) Update(id uint, updates map[string]any) (*entity.Coupon, error) {
	if _, err := s.Repo.FindByID(id); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

func (s *CouponService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
