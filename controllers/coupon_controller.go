package controllers

import (
	"errors"
	"strconv"

	"foodcourt/pkg/resp"
	"foodcourt/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CouponController struct{ Svc *services.CouponService }

func NewCouponController(s *services.CouponService) *CouponController {
	return &CouponController{Svc: s}
}

// GET /coupons (public, the storefront shows available offers)
func (h *CouponController) List(c *gin.Context) {
	coupons, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": coupons})
}

// POST /admin/coupons
func (h *CouponController) Create(c *gin.Context) {
	var req services.CouponIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	coupon, err := h.Svc.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, coupon)
}

type updateCouponReq struct {
	Label         *string `json:"label"`
	DiscountValue *int64  `json:"discountValue"`
	MinSubtotal   *int64  `json:"minSubtotal"`
	FreeDelivery  *bool   `json:"freeDelivery"`
}

// PATCH /admin/coupons/:id
func (h *CouponController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid coupon id")
		return
	}

	var req updateCouponReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Label != nil {
		updates["label"] = *req.Label
	}
	if req.DiscountValue != nil {
		updates["discount_value"] = *req.DiscountValue
	}
	if req.MinSubtotal != nil {
		updates["min_subtotal"] = *req.MinSubtotal
	}
	if req.FreeDelivery != nil {
		updates["free_delivery"] = *req.FreeDelivery
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	coupon, err := h.Svc.Update(uint(id), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "coupon not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, coupon)
}

// DELETE /admin/coupons/:id
func (h *CouponController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid coupon id")
		return
	}
	if err := h.Svc.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
