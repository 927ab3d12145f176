package controllers

import (
	"errors"

	"foodcourt/entity"
	"foodcourt/pkg/resp"
	"foodcourt/services"
	"foodcourt/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	cart, quote, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "totals": quote})
}

type addToCartReq struct {
	MenuID uint `json:"menuId" binding:"required"`
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req addToCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(utils.CurrentUserID(c), req.MenuID); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"ok": true})
}

type updateQtyReq struct {
	ItemID uint `json:"itemId" binding:"required"`
	Delta  int  `json:"delta" binding:"required"`
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	var req updateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(utils.CurrentUserID(c), req.ItemID, req.Delta); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

type removeItemReq struct {
	ItemID uint `json:"itemId" binding:"required"`
}

// DELETE /cart/items
func (h *CartController) RemoveItem(c *gin.Context) {
	var req removeItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.RemoveItem(utils.CurrentUserID(c), req.ItemID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

type applyCouponReq struct {
	Code string `json:"code" binding:"required"`
}

// POST /cart/coupon
func (h *CartController) ApplyCoupon(c *gin.Context) {
	var req applyCouponReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	coupon, err := h.Svc.ApplyCoupon(utils.CurrentUserID(c), req.Code)
	if err != nil {
		var minErr *entity.MinimumNotMetError
		switch {
		case errors.Is(err, entity.ErrCouponNotFound):
			resp.NotFound(c, "coupon not found")
		case errors.As(err, &minErr):
			c.JSON(422, gin.H{"ok": false, "error": minErr.Error(), "shortfall": minErr.Shortfall})
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, coupon)
}

// DELETE /cart/coupon
func (h *CartController) RemoveCoupon(c *gin.Context) {
	if err := h.Svc.RemoveCoupon(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
