package controllers

import (
	"errors"
	"strconv"

	"foodcourt/entity"
	"foodcourt/pkg/resp"
	"foodcourt/services"
	"foodcourt/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderController is the customer-facing side: checkout and order history.
type OrderController struct {
	Orders  *services.OrderService
	Cart    *services.CartService
	Payment *services.PaymentService
}

func NewOrderController(orders *services.OrderService, cart *services.CartService, payment *services.PaymentService) *OrderController {
	return &OrderController{Orders: orders, Cart: cart, Payment: payment}
}

type checkoutReq struct {
	Amount int64 `json:"amount" binding:"required"`
}

// POST /checkout
// The entered amount must match the cart's grand total exactly (simulated
// payment). On success one order per restaurant is created and the cart is
// cleared. Clearing is the controller's job, not the order service's.
func (h *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	_, quote, err := h.Cart.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	if err := h.Payment.Confirm(quote.GrandTotal, req.Amount); err != nil {
		var mismatch *entity.AmountMismatchError
		if errors.As(err, &mismatch) {
			c.JSON(422, gin.H{"ok": false, "error": mismatch.Error(), "expected": mismatch.Expected})
			return
		}
		resp.ServerError(c, err)
		return
	}

	orders, err := h.Orders.Checkout(uid)
	if err != nil {
		if errors.Is(err, entity.ErrEmptyCart) {
			resp.BadRequest(c, "cart is empty")
			return
		}
		resp.ServerError(c, err)
		return
	}

	if err := h.Cart.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"orders": orders, "totals": quote})
}

// GET /profile/orders
func (h *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := h.Orders.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id (order owner only)
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	o, err := h.Orders.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, o)
}
