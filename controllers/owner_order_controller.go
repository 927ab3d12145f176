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

// OwnerOrderController is the restaurant dashboard: queue, detail, and the
// status workflow. Only the owning account may advance an order.
type OwnerOrderController struct {
	Orders *services.OrderService
	Rests  *services.RestaurantService
}

func NewOwnerOrderController(orders *services.OrderService, rests *services.RestaurantService) *OwnerOrderController {
	return &OwnerOrderController{Orders: orders, Rests: rests}
}

func (h *OwnerOrderController) myRestaurantID(c *gin.Context) (uint, bool) {
	rest, err := h.Rests.Mine(utils.CurrentUserID(c))
	if err != nil {
		resp.Forbidden(c, "no restaurant for this account")
		return 0, false
	}
	return rest.ID, true
}

// GET /partner/orders?status=&page=&limit=
func (h *OwnerOrderController) List(c *gin.Context) {
	restID, ok := h.myRestaurantID(c)
	if !ok {
		return
	}

	var status *entity.OrderStatus
	if s := c.Query("status"); s != "" {
		st := entity.OrderStatus(s)
		if !st.Valid() {
			resp.BadRequest(c, "invalid status filter")
			return
		}
		status = &st
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	out, err := h.Orders.ListForRestaurant(utils.CurrentUserID(c), restID, status, page, limit)
	if err != nil {
		if errors.Is(err, entity.ErrNotAuthorized) {
			resp.Forbidden(c, "forbidden")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /partner/orders/:id
func (h *OwnerOrderController) Detail(c *gin.Context) {
	restID, ok := h.myRestaurantID(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	o, err := h.Orders.DetailForRestaurant(utils.CurrentUserID(c), restID, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotAuthorized):
			resp.Forbidden(c, "forbidden")
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, o)
}

type updateStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PATCH /partner/orders/:id/status
func (h *OwnerOrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !req.Status.Valid() {
		resp.BadRequest(c, "unknown status")
		return
	}

	err = h.Orders.Advance(utils.CurrentUserID(c), uint(id), req.Status)
	if err != nil {
		var illegal *entity.IllegalTransitionError
		switch {
		case errors.Is(err, entity.ErrNotAuthorized):
			resp.Forbidden(c, "forbidden")
		case errors.As(err, &illegal):
			resp.Conflict(c, illegal.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// GET /partner/dashboard
func (h *OwnerOrderController) Dashboard(c *gin.Context) {
	restID, ok := h.myRestaurantID(c)
	if !ok {
		return
	}
	d, err := h.Orders.DashboardForRestaurant(utils.CurrentUserID(c), restID)
	if err != nil {
		if errors.Is(err, entity.ErrNotAuthorized) {
			resp.Forbidden(c, "forbidden")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, d)
}
