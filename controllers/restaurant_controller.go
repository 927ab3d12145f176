package controllers

import (
	"errors"
	"strconv"

	"foodcourt/pkg/resp"
	"foodcourt/services"
	"foodcourt/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurants (public)
func (h *RestaurantController) List(c *gin.Context) {
	rests, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rests})
}

// GET /restaurants/:id (public, with menu)
func (h *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	rest, err := h.Svc.Detail(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /partner/restaurant (owner)
func (h *RestaurantController) Mine(c *gin.Context) {
	rest, err := h.Svc.Mine(utils.CurrentUserID(c))
	if err != nil {
		resp.Forbidden(c, "no restaurant for this account")
		return
	}
	resp.OK(c, rest)
}

type updateRestaurantReq struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	Description  *string `json:"description"`
	Cuisine      *string `json:"cuisine"`
	Image        *string `json:"image"`
	DeliveryTime *string `json:"deliveryTime"`
}

// PATCH /partner/restaurant
func (h *RestaurantController) UpdateMine(c *gin.Context) {
	var req updateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Cuisine != nil {
		updates["cuisine"] = *req.Cuisine
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.DeliveryTime != nil {
		updates["delivery_time"] = *req.DeliveryTime
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	rest, err := h.Svc.UpdateMine(utils.CurrentUserID(c), updates)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}
