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

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /partner/menu
func (h *MenuController) ListMine(c *gin.Context) {
	menus, err := h.Svc.ListMine(utils.CurrentUserID(c))
	if err != nil {
		resp.Forbidden(c, "no restaurant for this account")
		return
	}
	resp.OK(c, gin.H{"items": menus})
}

// POST /partner/menu
func (h *MenuController) Create(c *gin.Context) {
	var req services.MenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, m)
}

type updateMenuReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
	Available   *bool   `json:"available"`
}

// PATCH /partner/menu/:id
func (h *MenuController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}

	var req updateMenuReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			resp.BadRequest(c, "price must be positive")
			return
		}
		updates["price"] = *req.Price
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	m, err := h.Svc.Update(utils.CurrentUserID(c), uint(id), updates)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotAuthorized):
			resp.Forbidden(c, "forbidden")
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "menu not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, m)
}

// DELETE /partner/menu/:id
func (h *MenuController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}
	if err := h.Svc.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		switch {
		case errors.Is(err, entity.ErrNotAuthorized):
			resp.Forbidden(c, "forbidden")
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "menu not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
