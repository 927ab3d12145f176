package controllers

import (
	"strconv"

	"foodcourt/pkg/resp"
	"foodcourt/repository"
	"foodcourt/services"

	"github.com/gin-gonic/gin"
)

// AdminController is the global ledger view: every order, every
// restaurant, every user. Admins observe; they do not advance orders.
type AdminController struct {
	Orders   *services.OrderService
	RestRepo *repository.RestaurantRepository
	UserRepo *repository.UserRepository
}

func NewAdminController(orders *services.OrderService, restRepo *repository.RestaurantRepository, userRepo *repository.UserRepository) *AdminController {
	return &AdminController{Orders: orders, RestRepo: restRepo, UserRepo: userRepo}
}

// GET /admin/orders
func (h *AdminController) Ledger(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))
	items, err := h.Orders.ListAll(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /admin/restaurants
func (h *AdminController) Restaurants(c *gin.Context) {
	rests, err := h.RestRepo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rests})
}

// GET /admin/users
func (h *AdminController) Users(c *gin.Context) {
	users, err := h.UserRepo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}
