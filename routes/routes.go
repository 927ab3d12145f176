package routes

import (
	"foodcourt/configs"
	"foodcourt/controllers"
	"foodcourt/entity"
	"foodcourt/middlewares"
	"foodcourt/repository"
	"foodcourt/services"
	"foodcourt/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Live order feed
	hub := ws.NewOrderHub(orderRepo, restRepo)
	go hub.Run()

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, restRepo, couponRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, restRepo, userRepo)
	orderSvc.Notifier = hub
	restSvc := services.NewRestaurantService(restRepo)
	menuSvc := services.NewMenuService(menuRepo, restRepo)
	couponSvc := services.NewCouponService(couponRepo)
	paymentSvc := services.NewPaymentService()
	mediaSvc := services.NewMediaService(cfg.MediaCloudName, cfg.MediaUploadPreset)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, cartSvc, paymentSvc)
	ownerOrderCtrl := controllers.NewOwnerOrderController(orderSvc, restSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	couponCtrl := controllers.NewCouponController(couponSvc)
	adminCtrl := controllers.NewAdminController(orderSvc, restRepo, userRepo)
	mediaCtrl := controllers.NewMediaController(mediaSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/forgot-password", authCtrl.ForgotPassword)
		a.POST("/reset-password", authCtrl.ResetPassword)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public storefront
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/coupons", couponCtrl.List)

	// Cart (customer)
	cart := r.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleCustomer))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/qty", cartCtrl.UpdateQty)
		cart.DELETE("/items", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/coupon", cartCtrl.ApplyCoupon)
		cart.DELETE("/coupon", cartCtrl.RemoveCoupon)
	}

	// Checkout + order history (customer)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleCustomer))
	{
		u.POST("/checkout", orderCtrl.Checkout)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.GET("/profile/orders", orderCtrl.ListForMe)
	}

	// Partner (restaurant owners)
	partner := r.Group("/partner", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleRestaurant))
	{
		partner.GET("/dashboard", ownerOrderCtrl.Dashboard)
		partner.GET("/orders", ownerOrderCtrl.List)
		partner.GET("/orders/:id", ownerOrderCtrl.Detail)
		partner.PATCH("/orders/:id/status", ownerOrderCtrl.UpdateStatus)
		partner.GET("/restaurant", restCtrl.Mine)
		partner.PATCH("/restaurant", restCtrl.UpdateMine)
		partner.GET("/menu", menuCtrl.ListMine)
		partner.POST("/menu", menuCtrl.Create)
		partner.PATCH("/menu/:id", menuCtrl.Update)
		partner.DELETE("/menu/:id", menuCtrl.Delete)
	}

	// Media upload (owners and admin)
	r.POST("/media/upload",
		middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleRestaurant, entity.RoleAdmin),
		mediaCtrl.Upload)

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.GET("/orders", adminCtrl.Ledger)
		admin.GET("/restaurants", adminCtrl.Restaurants)
		admin.GET("/users", adminCtrl.Users)
		admin.POST("/coupons", couponCtrl.Create)
		admin.PATCH("/coupons/:id", couponCtrl.Update)
		admin.DELETE("/coupons/:id", couponCtrl.Delete)
	}

	// Live order feed (all roles, scope follows the token's role)
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
