package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/cart"
	"github.com/yeremiapane/food-order-app/controllers"
	"github.com/yeremiapane/food-order-app/middlewares"
	"github.com/yeremiapane/food-order-app/services"
	"github.com/yeremiapane/food-order-app/utils"
)

func SetupRouter(db *gorm.DB, carts *cart.Store) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	orderSvc := services.NewOrderService(db)
	userCtrl := controllers.NewUserController(db, carts)
	restaurantCtrl := controllers.NewRestaurantController(db)
	cartCtrl := controllers.NewCartController(carts)
	orderCtrl := controllers.NewOrderController(orderSvc, carts)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		if sqlDB, err := utils.GetDB().DB(); err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/logout", userCtrl.Logout)
		auth.GET("/profile", userCtrl.GetProfile)

		auth.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
		auth.GET("/restaurants/:id/menu", restaurantCtrl.GetRestaurantMenu)

		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.GET("/cart", cartCtrl.GetCart)
		auth.DELETE("/cart", cartCtrl.ClearCart)

		auth.POST("/orders", orderCtrl.PlaceOrder)
		auth.GET("/orders", orderCtrl.GetMyOrders)
	}

	return r
}
