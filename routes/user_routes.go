package routes

import (
	"github.com/arvind-0212/ShopSphere/controllers"
	"github.com/arvind-0212/ShopSphere/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes all user-related routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes (no authentication required)
	router.POST("/register", controllers.RegisterUser)
	router.POST("/login", controllers.LoginUser)

	// Protected routes (require authentication)
	protected := router.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/checkout", controllers.InitiateCheckout)
	}
}
