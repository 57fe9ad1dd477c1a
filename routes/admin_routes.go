package routes

import (
	"github.com/arvind-0212/ShopSphere/controllers"
	"github.com/arvind-0212/ShopSphere/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		// Public admin routes
		admin.POST("/login", controllers.AdminLogin)

		// Protected admin routes
		admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.GET("/payment-details/export", controllers.DownloadPaymentReport)
			admin.GET("/payment-details/:page/:limit", controllers.ListPaymentDetails)
		}
	}
}
