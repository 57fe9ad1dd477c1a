package routes

import (
	"github.com/arvind-0212/ShopSphere/controllers"
	"github.com/gin-gonic/gin"
)

// initPaymentRoutes initializes the gateway callback and result routes.
// The gateway redirects the buyer's browser here, so none of these carry
// authentication; both verbs share one callback handler.
func initPaymentRoutes(router *gin.RouterGroup) {
	payment := router.Group("/payment")
	{
		payment.GET("/status/:transactionId/:merchantId/:amount/:userId", controllers.PaymentStatusCallback)
		payment.POST("/status/:transactionId/:merchantId/:amount/:userId", controllers.PaymentStatusCallback)

		payment.GET("/success", controllers.PaymentSuccess)
		payment.GET("/failure", controllers.PaymentFailure)
	}
}
