package controllers

import (
	"net/http"

	"github.com/arvind-0212/ShopSphere/config"
	"github.com/arvind-0212/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// GET /payment/success
// Terminal redirect target after a confirmed payment; sends the buyer to
// the storefront orders page.
func PaymentSuccess(c *gin.Context) {
	utils.LogInfo("PaymentSuccess called")
	c.Redirect(http.StatusFound, config.App.Domain+"/orders")
}

// GET /payment/failure
func PaymentFailure(c *gin.Context) {
	utils.LogInfo("PaymentFailure called")
	c.Redirect(http.StatusFound, config.App.Domain+"/orders")
}
