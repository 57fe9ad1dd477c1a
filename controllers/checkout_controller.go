package controllers

import (
	"fmt"
	"time"

	"github.com/arvind-0212/ShopSphere/config"
	"github.com/arvind-0212/ShopSphere/gateway"
	"github.com/arvind-0212/ShopSphere/models"
	"github.com/arvind-0212/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// GET /user/checkout
// Prices the authenticated user's cart, initiates a gateway transaction
// and returns the hosted pay page URL for the buyer.
func InitiateCheckout(c *gin.Context) {
	utils.LogInfo("InitiateCheckout called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)
	utils.LogInfo("Processing checkout for user ID: %d", user.ID)

	_, total, err := utils.GetCartLines(user.ID)
	if err != nil {
		utils.LogError("Failed to load cart for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to load cart", nil)
		return
	}
	utils.LogInfo("Cart total for user ID: %d: %.2f", user.ID, total)

	merchantTransactionID, err := gateway.NewMerchantTransactionID()
	if err != nil {
		utils.LogError("Failed to generate transaction id for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to initiate payment", nil)
		return
	}

	cfg := config.App
	// One canonical conversion: the paid amount and the amount echoed on
	// the callback URL both derive from the same minor-unit value.
	amountMinor := gateway.MinorUnits(total)
	redirectURL := fmt.Sprintf("%s/v1/payment/status/%s/%s/%.2f/%d",
		cfg.RedirectBaseURL, merchantTransactionID, cfg.MerchantID, float64(amountMinor)/100, user.ID)
	utils.LogDebug("Callback URL for transaction %s: %s", merchantTransactionID, redirectURL)

	payReq := &gateway.PayRequest{
		MerchantID:            cfg.MerchantID,
		MerchantTransactionID: merchantTransactionID,
		MerchantUserID:        fmt.Sprintf("MUID%d", time.Now().UnixMilli()),
		Name:                  user.ShippingName,
		Amount:                amountMinor,
		RedirectURL:           redirectURL,
		RedirectMode:          "POST",
		MobileNumber:          user.ShippingPhone,
		PaymentInstrument:     gateway.PaymentInstrument{Type: "PAY_PAGE"},
	}

	client := gateway.NewClient(cfg.GatewayBaseURL, cfg.MerchantID, cfg.GatewayAPIKey)
	payPageURL, err := client.Initiate(c.Request.Context(), payReq)
	if err != nil {
		// Gateway errors carry internals; log them and return the kind only.
		utils.LogError("Payment initiation failed for user ID: %d, transaction %s: %v",
			user.ID, merchantTransactionID, err)
		utils.InternalServerError(c, "Failed to initiate payment", nil)
		return
	}

	utils.LogInfo("Payment initiated for user ID: %d, transaction %s", user.ID, merchantTransactionID)
	utils.Success(c, "Payment initiated successfully", gin.H{
		"url": payPageURL,
	})
}
