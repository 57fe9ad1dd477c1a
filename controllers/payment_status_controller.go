package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/arvind-0212/ShopSphere/config"
	"github.com/arvind-0212/ShopSphere/gateway"
	"github.com/arvind-0212/ShopSphere/models"
	"github.com/arvind-0212/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GET|POST /payment/status/:transactionId/:merchantId/:amount/:userId
// Gateway callback. Polls the gateway for the transaction outcome and on
// success fulfils the order in one database transaction. The response is
// always a redirect to the success or failure page; only a missing user
// gets a JSON 404, matching the checkout API's not-found behavior.
func PaymentStatusCallback(c *gin.Context) {
	utils.LogInfo("PaymentStatusCallback called")

	merchantTransactionID := c.Param("transactionId")
	merchantID := c.Param("merchantId")
	userIDParam := c.Param("userId")
	utils.LogDebug("Callback params: transaction %s, merchant %s, amount %s, user %s",
		merchantTransactionID, merchantID, c.Param("amount"), userIDParam)

	userID, err := strconv.ParseUint(userIDParam, 10, 64)
	if err != nil {
		utils.LogError("Invalid user id in callback URL: %s", userIDParam)
		utils.NotFound(c, "User not found")
		return
	}

	db := config.DB
	var user models.User
	if err := db.First(&user, uint(userID)).Error; err != nil {
		utils.LogError("User not found for callback, ID: %d: %v", userID, err)
		utils.NotFound(c, "User not found")
		return
	}

	cfg := config.App
	client := gateway.NewClient(cfg.GatewayBaseURL, cfg.MerchantID, cfg.GatewayAPIKey)

	status, err := client.PollStatus(c.Request.Context(), merchantTransactionID)
	if err != nil {
		// Declines and transport errors both land on the failure page.
		utils.LogError("Status poll failed for transaction %s: %v", merchantTransactionID, err)
		redirectToFailure(c)
		return
	}

	if !status.Success || status.Code != "SUCCESS" {
		utils.LogInfo("Payment not successful for transaction %s, code: %s", merchantTransactionID, status.Code)
		redirectToFailure(c)
		return
	}

	paymentAmount := float64(status.Amount) / 100
	utils.LogInfo("Gateway confirmed transaction %s, amount: %.2f", merchantTransactionID, paymentAmount)

	var existing models.Payment
	if err := db.Where("merchant_transaction_id = ?", merchantTransactionID).First(&existing).Error; err == nil {
		utils.LogInfo("Transaction %s already fulfilled, payment ID: %d", merchantTransactionID, existing.ID)
		redirectToSuccess(c)
		return
	}

	if err := fulfillOrder(&user, merchantID, merchantTransactionID, paymentAmount, status.RawBody); err != nil {
		// A concurrent callback may have fulfilled the order first; the
		// unique transaction id index turns that into a failed insert.
		if err := db.Where("merchant_transaction_id = ?", merchantTransactionID).First(&existing).Error; err == nil {
			utils.LogInfo("Transaction %s fulfilled by concurrent callback", merchantTransactionID)
			redirectToSuccess(c)
			return
		}
		utils.LogError("Fulfilment failed for transaction %s: %v", merchantTransactionID, err)
		redirectToFailure(c)
		return
	}

	// Fire-and-forget; a lost mail never fails a fulfilled order.
	go func(email, name, txn string, amount float64, phone string) {
		if err := utils.SendOrderConfirmationEmail(email, name, txn, amount, phone); err != nil {
			utils.LogError("Failed to send confirmation email for transaction %s: %v", txn, err)
		}
	}(user.Email, user.ShippingName, merchantTransactionID, paymentAmount, user.ShippingPhone)

	utils.LogInfo("Fulfilled order for transaction %s, user ID: %d", merchantTransactionID, user.ID)
	redirectToSuccess(c)
}

// fulfillOrder runs the post-payment side effects atomically: payment
// record, guarded stock decrements, cart clear, order snapshots and the
// user's payment summary all commit together or not at all.
func fulfillOrder(user *models.User, merchantID, merchantTransactionID string, amount float64, rawBody string) error {
	db := config.DB

	lines, _, err := utils.GetCartLines(user.ID)
	if err != nil {
		return err
	}

	productsJSON, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	payment := models.Payment{
		UserID:                user.ID,
		MerchantID:            merchantID,
		MerchantTransactionID: merchantTransactionID,
		Amount:                amount,
		Name:                  user.ShippingName,
		Email:                 user.Email,
		Phone:                 user.ShippingPhone,
		Body:                  rawBody,
		Products:              string(productsJSON),
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return err
	}

	for _, line := range lines {
		// Conditional decrement; zero rows affected means the stock
		// floor would be crossed.
		result := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", line.Product.ID, line.Quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", line.Quantity))
		if result.Error != nil {
			tx.Rollback()
			return result.Error
		}
		if result.RowsAffected == 0 {
			tx.Rollback()
			return fmt.Errorf("insufficient stock for product %d", line.Product.ID)
		}
	}

	if err := tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	for _, line := range lines {
		order := models.Order{
			PublicID:      uuid.New().String(),
			UserID:        user.ID,
			ProductID:     line.Product.ID,
			ProductName:   line.Product.Name,
			Price:         line.Product.Price,
			Quantity:      line.Quantity,
			ShippingName:  user.ShippingName,
			ShippingPhone: user.ShippingPhone,
			Status:        models.OrderStatusOrdered,
		}
		if err := tx.Create(&order).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	summary := models.PaymentSummary{
		UserID:                user.ID,
		PaymentID:             payment.ID,
		MerchantID:            merchantID,
		MerchantTransactionID: merchantTransactionID,
		Amount:                amount,
	}
	if err := tx.Create(&summary).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func redirectToSuccess(c *gin.Context) {
	c.Redirect(http.StatusFound, config.App.RedirectBaseURL+"/v1/payment/success")
}

func redirectToFailure(c *gin.Context) {
	c.Redirect(http.StatusFound, config.App.RedirectBaseURL+"/v1/payment/failure")
}
