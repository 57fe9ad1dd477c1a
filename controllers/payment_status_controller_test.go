package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arvind-0212/ShopSphere/config"
	"github.com/arvind-0212/ShopSphere/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const gatewaySuccessBody = `{"success": true, "data": {"responseCode": "SUCCESS", "amount": 3998}}`

// newTestDB opens a per-test in-memory database and points the global
// handle at it. cache=shared keeps the database alive across the
// connections gorm pools.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.Payment{},
		&models.PaymentSummary{},
	))
	config.DB = db
	return db
}

// stubGateway serves a canned status response and wires the loaded
// config at it. SMTP stays unset so the mail send is skipped.
func stubGateway(t *testing.T, body string, statusCode int) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if statusCode != http.StatusOK {
			w.WriteHeader(statusCode)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	config.App = &config.Config{
		MerchantID:      "M1",
		GatewayAPIKey:   "test-api-key",
		GatewayBaseURL:  server.URL,
		RedirectBaseURL: "https://shop.example.com",
		Domain:          "https://shop.example.com",
		JWTSecret:       "test-secret",
	}
}

func seedCheckout(t *testing.T, db *gorm.DB, stock, quantity int) (models.User, models.Product) {
	t.Helper()
	user := models.User{
		Username:      "asha",
		Email:         "asha@example.com",
		Password:      "irrelevant",
		Phone:         "0000000000",
		ShippingName:  "Asha Rao",
		ShippingPhone: "9876543210",
	}
	require.NoError(t, db.Create(&user).Error)

	product := models.Product{Name: "Clay Lamp", Price: 19.99, Stock: stock}
	require.NoError(t, db.Create(&product).Error)

	require.NoError(t, db.Create(&models.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  quantity,
	}).Error)

	return user, product
}

func performCallback(userID uint, transactionID string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/v1/payment/status/:transactionId/:merchantId/:amount/:userId", PaymentStatusCallback)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/v1/payment/status/%s/M1/39.98/%d", transactionID, userID), nil)
	router.ServeHTTP(w, req)
	return w
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestCallbackUnknownUserReturnsNotFound(t *testing.T) {
	newTestDB(t)
	stubGateway(t, gatewaySuccessBody, http.StatusOK)

	w := performCallback(9999, "txn-no-user")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCallbackDeclinedRedirectsToFailureWithoutSideEffects(t *testing.T) {
	db := newTestDB(t)
	stubGateway(t, `{"success": false, "data": {"responseCode": "PAYMENT_DECLINED", "amount": 0}}`, http.StatusOK)
	user, product := seedCheckout(t, db, 5, 2)

	w := performCallback(user.ID, "txn-declined")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://shop.example.com/v1/payment/failure", w.Header().Get("Location"))

	assert.Zero(t, countRows(t, db, &models.Payment{}))
	assert.Zero(t, countRows(t, db, &models.Order{}))
	assert.Zero(t, countRows(t, db, &models.PaymentSummary{}))
	assert.Equal(t, int64(1), countRows(t, db, &models.CartItem{}))

	var got models.Product
	require.NoError(t, db.First(&got, product.ID).Error)
	assert.Equal(t, 5, got.Stock)
}

func TestCallbackGatewayErrorRedirectsToFailure(t *testing.T) {
	db := newTestDB(t)
	stubGateway(t, "", http.StatusBadGateway)
	user, _ := seedCheckout(t, db, 5, 2)

	w := performCallback(user.ID, "txn-gw-down")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://shop.example.com/v1/payment/failure", w.Header().Get("Location"))
	assert.Zero(t, countRows(t, db, &models.Payment{}))
	assert.Equal(t, int64(1), countRows(t, db, &models.CartItem{}))
}

func TestCallbackSuccessFulfilsOrder(t *testing.T) {
	db := newTestDB(t)
	stubGateway(t, gatewaySuccessBody, http.StatusOK)
	user, product := seedCheckout(t, db, 5, 2)

	w := performCallback(user.ID, "txn-ok")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://shop.example.com/v1/payment/success", w.Header().Get("Location"))

	// Exactly one payment record, amount from the gateway in major units
	var payment models.Payment
	require.NoError(t, db.Where("merchant_transaction_id = ?", "txn-ok").First(&payment).Error)
	assert.Equal(t, int64(1), countRows(t, db, &models.Payment{}))
	assert.Equal(t, user.ID, payment.UserID)
	assert.InDelta(t, 39.98, payment.Amount, 1e-9)
	assert.Contains(t, payment.Body, "SUCCESS")

	// The record snapshots the shipping contact, matching the mail
	assert.Equal(t, user.ShippingName, payment.Name)
	assert.Equal(t, user.Email, payment.Email)
	assert.Equal(t, user.ShippingPhone, payment.Phone)

	// Cart moved to orders
	assert.Zero(t, countRows(t, db, &models.CartItem{}))
	var orders []models.Order
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.Equal(t, product.ID, orders[0].ProductID)
	assert.Equal(t, product.Name, orders[0].ProductName)
	assert.Equal(t, 2, orders[0].Quantity)
	assert.Equal(t, models.OrderStatusOrdered, orders[0].Status)
	assert.NotEmpty(t, orders[0].PublicID)

	// One summary appended to the user's payment history
	var summaries []models.PaymentSummary
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&summaries).Error)
	require.Len(t, summaries, 1)
	assert.Equal(t, payment.ID, summaries[0].PaymentID)

	// Stock decremented by the purchased quantity
	var got models.Product
	require.NoError(t, db.First(&got, product.ID).Error)
	assert.Equal(t, 3, got.Stock)
}

func TestCallbackReplayDoesNotDuplicateFulfilment(t *testing.T) {
	db := newTestDB(t)
	stubGateway(t, gatewaySuccessBody, http.StatusOK)
	user, product := seedCheckout(t, db, 5, 2)

	first := performCallback(user.ID, "txn-replay")
	require.Equal(t, http.StatusFound, first.Code)

	second := performCallback(user.ID, "txn-replay")

	// Replay still lands on success but creates nothing new
	assert.Equal(t, http.StatusFound, second.Code)
	assert.Equal(t, "https://shop.example.com/v1/payment/success", second.Header().Get("Location"))

	assert.Equal(t, int64(1), countRows(t, db, &models.Payment{}))
	assert.Equal(t, int64(1), countRows(t, db, &models.Order{}))
	assert.Equal(t, int64(1), countRows(t, db, &models.PaymentSummary{}))

	var got models.Product
	require.NoError(t, db.First(&got, product.ID).Error)
	assert.Equal(t, 3, got.Stock)
}

func TestCallbackInsufficientStockRollsBack(t *testing.T) {
	db := newTestDB(t)
	stubGateway(t, gatewaySuccessBody, http.StatusOK)
	user, product := seedCheckout(t, db, 1, 2)

	w := performCallback(user.ID, "txn-short-stock")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://shop.example.com/v1/payment/failure", w.Header().Get("Location"))

	// The whole fulfilment rolled back: no payment, cart intact, stock floor held
	assert.Zero(t, countRows(t, db, &models.Payment{}))
	assert.Zero(t, countRows(t, db, &models.Order{}))
	assert.Equal(t, int64(1), countRows(t, db, &models.CartItem{}))

	var got models.Product
	require.NoError(t, db.First(&got, product.ID).Error)
	assert.Equal(t, 1, got.Stock)
}
