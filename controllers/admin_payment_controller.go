package controllers

import (
	"github.com/arvind-0212/ShopSphere/config"
	"github.com/arvind-0212/ShopSphere/models"
	"github.com/arvind-0212/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// GET /admin/payment-details/:page/:limit
// Paginated read of stored payment records in natural storage order.
func ListPaymentDetails(c *gin.Context) {
	utils.LogInfo("ListPaymentDetails called")

	pagination := utils.NewPaginationFromParams(c)
	utils.LogDebug("Listing payments, page: %d, limit: %d", pagination.Page, pagination.Limit)

	db := config.DB

	var totalCount int64
	if err := db.Model(&models.Payment{}).Count(&totalCount).Error; err != nil {
		utils.LogError("Failed to count payments: %v", err)
		utils.InternalServerError(c, "Failed to count payments", err.Error())
		return
	}
	pagination.SetTotal(totalCount)

	var payments []models.Payment
	if err := db.Offset(pagination.Offset).Limit(pagination.Limit).Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}

	utils.LogInfo("Retrieved %d payments, page %d of %d", len(payments), pagination.Page, pagination.TotalPages)
	utils.Success(c, "Payments retrieved successfully", gin.H{
		"data":          payments,
		"page":          pagination.Page,
		"totalPages":    pagination.TotalPages,
		"totalPayments": totalCount,
	})
}
