package controllers

import (
	"fmt"
	"math"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/arvind-0212/ShopSphere/config"
	"github.com/arvind-0212/ShopSphere/models"
	"github.com/arvind-0212/ShopSphere/utils"
)

type paymentReportSummary struct {
	TotalPayments int
	TotalAmount   float64
	TotalBuyers   int
	AveragePaid   float64
}

func buildPaymentReportSummary(payments []models.Payment) paymentReportSummary {
	var summary paymentReportSummary
	buyerSet := make(map[uint]bool)
	for _, payment := range payments {
		summary.TotalPayments++
		summary.TotalAmount += payment.Amount
		buyerSet[payment.UserID] = true
	}
	summary.TotalBuyers = len(buyerSet)
	if summary.TotalPayments > 0 {
		summary.AveragePaid = math.Round((summary.TotalAmount/float64(summary.TotalPayments))*100) / 100
	}
	summary.TotalAmount = math.Round(summary.TotalAmount*100) / 100
	return summary
}

// GET /admin/payment-details/export?format=excel
// Admin: Download payment report as Excel
func DownloadPaymentReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadPaymentReportExcel called")

	var payments []models.Payment
	if err := config.DB.Order("created_at DESC").Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d payments for Excel report", len(payments))

	summary := buildPaymentReportSummary(payments)

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Payment Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("SHOPSPHERE - Payment Report")
	sheet.AddRow() // spacing

	headers := []string{"Payment ID", "User ID", "Transaction ID", "Date", "Buyer", "Email", "Phone", "Amount"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, payment := range payments {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(payment.ID))
		row.AddCell().SetInt(int(payment.UserID))
		row.AddCell().SetString(payment.MerchantTransactionID)
		row.AddCell().SetString(payment.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetString(payment.Name)
		row.AddCell().SetString(payment.Email)
		row.AddCell().SetString(payment.Phone)
		row.AddCell().SetFloat(payment.Amount)
	}

	sheet.AddRow() // spacing

	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Payments", fmt.Sprintf("%d", summary.TotalPayments)},
		{"Total Amount", fmt.Sprintf("%.2f", summary.TotalAmount)},
		{"Total Buyers", fmt.Sprintf("%d", summary.TotalBuyers)},
		{"Avg. Payment", fmt.Sprintf("%.2f", summary.AveragePaid)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=payment_report.xlsx")
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated Excel payment report")
}

// GET /admin/payment-details/export?format=pdf
// Admin: Download payment report as PDF
func DownloadPaymentReportPDF(c *gin.Context) {
	utils.LogInfo("DownloadPaymentReportPDF called")

	var payments []models.Payment
	if err := config.DB.Order("created_at DESC").Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d payments for PDF report", len(payments))

	summary := buildPaymentReportSummary(payments)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, "SHOPSPHERE - Payment Report")
	pdf.Ln(12)

	headers := []string{"Payment ID", "User ID", "Transaction ID", "Date", "Buyer", "Email", "Amount"}
	colWidths := []float64{25, 20, 70, 32, 40, 55, 25}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range headers {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	fill := false
	for _, payment := range payments {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		pdf.CellFormat(colWidths[0], 8, fmt.Sprintf("%d", payment.ID), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[1], 8, fmt.Sprintf("%d", payment.UserID), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[2], 8, payment.MerchantTransactionID, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[3], 8, payment.CreatedAt.Format("2006-01-02 15:04"), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[4], 8, payment.Name, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[5], 8, payment.Email, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[6], 8, fmt.Sprintf("%.2f", payment.Amount), "1", 0, "R", fill, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 13)
	pdf.SetFillColor(220, 230, 250)
	pdf.CellFormat(70, 10, "Summary", "1", 0, "C", true, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	pdf.SetFillColor(255, 255, 255)
	pdf.CellFormat(50, 8, "Total Payments", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d", summary.TotalPayments), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.CellFormat(50, 8, "Total Amount", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", summary.TotalAmount), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.CellFormat(50, 8, "Total Buyers", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d", summary.TotalBuyers), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.CellFormat(50, 8, "Avg. Payment", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", summary.AveragePaid), "1", 0, "R", false, 0, "")

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=payment_report.pdf")
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		utils.InternalServerError(c, "Failed to write PDF file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated PDF payment report")
}

// GET /admin/payment-details/export
// Dispatches on the format query parameter.
func DownloadPaymentReport(c *gin.Context) {
	switch c.DefaultQuery("format", "pdf") {
	case "pdf":
		DownloadPaymentReportPDF(c)
	case "excel":
		DownloadPaymentReportExcel(c)
	default:
		utils.BadRequest(c, "Invalid format", "Format must be pdf or excel")
	}
}
