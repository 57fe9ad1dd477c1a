package utils

import (
	"fmt"
	"strconv"

	"github.com/arvind-0212/ShopSphere/config"
	"gopkg.in/gomail.v2"
)

// SendOrderConfirmationEmail mails the buyer after a successful payment.
// Callers fire it from a goroutine and only log failures; a lost mail
// must never fail a fulfilled order.
func SendOrderConfirmationEmail(to, name, merchantTransactionID string, amount float64, phone string) error {
	cfg := config.App
	if cfg == nil || !cfg.MailConfigured() {
		LogInfo("SMTP not configured, skipping confirmation email for transaction %s", merchantTransactionID)
		return nil
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil || port == 0 {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SMTPFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Order Payment Successful")

	body := fmt.Sprintf(`
		<div>
			<h1 style="text-align:center">Payment Successful</h1>
			<p>Dear %s,</p>
			<p>Your order has been placed.</p>
			<p>Your payment details:</p>
			<p>Transaction Id: %s</p>
			<p>Amount: %.2f</p>
			<p>Email: %s</p>
			<p>Phone: %s</p>
			<p>Thank you for shopping with us.</p>
			<p>Sincerely,</p>
			<p>ShopSphere</p>
		</div>
	`, name, merchantTransactionID, amount, to, phone)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUsername, cfg.SMTPPassword)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
