package utils

import (
	"fmt"
	"os"

	"github.com/keighl/postmark"
	"github.com/sirupsen/logrus"

	"foodie-api/models"
)

// EmailService sends transactional mail through Postmark.
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService builds an EmailService from POSTMARK_API_TOKEN and
// EMAIL_SENDER. Returns nil when no token is configured; callers treat a
// nil service as "emails disabled".
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		logrus.Warn("POSTMARK_API_TOKEN is not set; order confirmation emails are disabled")
		return nil
	}
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: os.Getenv("EMAIL_SENDER"),
	}
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderConfirmation notifies a customer that their order was placed.
func (es *EmailService) SendOrderConfirmation(toEmail, customerName string, order models.OrderResponse) error {
	restaurantName := "the restaurant"
	if order.Restaurant != nil {
		restaurantName = order.Restaurant.Name
	}
	subject := "Order Confirmation - Foodie"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Your order (ID: %s) at %s has been placed successfully.<br><br>Subtotal: <strong>%.2f</strong><br>Delivery Fee: <strong>%.2f</strong><br>Tax: <strong>%.2f</strong><br>Total: <strong>%.2f</strong><br><br>We'll let you know when it's on the way!",
		customerName,
		order.ID.Hex(),
		restaurantName,
		order.Subtotal,
		order.DeliveryFee,
		order.Tax,
		order.Total,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
