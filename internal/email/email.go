// Package email manda las notificaciones del storefront vía SendGrid.
package email

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Harshanad03/ecommerce-sub000/internal/models"
)

type Sender struct {
	client   *sendgrid.Client
	from     *mail.Email
	siteName string
}

func NewSender(apiKey, fromAddress, siteName string) *Sender {
	return &Sender{
		client:   sendgrid.NewSendClient(apiKey),
		from:     mail.NewEmail(siteName, fromAddress),
		siteName: siteName,
	}
}

// SendOrderConfirmation manda el resumen de la orden al comprador.
func (s *Sender) SendOrderConfirmation(to string, o *models.Order) error {
	subject := fmt.Sprintf("Order confirmation #%s", o.ID)
	plain := fmt.Sprintf(
		"Thank you for your purchase!\n\nOrder %s: %d item(s), total $%.2f.\n",
		o.ID, o.TotalItems, o.TotalAmount,
	)
	html := fmt.Sprintf(
		"<strong>Thank you for your purchase!</strong><br><br>Order <strong>%s</strong>: %d item(s), total <strong>$%.2f</strong>.",
		o.ID, o.TotalItems, o.TotalAmount,
	)

	message := mail.NewSingleEmail(s.from, subject, mail.NewEmail("", to), plain, html)
	response, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("email: sending confirmation: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("email: sendgrid returned %d", response.StatusCode)
	}
	return nil
}

// SendWelcome saluda a la cuenta recién creada.
func (s *Sender) SendWelcome(to, name string) error {
	subject := fmt.Sprintf("Welcome to %s", s.siteName)
	plain := fmt.Sprintf("Hi %s, your account is ready.\n", name)
	html := fmt.Sprintf("Hi <strong>%s</strong>, your account is ready.", name)

	message := mail.NewSingleEmail(s.from, subject, mail.NewEmail(name, to), plain, html)
	response, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("email: sending welcome: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("email: sendgrid returned %d", response.StatusCode)
	}
	return nil
}
