package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jimlawless/whereami"
	"github.com/zelezara-doo/shop-backend/internal/cfg"
	"github.com/zelezara-doo/shop-backend/internal/domain"
	"github.com/zelezara-doo/shop-backend/pkg/e"
)

// Sender отправляет владельцу магазина письмо о новом заказе по SMTP.
// Канал уведомлений необязателен: вызывающая сторона сама решает,
// что делать с ошибкой доставки.
type Sender struct {
	cfg *cfg.SMTPCfg
}

func NewSender(cfg *cfg.SMTPCfg) *Sender {
	return &Sender{cfg: cfg}
}

func (s *Sender) SendOrderNotification(ctx context.Context, order *domain.Order) error {
	if s.cfg.OwnerTo == "" {
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("notification recipient is not configured"))
	}

	msg := s.buildMessage(order)
	addr := s.cfg.Host + ":" + s.cfg.Port

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, s.cfg.From, []string{s.cfg.OwnerTo}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		return nil
	case <-ctx.Done():
		return e.Wrap(whereami.WhereAmI(), ctx.Err())
	}
}

// buildMessage собирает текст письма со сводкой заказа.
func (s *Sender) buildMessage(order *domain.Order) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", s.cfg.OwnerTo)
	fmt.Fprintf(&b, "Subject: Nova porudzbina #%d\r\n", order.ID)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")

	fmt.Fprintf(&b, "Porudzbina #%d\r\n\r\n", order.ID)
	fmt.Fprintf(&b, "Kupac: %s\r\n", order.CustomerName)
	fmt.Fprintf(&b, "Telefon: %s\r\n", order.CustomerPhone)
	if order.CustomerEmail != "" {
		fmt.Fprintf(&b, "Email: %s\r\n", order.CustomerEmail)
	}
	if order.DeliveryAddress != "" {
		fmt.Fprintf(&b, "Adresa: %s\r\n", order.DeliveryAddress)
	}
	if order.Notes != "" {
		fmt.Fprintf(&b, "Napomena: %s\r\n", order.Notes)
	}

	b.WriteString("\r\nStavke:\r\n")
	for _, item := range order.Items {
		name := item.ProductName
		if item.VariantName != "" {
			name += " (" + item.VariantName + ")"
		}
		fmt.Fprintf(&b, "  %s x%d - %s RSD\r\n", name, item.Quantity, formatMinorUnits(item.TotalPrice))
	}

	fmt.Fprintf(&b, "\r\nUkupno: %s RSD\r\n", formatMinorUnits(order.TotalAmount))

	return []byte(b.String())
}

// formatMinorUnits печатает сумму в минорных единицах как "1350.00".
func formatMinorUnits(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}
