package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zelezara-doo/shop-backend/internal/cfg"
	"github.com/zelezara-doo/shop-backend/internal/domain"
)

func TestFormatMinorUnits(t *testing.T) {
	assert.Equal(t, "1350.00", formatMinorUnits(135_000))
	assert.Equal(t, "0.00", formatMinorUnits(0))
	assert.Equal(t, "0.05", formatMinorUnits(5))
	assert.Equal(t, "13.50", formatMinorUnits(1_350))
	assert.Equal(t, "-50.00", formatMinorUnits(-5_000))
}

func TestBuildMessage(t *testing.T) {
	sender := NewSender(&cfg.SMTPCfg{
		From:    "shop@zelezara.rs",
		OwnerTo: "vlasnik@zelezara.rs",
	})

	variantID := int64(7)
	msg := string(sender.buildMessage(&domain.Order{
		ID:            42,
		CustomerName:  "Petar Petrovic",
		CustomerPhone: "+381601234567",
		Notes:         "pozvati pre isporuke",
		TotalAmount:   350_000,
		Items: []domain.OrderItem{
			{
				ProductID: 1, VariantID: &variantID, Quantity: 2,
				UnitPrice: 100_000, TotalPrice: 200_000,
				ProductName: "Kvadratna cev", VariantName: "20x20x2mm",
			},
			{
				ProductID: 2, Quantity: 3,
				UnitPrice: 50_000, TotalPrice: 150_000,
				ProductName: "Lim 2mm",
			},
		},
	}))

	assert.Contains(t, msg, "Subject: Nova porudzbina #42")
	assert.Contains(t, msg, "To: vlasnik@zelezara.rs")
	assert.Contains(t, msg, "Kupac: Petar Petrovic")
	assert.Contains(t, msg, "Napomena: pozvati pre isporuke")
	assert.Contains(t, msg, "Kvadratna cev (20x20x2mm) x2 - 2000.00 RSD")
	assert.Contains(t, msg, "Lim 2mm x3 - 1500.00 RSD")
	assert.Contains(t, msg, "Ukupno: 3500.00 RSD")

	// Email и адрес не заданы и в письмо не попадают
	assert.NotContains(t, msg, "Email:")
	assert.NotContains(t, msg, "Adresa:")
}

func TestSendOrderNotificationWithoutRecipient(t *testing.T) {
	sender := NewSender(&cfg.SMTPCfg{From: "shop@zelezara.rs"})

	err := sender.SendOrderNotification(context.Background(), &domain.Order{ID: 1})
	require.Error(t, err)
}
