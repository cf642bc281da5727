package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValid(t *testing.T) {
	valid := []OrderStatus{
		StatusPending, StatusConfirmed, StatusProcessing,
		StatusShipped, StatusCompleted, StatusCancelled,
	}
	for _, s := range valid {
		assert.True(t, s.Valid(), string(s))
	}

	invalid := []OrderStatus{"", "unknown", "PENDING", "Pending", "shipped "}
	for _, s := range invalid {
		assert.False(t, s.Valid(), string(s))
	}
}

func TestNewOrder(t *testing.T) {
	order := NewOrder("Petar Petrovic", "+381601234567", "petar@example.com", "Bulevar 1, Beograd", "pozvati pre isporuke")

	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, "Petar Petrovic", order.CustomerName)
	assert.Zero(t, order.TotalAmount)
	assert.False(t, order.EmailSent)
}

func TestNewOrderItemTotal(t *testing.T) {
	variantID := int64(7)

	item := NewOrderItem(1, 2, &variantID, 3, 45_000, "Kvadratna cev", "20x20x2mm")

	assert.Equal(t, int64(135_000), item.TotalPrice)
	assert.Equal(t, int64(45_000), item.UnitPrice)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, "Kvadratna cev", item.ProductName)
	assert.Equal(t, "20x20x2mm", item.VariantName)
}
