package domain

import "time"

// OrderStatus — статус заказа. Набор закрыт, переходы не ограничены.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid сообщает, входит ли значение в закрытый набор статусов.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing,
		StatusShipped, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Order — агрегат заказа. TotalAmount вычисляется при создании
// как сумма TotalPrice позиций и отдельно не редактируется.
type Order struct {
	ID              int64
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryAddress string
	Status          OrderStatus
	Notes           string
	AdminNotes      string
	TotalAmount     int64 // В минорных единицах валюты
	SMSSent         bool
	EmailSent       bool
	CreatedAt       time.Time
	UpdatedAt       *time.Time

	Items []OrderItem
}

func NewOrder(customerName, customerPhone, customerEmail, deliveryAddress, notes string) *Order {
	return &Order{
		CustomerName:    customerName,
		CustomerPhone:   customerPhone,
		CustomerEmail:   customerEmail,
		DeliveryAddress: deliveryAddress,
		Notes:           notes,
		Status:          StatusPending,
	}
}
