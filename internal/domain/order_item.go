package domain

// OrderItem — позиция заказа. ProductName, VariantName и UnitPrice —
// снимки на момент создания заказа: позиция не перечитывает живой товар,
// поэтому история заказов переживает переименование и удаление товаров.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	VariantID   *int64
	Quantity    int
	UnitPrice   int64 // В минорных единицах валюты, снимок на момент заказа
	TotalPrice  int64 // UnitPrice * Quantity
	ProductName string
	VariantName string
}

func NewOrderItem(
	orderID int64,
	productID int64,
	variantID *int64,
	quantity int,
	unitPrice int64,
	productName string,
	variantName string,
) *OrderItem {
	return &OrderItem{
		OrderID:     orderID,
		ProductID:   productID,
		VariantID:   variantID,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  unitPrice * int64(quantity),
		ProductName: productName,
		VariantName: variantName,
	}
}
