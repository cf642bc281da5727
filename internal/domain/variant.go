package domain

import "time"

// ProductVariant описывает вариант товара (например, размерность профиля).
// PriceAdjustment прибавляется к действующей цене товара и может быть отрицательным.
type ProductVariant struct {
	ID              int64
	ProductID       int64
	Name            string
	PriceAdjustment int64 // В минорных единицах валюты, со знаком
	SKU             string
	InStock         bool
	StockQuantity   int
	CreatedAt       time.Time
}

func NewProductVariant(productID int64, name string, priceAdjustment int64, sku string) *ProductVariant {
	return &ProductVariant{
		ProductID:       productID,
		Name:            name,
		PriceAdjustment: priceAdjustment,
		SKU:             sku,
		InStock:         true,
	}
}

// FinalPrice возвращает цену варианта от действующей базовой цены.
// Отрицательная корректировка не может опустить цену ниже нуля.
func (v *ProductVariant) FinalPrice(basePrice int64) int64 {
	price := basePrice + v.PriceAdjustment
	if price < 0 {
		return 0
	}

	return price
}
