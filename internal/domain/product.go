package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID            int64
	Name          string
	Description   string
	Price         int64 // Цена хранится в минорных единицах валюты
	CategoryID    int64
	SubcategoryID *int64
	OnSale        bool
	SalePrice     *int64
	Featured      bool
	InStock       bool
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     *time.Time

	Variants []ProductVariant
	Images   []ProductImage
}

func NewProduct(name, description string, price int64, categoryID int64, subcategoryID *int64) *Product {
	return &Product{
		Name:          name,
		Description:   description,
		Price:         price,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		InStock:       true,
	}
}

// CurrentPrice возвращает действующую цену товара:
// при активной акции с заданной акционной ценой — её, иначе базовую.
func (p *Product) CurrentPrice() int64 {
	if p.OnSale && p.SalePrice != nil {
		return *p.SalePrice
	}

	return p.Price
}
