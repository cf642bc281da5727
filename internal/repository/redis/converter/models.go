package converter

// PricingRedisModel — ценовая проекция товара, хранящаяся в Redis в JSON.
type PricingRedisModel struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	OnSale    bool   `json:"on_sale"`
	SalePrice *int64 `json:"sale_price,omitempty"`
}
