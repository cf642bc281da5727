package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductCurrentPrice(t *testing.T) {
	salePrice := int64(108_000)

	tests := []struct {
		name    string
		product Product
		want    int64
	}{
		{
			name:    "без акции возвращается базовая цена",
			product: Product{Price: 135_000},
			want:    135_000,
		},
		{
			name:    "акция с заданной ценой замещает базовую",
			product: Product{Price: 135_000, OnSale: true, SalePrice: &salePrice},
			want:    108_000,
		},
		{
			name:    "акция без акционной цены не влияет на базовую",
			product: Product{Price: 135_000, OnSale: true},
			want:    135_000,
		},
		{
			name:    "акционная цена без флага акции игнорируется",
			product: Product{Price: 135_000, SalePrice: &salePrice},
			want:    135_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.CurrentPrice())
		})
	}
}

func TestNewProduct(t *testing.T) {
	p := NewProduct("Kvadratna cev 20x20", "Celicna cev", 135_000, 3, nil)

	assert.Equal(t, "Kvadratna cev 20x20", p.Name)
	assert.Equal(t, int64(135_000), p.Price)
	assert.True(t, p.InStock)
	assert.False(t, p.OnSale)
	assert.Nil(t, p.SalePrice)
}
