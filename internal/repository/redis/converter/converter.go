//go:generate goverter gen github.com/zelezara-doo/shop-backend/internal/repository/redis/converter

package converter

import (
	"github.com/zelezara-doo/shop-backend/internal/domain"
)

// goverter:converter
type PricingConverter interface {
	// goverter:ignore Description CategoryID SubcategoryID Featured InStock StockQuantity CreatedAt UpdatedAt Variants Images
	ToEntity(model *PricingRedisModel) *domain.Product
	ToRedisModel(entity *domain.Product) *PricingRedisModel
	ToArrRedisModel(entities []domain.Product) []PricingRedisModel
}
