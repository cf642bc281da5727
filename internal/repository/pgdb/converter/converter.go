//go:generate goverter gen github.com/zelezara-doo/shop-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/zelezara-doo/shop-backend/internal/domain"
	"github.com/zelezara-doo/shop-backend/internal/usecase"
)

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	// goverter:ignore Subcategories
	ToEntity(model *CategoryModel) *domain.Category
}

// SubcategoryConverter преобразует сущности Subcategory между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type SubcategoryConverter interface {
	ToModel(entity *domain.Subcategory) *SubcategoryModel
	ToEntity(model *SubcategoryModel) *domain.Subcategory
	ToArrEntity(models []*SubcategoryModel) []domain.Subcategory
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	// goverter:ignore Variants Images
	ToEntity(model *ProductModel) *domain.Product
}

// VariantConverter преобразует сущности ProductVariant между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type VariantConverter interface {
	ToModel(entity *domain.ProductVariant) *VariantModel
	ToEntity(model *VariantModel) *domain.ProductVariant
	ToArrEntity(models []*VariantModel) []domain.ProductVariant
}

// ProductImageConverter преобразует сущности ProductImage между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type ProductImageConverter interface {
	ToModel(entity *domain.ProductImage) *ProductImageModel
	ToEntity(model *ProductImageModel) *domain.ProductImage
	ToArrEntity(models []*ProductImageModel) []domain.ProductImage
}

// OrderConverter преобразует сущности Order между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOrderStatus
// goverter:extend ConvertStatusString
type OrderConverter interface {
	ToModel(entity *domain.Order) *OrderModel
	// goverter:ignore Items
	ToEntity(model *OrderModel) *domain.Order
}

// OrderItemConverter преобразует сущности OrderItem между domain и моделью PostgreSQL.
// goverter:converter
type OrderItemConverter interface {
	ToModel(entity *domain.OrderItem) *OrderItemModel
	ToEntity(model *OrderItemModel) *domain.OrderItem
	ToArrEntity(models []*OrderItemModel) []domain.OrderItem
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutBoxStatus
// goverter:extend ConvertOutboxEventType
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertOrderStatus(s domain.OrderStatus) string {
	return string(s)
}

func ConvertStatusString(s string) domain.OrderStatus {
	return domain.OrderStatus(s)
}

func ConvertOutBoxStatus(s usecase.OutboxStatus) usecase.OutboxStatus {
	return s
}

func ConvertOutboxEventType(t usecase.OutboxEventType) usecase.OutboxEventType {
	return t
}
