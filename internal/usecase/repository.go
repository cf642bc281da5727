package usecase

import (
	"context"

	"github.com/zelezara-doo/shop-backend/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	InsertItem(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error)
	SetTotal(ctx context.Context, orderID int64, total int64) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	MarkEmailSent(ctx context.Context, id int64) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// GetPricing возвращает товар без связей — только поля, нужные расчёту цены.
	GetPricing(ctx context.Context, id int64) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, categoryID *int64) ([]domain.Product, error)
}

type VariantRepository interface {
	Create(ctx context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error)
	GetByID(ctx context.Context, id int64) (*domain.ProductVariant, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type SubcategoryRepository interface {
	Create(ctx context.Context, subcategory *domain.Subcategory) (*domain.Subcategory, error)
}

type ProductImageRepository interface {
	Insert(ctx context.Context, image *domain.ProductImage) (*domain.ProductImage, error)
}

// ImageRepository — объектное хранилище изображений (S3/MinIO).
type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

// CacheRepository кэширует ценовую проекцию товаров.
type CacheRepository interface {
	GetPricing(ctx context.Context, ids []int64) (map[int64]domain.Product, error)
	SetPricing(ctx context.Context, products []domain.Product) error
	DeletePricing(ctx context.Context, ids []int64) error
}
