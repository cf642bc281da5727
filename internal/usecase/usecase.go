package usecase

import (
	"context"

	"github.com/zelezara-doo/shop-backend/internal/domain"
)

type OrderUC interface {
	CreateOrder(ctx context.Context, req *CreateOrderReq) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) (domain.OrderStatus, error)
}

type CatalogUC interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListProducts(ctx context.Context, categoryID *int64) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error)
	CreateSubcategory(ctx context.Context, req *CreateSubcategoryReq) (*domain.Subcategory, error)
	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	CreateVariant(ctx context.Context, req *CreateVariantReq) (*CreatedVariant, error)
	AddProductImages(ctx context.Context, req *AddProductImagesReq) ([]domain.ProductImage, error)
}
