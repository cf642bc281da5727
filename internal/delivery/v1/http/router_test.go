package http

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/zelezara-doo/shop-backend/internal/domain"
	"github.com/zelezara-doo/shop-backend/internal/usecase"
	"github.com/zelezara-doo/shop-backend/pkg/e"
)

const testAdminToken = "test-admin-token"

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

// fakeOrderUC позволяет подменять поведение отдельных операций в тестах.
type fakeOrderUC struct {
	createFn       func(ctx context.Context, req *usecase.CreateOrderReq) (*domain.Order, error)
	getFn          func(ctx context.Context, id int64) (*domain.Order, error)
	listFn         func(ctx context.Context) ([]domain.Order, error)
	updateStatusFn func(ctx context.Context, orderID int64, status string) (domain.OrderStatus, error)
}

func (f *fakeOrderUC) CreateOrder(ctx context.Context, req *usecase.CreateOrderReq) (*domain.Order, error) {
	if f.createFn == nil {
		return nil, e.ErrInternalServerError
	}
	return f.createFn(ctx, req)
}

func (f *fakeOrderUC) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	if f.getFn == nil {
		return nil, e.ErrOrderNotFound
	}
	return f.getFn(ctx, id)
}

func (f *fakeOrderUC) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx)
}

func (f *fakeOrderUC) UpdateStatus(ctx context.Context, orderID int64, status string) (domain.OrderStatus, error) {
	if f.updateStatusFn == nil {
		return "", e.ErrOrderNotFound
	}
	return f.updateStatusFn(ctx, orderID, status)
}

type fakeCatalogUC struct {
	listCategoriesFn    func(ctx context.Context) ([]domain.Category, error)
	listProductsFn      func(ctx context.Context, categoryID *int64) ([]domain.Product, error)
	getProductFn        func(ctx context.Context, id int64) (*domain.Product, error)
	createCategoryFn    func(ctx context.Context, req *usecase.CreateCategoryReq) (*domain.Category, error)
	createSubcategoryFn func(ctx context.Context, req *usecase.CreateSubcategoryReq) (*domain.Subcategory, error)
	createProductFn     func(ctx context.Context, req *usecase.CreateProductReq) (*domain.Product, error)
	createVariantFn     func(ctx context.Context, req *usecase.CreateVariantReq) (*usecase.CreatedVariant, error)
	addImagesFn         func(ctx context.Context, req *usecase.AddProductImagesReq) ([]domain.ProductImage, error)
}

func (f *fakeCatalogUC) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if f.listCategoriesFn == nil {
		return nil, nil
	}
	return f.listCategoriesFn(ctx)
}

func (f *fakeCatalogUC) ListProducts(ctx context.Context, categoryID *int64) ([]domain.Product, error) {
	if f.listProductsFn == nil {
		return nil, nil
	}
	return f.listProductsFn(ctx, categoryID)
}

func (f *fakeCatalogUC) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if f.getProductFn == nil {
		return nil, e.ErrProductNotFound
	}
	return f.getProductFn(ctx, id)
}

func (f *fakeCatalogUC) CreateCategory(ctx context.Context, req *usecase.CreateCategoryReq) (*domain.Category, error) {
	if f.createCategoryFn == nil {
		return nil, e.ErrInternalServerError
	}
	return f.createCategoryFn(ctx, req)
}

func (f *fakeCatalogUC) CreateSubcategory(ctx context.Context, req *usecase.CreateSubcategoryReq) (*domain.Subcategory, error) {
	if f.createSubcategoryFn == nil {
		return nil, e.ErrInternalServerError
	}
	return f.createSubcategoryFn(ctx, req)
}

func (f *fakeCatalogUC) CreateProduct(ctx context.Context, req *usecase.CreateProductReq) (*domain.Product, error) {
	if f.createProductFn == nil {
		return nil, e.ErrInternalServerError
	}
	return f.createProductFn(ctx, req)
}

func (f *fakeCatalogUC) CreateVariant(ctx context.Context, req *usecase.CreateVariantReq) (*usecase.CreatedVariant, error) {
	if f.createVariantFn == nil {
		return nil, e.ErrInternalServerError
	}
	return f.createVariantFn(ctx, req)
}

func (f *fakeCatalogUC) AddProductImages(ctx context.Context, req *usecase.AddProductImagesReq) ([]domain.ProductImage, error) {
	if f.addImagesFn == nil {
		return nil, e.ErrInternalServerError
	}
	return f.addImagesFn(ctx, req)
}

func newTestRouter(orderUC usecase.OrderUC, catalogUC usecase.CatalogUC) *chi.Mux {
	mux := chi.NewRouter()
	NewRouter(mux, testAdminToken, nopLogger{}).Init(orderUC, catalogUC)
	return mux
}
