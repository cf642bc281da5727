package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zelezara-doo/shop-backend/internal/domain"
	"github.com/zelezara-doo/shop-backend/pkg/e"
)

type fakeCategoryRepo struct {
	nextID  int64
	created []domain.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	f.nextID++
	saved := *category
	saved.ID = f.nextID
	f.created = append(f.created, saved)
	return &saved, nil
}

func (f *fakeCategoryRepo) List(context.Context) ([]domain.Category, error) {
	return f.created, nil
}

type fakeSubcategoryRepo struct {
	createErr error
	created   []domain.Subcategory
}

func (f *fakeSubcategoryRepo) Create(_ context.Context, subcategory *domain.Subcategory) (*domain.Subcategory, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	saved := *subcategory
	saved.ID = int64(len(f.created) + 1)
	f.created = append(f.created, saved)
	return &saved, nil
}

type fakeProductImageRepo struct {
	insertErr error
	inserted  []domain.ProductImage
}

func (f *fakeProductImageRepo) Insert(_ context.Context, image *domain.ProductImage) (*domain.ProductImage, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	saved := *image
	saved.ID = int64(len(f.inserted) + 1)
	f.inserted = append(f.inserted, saved)
	return &saved, nil
}

type fakeImagesInfra struct {
	uploadErr   error
	uploaded    []UploadImage
	cleanedKeys []string
}

func (f *fakeImagesInfra) UploadImages(_ context.Context, req *UploadImagesReq) (*UploadImagesRes, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}

	keys := make([]string, 0, len(req.Images))
	for i, img := range req.Images {
		f.uploaded = append(f.uploaded, img)
		keys = append(keys, fmt.Sprintf("%s/%d.jpg", req.Name, i))
	}
	return NewUploadImagesRes(keys), nil
}

func (f *fakeImagesInfra) CleanupImages(keys []string) {
	f.cleanedKeys = append(f.cleanedKeys, keys...)
}

type catalogUCFixture struct {
	uc         *CatalogUseCase
	categories *fakeCategoryRepo
	subs       *fakeSubcategoryRepo
	products   *fakeProductRepo
	variants   *fakeVariantRepo
	images     *fakeProductImageRepo
	infra      *fakeImagesInfra
	cache      *fakeCacheRepo
	tx         *fakeTxManager
}

func newCatalogUCFixture() *catalogUCFixture {
	f := &catalogUCFixture{
		categories: &fakeCategoryRepo{},
		subs:       &fakeSubcategoryRepo{},
		products:   &fakeProductRepo{products: make(map[int64]domain.Product)},
		variants:   &fakeVariantRepo{variants: make(map[int64]domain.ProductVariant)},
		images:     &fakeProductImageRepo{},
		infra:      &fakeImagesInfra{},
		cache:      newFakeCacheRepo(),
		tx:         &fakeTxManager{},
	}

	f.uc = NewCatalogUC(
		f.categories, f.subs, f.products, f.variants,
		f.images, f.infra, f.cache, f.tx, nopLogger{},
	)

	return f
}

func TestCreateCategory(t *testing.T) {
	f := newCatalogUCFixture()

	category, err := f.uc.CreateCategory(context.Background(), &CreateCategoryReq{
		Name:        "Cevi",
		Description: "Celicne cevi svih profila",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), category.ID)
	assert.Equal(t, "Cevi", category.Name)
}

func TestCreateCategoryRequiresName(t *testing.T) {
	f := newCatalogUCFixture()

	_, err := f.uc.CreateCategory(context.Background(), &CreateCategoryReq{Name: "   "})
	require.ErrorIs(t, err, e.ErrCategoryNameRequired)
	assert.Empty(t, f.categories.created)
}

func TestCreateSubcategory(t *testing.T) {
	f := newCatalogUCFixture()

	subcategory, err := f.uc.CreateSubcategory(context.Background(), &CreateSubcategoryReq{
		CategoryID:  1,
		Name:        "Kvadratne",
		Description: "Kvadratni profili",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), subcategory.CategoryID)
	assert.Equal(t, "Kvadratne", subcategory.Name)
}

func TestCreateSubcategoryRequiresName(t *testing.T) {
	f := newCatalogUCFixture()

	_, err := f.uc.CreateSubcategory(context.Background(), &CreateSubcategoryReq{
		CategoryID: 1,
		Name:       "   ",
	})
	require.ErrorIs(t, err, e.ErrSubcategoryNameRequired)
	assert.Empty(t, f.subs.created)
}

func TestCreateProduct(t *testing.T) {
	f := newCatalogUCFixture()

	salePrice := int64(90_000)
	product, err := f.uc.CreateProduct(context.Background(), &CreateProductReq{
		Name:          "Kvadratna cev 20x20",
		Price:         135_000,
		CategoryID:    3,
		OnSale:        true,
		SalePrice:     &salePrice,
		StockQuantity: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(135_000), product.Price)
	assert.True(t, product.OnSale)
	assert.True(t, product.InStock)
	assert.Equal(t, 50, product.StockQuantity)
}

func TestCreateProductInvalidatesPricingCache(t *testing.T) {
	f := newCatalogUCFixture()

	// Следующий созданный товар получит ID 1
	require.NoError(t, f.cache.SetPricing(context.Background(), []domain.Product{
		{ID: 1, Name: "stale", Price: 1},
	}))

	_, err := f.uc.CreateProduct(context.Background(), &CreateProductReq{
		Name: "Kvadratna cev", Price: 135_000, CategoryID: 3,
	})
	require.NoError(t, err)

	cached, err := f.cache.GetPricing(context.Background(), []int64{1})
	require.NoError(t, err)
	assert.Empty(t, cached)
}

func TestCreateProductValidation(t *testing.T) {
	negative := int64(-1)

	tests := []struct {
		name    string
		req     *CreateProductReq
		wantErr error
	}{
		{"без имени", &CreateProductReq{Price: 100}, e.ErrProductNameRequired},
		{"нулевая цена", &CreateProductReq{Name: "Cev", Price: 0}, e.ErrInvalidPrice},
		{"отрицательная акционная цена", &CreateProductReq{Name: "Cev", Price: 100, SalePrice: &negative}, e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCatalogUCFixture()

			_, err := f.uc.CreateProduct(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateVariant(t *testing.T) {
	f := newCatalogUCFixture()
	f.products.products[1] = domain.Product{ID: 1, Name: "Kvadratna cev", Price: 135_000}

	created, err := f.uc.CreateVariant(context.Background(), &CreateVariantReq{
		ProductID:       1,
		Name:            "20x20x2mm",
		PriceAdjustment: -5_000,
		SKU:             "KC-20-2",
		StockQuantity:   10,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.Variant.ProductID)
	assert.Equal(t, int64(-5_000), created.Variant.PriceAdjustment)
	assert.True(t, created.Variant.InStock)

	// Цена варианта считается от действующей цены товара
	assert.Equal(t, int64(130_000), created.FinalPrice)
}

func TestCreateVariantFinalPriceFromSalePrice(t *testing.T) {
	f := newCatalogUCFixture()

	salePrice := int64(100_000)
	f.products.products[1] = domain.Product{
		ID: 1, Name: "Kvadratna cev", Price: 135_000, OnSale: true, SalePrice: &salePrice,
	}

	created, err := f.uc.CreateVariant(context.Background(), &CreateVariantReq{
		ProductID:       1,
		Name:            "20x20x2mm",
		PriceAdjustment: 20_000,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(120_000), created.FinalPrice)
}

func TestCreateVariantUnknownProduct(t *testing.T) {
	f := newCatalogUCFixture()

	_, err := f.uc.CreateVariant(context.Background(), &CreateVariantReq{
		ProductID: 404, Name: "20x20x2mm",
	})
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCreateVariantRequiresName(t *testing.T) {
	f := newCatalogUCFixture()
	f.products.products[1] = domain.Product{ID: 1, Price: 135_000}

	_, err := f.uc.CreateVariant(context.Background(), &CreateVariantReq{ProductID: 1})
	require.ErrorIs(t, err, e.ErrVariantNameRequired)
}

func TestAddProductImages(t *testing.T) {
	f := newCatalogUCFixture()
	f.products.products[1] = domain.Product{ID: 1, Name: "Kvadratna cev", Price: 135_000}

	saved, err := f.uc.AddProductImages(context.Background(), &AddProductImagesReq{
		ProductID: 1,
		AltText:   "Kvadratna cev 20x20",
		Images: []UploadImage{
			{Data: []byte("jpg-1"), MimeType: "image/jpeg", Size: 5, Name: "a.jpg"},
			{Data: []byte("jpg-2"), MimeType: "image/jpeg", Size: 5, Name: "b.jpg"},
		},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)

	// Первое изображение становится главным
	assert.True(t, saved[0].IsPrimary)
	assert.False(t, saved[1].IsPrimary)
	assert.Equal(t, 0, saved[0].SortOrder)
	assert.Equal(t, 1, saved[1].SortOrder)
	assert.Empty(t, f.infra.cleanedKeys)
}

func TestAddProductImagesRequiresImages(t *testing.T) {
	f := newCatalogUCFixture()

	_, err := f.uc.AddProductImages(context.Background(), &AddProductImagesReq{ProductID: 1})
	require.ErrorIs(t, err, e.ErrNoImages)
}

func TestAddProductImagesUnknownProduct(t *testing.T) {
	f := newCatalogUCFixture()

	_, err := f.uc.AddProductImages(context.Background(), &AddProductImagesReq{
		ProductID: 404,
		Images:    []UploadImage{{Data: []byte("jpg"), MimeType: "image/jpeg"}},
	})
	require.ErrorIs(t, err, e.ErrProductNotFound)
	assert.Empty(t, f.infra.uploaded)
}

func TestAddProductImagesCleansUpAfterMetadataFailure(t *testing.T) {
	f := newCatalogUCFixture()
	f.products.products[1] = domain.Product{ID: 1, Name: "Kvadratna cev", Price: 135_000}
	f.images.insertErr = errors.New("connection reset")

	_, err := f.uc.AddProductImages(context.Background(), &AddProductImagesReq{
		ProductID: 1,
		Images: []UploadImage{
			{Data: []byte("jpg-1"), MimeType: "image/jpeg"},
			{Data: []byte("jpg-2"), MimeType: "image/jpeg"},
		},
	})
	require.Error(t, err)

	// Загруженные объекты зачищаются, если метаданные не записались
	assert.Len(t, f.infra.cleanedKeys, 2)
}
