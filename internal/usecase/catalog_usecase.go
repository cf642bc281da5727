package usecase

import (
	"context"
	"strings"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/zelezara-doo/shop-backend/internal/domain"
	"github.com/zelezara-doo/shop-backend/pkg/e"
	"github.com/zelezara-doo/shop-backend/pkg/logger"
)

// CatalogUseCase реализует чтение каталога и административные операции над ним.
type CatalogUseCase struct {
	categoryRepo    CategoryRepository
	subcategoryRepo SubcategoryRepository
	productRepo     ProductRepository
	variantRepo     VariantRepository
	imageRepo       ProductImageRepository
	imagesInfra     ImagesInfra
	cacheRepo       CacheRepository
	txManager       trm.Manager
	logger          logger.Logger
}

func NewCatalogUC(
	categoryRepo CategoryRepository,
	subcategoryRepo SubcategoryRepository,
	productRepo ProductRepository,
	variantRepo VariantRepository,
	imageRepo ProductImageRepository,
	imagesInfra ImagesInfra,
	cacheRepo CacheRepository,
	txManager trm.Manager,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		productRepo:     productRepo,
		variantRepo:     variantRepo,
		imageRepo:       imageRepo,
		imagesInfra:     imagesInfra,
		cacheRepo:       cacheRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

func (c *CatalogUseCase) ListProducts(ctx context.Context, categoryID *int64) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.productRepo.List(ctx, categoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// CreateCategory идемпотентно создаёт категорию по уникальному имени.
func (c *CatalogUseCase) CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error) {
	const op = "CatalogUseCase.CreateCategory"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrCategoryNameRequired)
	}

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(req.Name, req.Description))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

func (c *CatalogUseCase) CreateSubcategory(ctx context.Context, req *CreateSubcategoryReq) (*domain.Subcategory, error) {
	const op = "CatalogUseCase.CreateSubcategory"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrSubcategoryNameRequired)
	}

	subcategory, err := c.subcategoryRepo.Create(ctx, domain.NewSubcategory(req.CategoryID, req.Name, req.Description))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return subcategory, nil
}

func (c *CatalogUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.CreateProduct"

	if err := validateProductReq(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(req.Name, req.Description, req.Price, req.CategoryID, req.SubcategoryID)
	product.OnSale = req.OnSale
	product.SalePrice = req.SalePrice
	product.Featured = req.Featured
	product.StockQuantity = req.StockQuantity

	created, err := c.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.invalidatePricing(ctx, created.ID)

	return created, nil
}

func (c *CatalogUseCase) CreateVariant(ctx context.Context, req *CreateVariantReq) (*CreatedVariant, error) {
	const op = "CatalogUseCase.CreateVariant"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrVariantNameRequired)
	}

	// Вариант обязан ссылаться на существующий товар
	product, err := c.productRepo.GetPricing(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	variant := domain.NewProductVariant(req.ProductID, req.Name, req.PriceAdjustment, req.SKU)
	variant.StockQuantity = req.StockQuantity

	created, err := c.variantRepo.Create(ctx, variant)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCreatedVariant(created, created.FinalPrice(product.CurrentPrice())), nil
}

// AddProductImages загружает изображения в MinIO и сохраняет метаданные в БД.
// Если запись метаданных не удаётся, уже загруженные объекты зачищаются.
func (c *CatalogUseCase) AddProductImages(ctx context.Context, req *AddProductImagesReq) ([]domain.ProductImage, error) {
	const op = "CatalogUseCase.AddProductImages"

	if len(req.Images) == 0 {
		return nil, e.Wrap(op, e.ErrNoImages)
	}

	product, err := c.productRepo.GetPricing(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	uploadRes, err := c.imagesInfra.UploadImages(ctx, NewUploadImagesReq(product.Name, req.Images))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var saved []domain.ProductImage
	err = c.txManager.Do(ctx, func(ctx context.Context) error {
		for i, key := range uploadRes.ImagesKeys {
			image, err := c.imageRepo.Insert(ctx, domain.NewProductImage(req.ProductID, key, req.AltText, i == 0, i))
			if err != nil {
				return err
			}

			saved = append(saved, *image)
		}

		return nil
	})
	if err != nil {
		c.logger.Warnf(
			"Cleaning up orphaned images after transaction failure. product_id: %d, error: %v",
			req.ProductID,
			e.Wrap(op, err),
		)
		c.imagesInfra.CleanupImages(uploadRes.ImagesKeys)

		return nil, e.Wrap(op, err)
	}

	return saved, nil
}

// invalidatePricing удаляет из кэша ценовую проекцию товара.
func (c *CatalogUseCase) invalidatePricing(ctx context.Context, productID int64) {
	const op = "CatalogUseCase.invalidatePricing"

	if err := c.cacheRepo.DeletePricing(ctx, []int64{productID}); err != nil {
		c.logger.Warnf("Failed to invalidate pricing cache: %v", e.Wrap(op, err))
	}
}

func validateProductReq(req *CreateProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if req.Price <= 0 {
		return e.ErrInvalidPrice
	}

	if req.SalePrice != nil && *req.SalePrice < 0 {
		return e.ErrInvalidPrice
	}

	return nil
}
