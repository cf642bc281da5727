package http

import (
	"net/http"
	"strconv"

	"github.com/zelezara-doo/shop-backend/internal/usecase"
	"github.com/zelezara-doo/shop-backend/pkg/e"
	"github.com/zelezara-doo/shop-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listCategories
//
//	@Summary	Список категорий
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	CategoryResponse	"Категории с подкатегориями"
//	@Router		/categories [get]
func (c *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, *NewCategoryResponse(&categories[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// listProducts
//
//	@Summary	Список товаров
//	@Tags		catalog
//	@Produce	json
//	@Param		category_id	query	int	false	"Фильтр по категории"
//	@Success	200	{array}		ProductResponse	"Товары"
//	@Failure	400	{object}	ErrorResponse	"Некорректный фильтр"
//	@Router		/products [get]
func (c *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			WriteError(w, e.ErrStatusBadRequest)
			return
		}
		categoryID = &id
	}

	products, err := c.catalogUsecase.ListProducts(r.Context(), categoryID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, *NewProductResponse(&products[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// getProduct
//
//	@Summary	Товар по ID
//	@Tags		catalog
//	@Produce	json
//	@Param		id	path		int				true	"ID товара"
//	@Success	200	{object}	ProductResponse	"Товар с вариантами и изображениями"
//	@Failure	404	{object}	ErrorResponse	"Товар не найден"
//	@Router		/products/{id} [get]
func (c *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := c.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(product))
}

// createCategory
//
//	@Summary	Создание категории
//	@Tags		catalog
//	@Accept		json
//	@Produce	json
//	@Param		category	body		CreateCategoryRequest	true	"Категория"
//	@Success	201			{object}	CategoryResponse		"Созданная категория"
//	@Failure	400			{object}	ErrorResponse			"Ошибка валидации"
//	@Security	AdminToken
//	@Router		/categories [post]
func (c *CatalogHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	category, err := c.catalogUsecase.CreateCategory(r.Context(), &usecase.CreateCategoryReq{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewCategoryResponse(category))
}

// createSubcategory
//
//	@Summary	Создание подкатегории
//	@Tags		catalog
//	@Accept		json
//	@Produce	json
//	@Param		subcategory	body		CreateSubcategoryRequest	true	"Подкатегория"
//	@Success	201			{object}	SubcategoryResponse			"Созданная подкатегория"
//	@Failure	400			{object}	ErrorResponse				"Ошибка валидации"
//	@Security	AdminToken
//	@Router		/subcategories [post]
func (c *CatalogHandler) createSubcategory(w http.ResponseWriter, r *http.Request) {
	var req CreateSubcategoryRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	subcategory, err := c.catalogUsecase.CreateSubcategory(r.Context(), &usecase.CreateSubcategoryReq{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewSubcategoryResponse(subcategory))
}

// createProduct
//
//	@Summary	Создание товара
//	@Tags		catalog
//	@Accept		json
//	@Produce	json
//	@Param		product	body		CreateProductRequest	true	"Товар"
//	@Success	201		{object}	ProductResponse			"Созданный товар"
//	@Failure	400		{object}	ErrorResponse			"Ошибка валидации"
//	@Security	AdminToken
//	@Router		/products [post]
func (c *CatalogHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	price, err := parsePriceToCents(req.Price)
	if err != nil {
		WriteError(w, err)
		return
	}

	var salePrice *int64
	if req.SalePrice != nil {
		parsed, err := parsePriceToCents(*req.SalePrice)
		if err != nil {
			WriteError(w, err)
			return
		}
		salePrice = &parsed
	}

	product, err := c.catalogUsecase.CreateProduct(r.Context(), &usecase.CreateProductReq{
		Name:          req.Name,
		Description:   req.Description,
		Price:         price,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		OnSale:        req.OnSale,
		SalePrice:     salePrice,
		Featured:      req.Featured,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewProductResponse(product))
}

// createVariant
//
//	@Summary	Создание варианта товара
//	@Tags		catalog
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"ID товара"
//	@Param		variant	body		CreateVariantRequest	true	"Вариант"
//	@Success	201		{object}	VariantResponse			"Созданный вариант"
//	@Failure	400		{object}	ErrorResponse			"Ошибка валидации"
//	@Failure	404		{object}	ErrorResponse			"Товар не найден"
//	@Security	AdminToken
//	@Router		/products/{id}/variants [post]
func (c *CatalogHandler) createVariant(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req CreateVariantRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	adjustment, err := parseAdjustmentToCents(req.PriceAdjustment)
	if err != nil {
		WriteError(w, err)
		return
	}

	created, err := c.catalogUsecase.CreateVariant(r.Context(), &usecase.CreateVariantReq{
		ProductID:       productID,
		Name:            req.Name,
		PriceAdjustment: adjustment,
		SKU:             req.SKU,
		StockQuantity:   req.StockQuantity,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, VariantResponse{
		ID:              created.Variant.ID,
		ProductID:       created.Variant.ProductID,
		Name:            created.Variant.Name,
		PriceAdjustment: formatPrice(created.Variant.PriceAdjustment),
		FinalPrice:      formatPrice(created.FinalPrice),
		SKU:             created.Variant.SKU,
		InStock:         created.Variant.InStock,
		StockQuantity:   created.Variant.StockQuantity,
	})
}

// addProductImages
//
//	@Summary		Загрузка изображений товара
//	@Description	Загружает изображения в хранилище и привязывает их к товару
//	@Tags			catalog
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		int		true	"ID товара"
//	@Param			images	formData	file	true	"Изображения"
//	@Param			alt_text formData	string	false	"Альтернативный текст"
//	@Success		201		{array}		ProductImageResponse	"Сохранённые изображения"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse			"Товар не найден"
//	@Security		AdminToken
//	@Router			/products/{id}/images [post]
func (c *CatalogHandler) addProductImages(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	productID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"])
	if err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	saved, err := c.catalogUsecase.AddProductImages(r.Context(), &usecase.AddProductImagesReq{
		ProductID: productID,
		AltText:   r.FormValue("alt_text"),
		Images:    images,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]ProductImageResponse, 0, len(saved))
	for _, image := range saved {
		result = append(result, ProductImageResponse{
			ID:        image.ID,
			ObjectKey: image.ObjectKey,
			AltText:   image.AltText,
			IsPrimary: image.IsPrimary,
			SortOrder: image.SortOrder,
		})
	}

	WriteSuccess(w, http.StatusCreated, result)
}
