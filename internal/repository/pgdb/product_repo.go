package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/zelezara-doo/shop-backend/internal/domain"
	"github.com/zelezara-doo/shop-backend/internal/repository/pgdb/converter"
	"github.com/zelezara-doo/shop-backend/pkg/e"
	"github.com/zelezara-doo/shop-backend/pkg/tr"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool        *pgxpool.Pool
	conv        converter.ProductConverter
	variantConv converter.VariantConverter
	imageConv   converter.ProductImageConverter
}

func NewProductRepo(
	pool *pgxpool.Pool,
	conv converter.ProductConverter,
	variantConv converter.VariantConverter,
	imageConv converter.ProductImageConverter,
) *ProductRepo {
	return &ProductRepo{
		pool:        pool,
		conv:        conv,
		variantConv: variantConv,
		imageConv:   imageConv,
	}
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	db := tr.TrOrPool(ctx, p.pool)

	model := p.conv.ToModel(product)
	query := `
		INSERT INTO products (
			name,
			description,
			price,
			category_id,
			subcategory_id,
			on_sale,
			sale_price,
			featured,
			in_stock,
			stock_quantity
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at;
	`

	if err := db.QueryRow(ctx, query,
		model.Name,
		model.Description,
		model.Price,
		model.CategoryID,
		model.SubcategoryID,
		model.OnSale,
		model.SalePrice,
		model.Featured,
		model.InStock,
		model.StockQuantity,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// GetPricing возвращает ценовую проекцию товара: только поля,
// участвующие в расчёте действующей цены. Внутри транзакции заказа
// чтение идёт через неё же, снимок цен согласован со вставкой позиций.
func (p *ProductRepo) GetPricing(ctx context.Context, id int64) (*domain.Product, error) {
	db := tr.TrOrPool(ctx, p.pool)

	query := `
		SELECT id, name, price, on_sale, sale_price
		FROM products
		WHERE id = $1;
	`

	var model converter.ProductModel
	err := db.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Price, &model.OnSale, &model.SalePrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetByID возвращает товар с вариантами и изображениями.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT
			id, name, description, price, category_id, subcategory_id,
			on_sale, sale_price, featured, in_stock, stock_quantity,
			created_at, updated_at
		FROM products
		WHERE id = $1;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Description, &model.Price,
		&model.CategoryID, &model.SubcategoryID, &model.OnSale, &model.SalePrice,
		&model.Featured, &model.InStock, &model.StockQuantity,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	variants, err := p.variantsByProductIDs(ctx, []int64{id})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	images, err := p.imagesByProductIDs(ctx, []int64{id})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	product := p.conv.ToEntity(&model)
	product.Variants = variants[id]
	product.Images = images[id]

	return product, nil
}

// List возвращает товары каталога, опционально сужая выборку до категории.
func (p *ProductRepo) List(ctx context.Context, categoryID *int64) ([]domain.Product, error) {
	query := `
		SELECT
			id, name, description, price, category_id, subcategory_id,
			on_sale, sale_price, featured, in_stock, stock_quantity,
			created_at, updated_at
		FROM products
		WHERE $1::bigint IS NULL OR category_id = $1
		ORDER BY id;
	`

	rows, err := p.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var products []domain.Product
	var ids []int64
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Description, &model.Price,
			&model.CategoryID, &model.SubcategoryID, &model.OnSale, &model.SalePrice,
			&model.Featured, &model.InStock, &model.StockQuantity,
			&model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		products = append(products, *p.conv.ToEntity(&model))
		ids = append(ids, model.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(products) == 0 {
		return []domain.Product{}, nil
	}

	variants, err := p.variantsByProductIDs(ctx, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	images, err := p.imagesByProductIDs(ctx, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	for i := range products {
		products[i].Variants = variants[products[i].ID]
		products[i].Images = images[products[i].ID]
	}

	return products, nil
}

func (p *ProductRepo) variantsByProductIDs(ctx context.Context, ids []int64) (map[int64][]domain.ProductVariant, error) {
	query := `
		SELECT id, product_id, name, price_adjustment, sku, in_stock, stock_quantity, created_at
		FROM product_variants
		WHERE product_id = ANY($1)
		ORDER BY id;
	`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	grouped := make(map[int64][]domain.ProductVariant, len(ids))
	for rows.Next() {
		var model converter.VariantModel
		if err := rows.Scan(
			&model.ID, &model.ProductID, &model.Name, &model.PriceAdjustment,
			&model.SKU, &model.InStock, &model.StockQuantity, &model.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		variant := p.variantConv.ToEntity(&model)
		grouped[model.ProductID] = append(grouped[model.ProductID], *variant)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return grouped, nil
}

func (p *ProductRepo) imagesByProductIDs(ctx context.Context, ids []int64) (map[int64][]domain.ProductImage, error) {
	query := `
		SELECT id, product_id, object_key, alt_text, is_primary, sort_order, created_at
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY sort_order, id;
	`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	grouped := make(map[int64][]domain.ProductImage, len(ids))
	for rows.Next() {
		var model converter.ProductImageModel
		if err := rows.Scan(
			&model.ID, &model.ProductID, &model.ObjectKey, &model.AltText,
			&model.IsPrimary, &model.SortOrder, &model.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		image := p.imageConv.ToEntity(&model)
		grouped[model.ProductID] = append(grouped[model.ProductID], *image)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return grouped, nil
}
