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

// VariantRepo реализует репозиторий вариантов товара поверх PostgreSQL.
type VariantRepo struct {
	pool *pgxpool.Pool
	conv converter.VariantConverter
}

func NewVariantRepo(pool *pgxpool.Pool, conv converter.VariantConverter) *VariantRepo {
	return &VariantRepo{pool: pool, conv: conv}
}

func (v *VariantRepo) Create(ctx context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error) {
	db := tr.TrOrPool(ctx, v.pool)

	model := v.conv.ToModel(variant)
	query := `
		INSERT INTO product_variants (
			product_id,
			name,
			price_adjustment,
			sku,
			in_stock,
			stock_quantity
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`

	if err := db.QueryRow(ctx, query,
		model.ProductID,
		model.Name,
		model.PriceAdjustment,
		model.SKU,
		model.InStock,
		model.StockQuantity,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToEntity(model), nil
}

// GetByID возвращает вариант. Чтение внутри транзакции заказа идёт через неё.
func (v *VariantRepo) GetByID(ctx context.Context, id int64) (*domain.ProductVariant, error) {
	db := tr.TrOrPool(ctx, v.pool)

	query := `
		SELECT id, product_id, name, price_adjustment, sku, in_stock, stock_quantity, created_at
		FROM product_variants
		WHERE id = $1;
	`

	var model converter.VariantModel
	err := db.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.ProductID, &model.Name, &model.PriceAdjustment,
		&model.SKU, &model.InStock, &model.StockQuantity, &model.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrVariantNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToEntity(&model), nil
}
