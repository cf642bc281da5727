package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/zelezara-doo/shop-backend/internal/domain"
	"github.com/zelezara-doo/shop-backend/internal/repository/pgdb/converter"
	"github.com/zelezara-doo/shop-backend/pkg/e"
	"github.com/zelezara-doo/shop-backend/pkg/tr"
)

// ProductImageRepo хранит метаданные изображений товара в PostgreSQL.
// Сами объекты лежат в S3-хранилище, здесь только ключи и порядок показа.
type ProductImageRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductImageConverter
}

func NewProductImageRepo(pool *pgxpool.Pool, conv converter.ProductImageConverter) *ProductImageRepo {
	return &ProductImageRepo{pool: pool, conv: conv}
}

func (p *ProductImageRepo) Insert(ctx context.Context, image *domain.ProductImage) (*domain.ProductImage, error) {
	db := tr.TrOrPool(ctx, p.pool)

	model := p.conv.ToModel(image)
	query := `
		INSERT INTO product_images (product_id, object_key, alt_text, is_primary, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`

	if err := db.QueryRow(ctx, query,
		model.ProductID,
		model.ObjectKey,
		model.AltText,
		model.IsPrimary,
		model.SortOrder,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}
