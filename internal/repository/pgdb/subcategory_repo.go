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

// SubcategoryRepo реализует репозиторий подкатегорий поверх PostgreSQL.
type SubcategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.SubcategoryConverter
}

func NewSubcategoryRepo(pool *pgxpool.Pool, conv converter.SubcategoryConverter) *SubcategoryRepo {
	return &SubcategoryRepo{pool: pool, conv: conv}
}

func (s *SubcategoryRepo) Create(ctx context.Context, subcategory *domain.Subcategory) (*domain.Subcategory, error) {
	db := tr.TrOrPool(ctx, s.pool)

	model := s.conv.ToModel(subcategory)
	query := `
		INSERT INTO subcategories (category_id, name, description)
		SELECT $1, $2, $3
		WHERE EXISTS (SELECT 1 FROM categories WHERE id = $1)
		RETURNING id, created_at;
	`

	err := db.QueryRow(ctx, query, model.CategoryID, model.Name, model.Description).
		Scan(&model.ID, &model.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(model), nil
}
