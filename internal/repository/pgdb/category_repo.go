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

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool    *pgxpool.Pool
	conv    converter.CategoryConverter
	subConv converter.SubcategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter, subConv converter.SubcategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv, subConv: subConv}
}

// Create идемпотентно создаёт категорию по уникальному имени: при конфликте
// возвращается существующая строка.
func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	db := tr.TrOrPool(ctx, c.pool)

	query := `
		INSERT INTO categories (name, description) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, description, created_at;
	`

	var model converter.CategoryModel
	if err := db.QueryRow(ctx, query, category.Name, category.Description).
		Scan(&model.ID, &model.Name, &model.Description, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// List возвращает категории вместе с их подкатегориями.
func (c *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, name, description, created_at FROM categories ORDER BY name;`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var categories []domain.Category
	var ids []int64
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Description, &model.CreatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		categories = append(categories, *c.conv.ToEntity(&model))
		ids = append(ids, model.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(categories) == 0 {
		return []domain.Category{}, nil
	}

	subcategories, err := c.subcategoriesByCategoryIDs(ctx, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	for i := range categories {
		categories[i].Subcategories = subcategories[categories[i].ID]
	}

	return categories, nil
}

func (c *CategoryRepo) subcategoriesByCategoryIDs(ctx context.Context, ids []int64) (map[int64][]domain.Subcategory, error) {
	query := `
		SELECT id, category_id, name, description, created_at
		FROM subcategories
		WHERE category_id = ANY($1)
		ORDER BY name;
	`

	rows, err := c.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	grouped := make(map[int64][]domain.Subcategory, len(ids))
	for rows.Next() {
		var model converter.SubcategoryModel
		if err := rows.Scan(&model.ID, &model.CategoryID, &model.Name, &model.Description, &model.CreatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		subcategory := c.subConv.ToEntity(&model)
		grouped[model.CategoryID] = append(grouped[model.CategoryID], *subcategory)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return grouped, nil
}
