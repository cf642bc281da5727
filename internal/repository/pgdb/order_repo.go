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

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool     *pgxpool.Pool
	conv     converter.OrderConverter
	itemConv converter.OrderItemConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter, itemConv converter.OrderItemConverter) *OrderRepo {
	return &OrderRepo{
		pool:     pool,
		conv:     conv,
		itemConv: itemConv,
	}
}

// Create вставляет строку заказа и возвращает её с присвоенным id.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	db := tr.TrOrPool(ctx, o.pool)

	model := o.conv.ToModel(order)
	query := `
		INSERT INTO orders (
			customer_name,
			customer_phone,
			customer_email,
			delivery_address,
			status,
			notes
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`

	if err := db.QueryRow(ctx, query,
		model.CustomerName,
		model.CustomerPhone,
		model.CustomerEmail,
		model.DeliveryAddress,
		model.Status,
		model.Notes,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(model), nil
}

// InsertItem вставляет позицию заказа со снимками названия и цены.
func (o *OrderRepo) InsertItem(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	db := tr.TrOrPool(ctx, o.pool)

	model := o.itemConv.ToModel(item)
	query := `
		INSERT INTO order_items (
			order_id,
			product_id,
			variant_id,
			quantity,
			unit_price,
			total_price,
			product_name,
			variant_name
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`

	if err := db.QueryRow(ctx, query,
		model.OrderID,
		model.ProductID,
		model.VariantID,
		model.Quantity,
		model.UnitPrice,
		model.TotalPrice,
		model.ProductName,
		model.VariantName,
	).Scan(&model.ID); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.itemConv.ToEntity(model), nil
}

// SetTotal записывает итог заказа, посчитанный по вставленным позициям.
func (o *OrderRepo) SetTotal(ctx context.Context, orderID int64, total int64) error {
	db := tr.TrOrPool(ctx, o.pool)

	query := `UPDATE orders SET total_amount = $1, updated_at = NOW() WHERE id = $2;`

	result, err := db.Exec(ctx, query, total, orderID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
	}

	return nil
}

// GetByID возвращает заказ вместе с позициями.
func (o *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT
			id, customer_name, customer_phone, customer_email, delivery_address,
			status, notes, admin_notes, total_amount, sms_sent, email_sent,
			created_at, updated_at
		FROM orders
		WHERE id = $1;
	`

	var model converter.OrderModel
	err := o.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.CustomerName, &model.CustomerPhone, &model.CustomerEmail,
		&model.DeliveryAddress, &model.Status, &model.Notes, &model.AdminNotes,
		&model.TotalAmount, &model.SMSSent, &model.EmailSent,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	items, err := o.itemsByOrderIDs(ctx, []int64{id})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	order := o.conv.ToEntity(&model)
	order.Items = items[id]

	return order, nil
}

// List возвращает все заказы с позициями, новые первыми.
func (o *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT
			id, customer_name, customer_phone, customer_email, delivery_address,
			status, notes, admin_notes, total_amount, sms_sent, email_sent,
			created_at, updated_at
		FROM orders
		ORDER BY created_at DESC;
	`

	rows, err := o.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var orders []domain.Order
	var ids []int64
	for rows.Next() {
		var model converter.OrderModel
		if err := rows.Scan(
			&model.ID, &model.CustomerName, &model.CustomerPhone, &model.CustomerEmail,
			&model.DeliveryAddress, &model.Status, &model.Notes, &model.AdminNotes,
			&model.TotalAmount, &model.SMSSent, &model.EmailSent,
			&model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		orders = append(orders, *o.conv.ToEntity(&model))
		ids = append(ids, model.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(orders) == 0 {
		return []domain.Order{}, nil
	}

	items, err := o.itemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}

	return orders, nil
}

// UpdateStatus безусловно перезаписывает статус заказа.
func (o *OrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	db := tr.TrOrPool(ctx, o.pool)

	query := `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2;`

	result, err := db.Exec(ctx, query, string(status), id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
	}

	return nil
}

// MarkEmailSent поднимает флаг отправленного письма после успешной доставки.
func (o *OrderRepo) MarkEmailSent(ctx context.Context, id int64) error {
	query := `UPDATE orders SET email_sent = TRUE, updated_at = NOW() WHERE id = $1;`

	if _, err := o.pool.Exec(ctx, query, id); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// itemsByOrderIDs выбирает позиции заказов одним запросом и группирует по заказу.
func (o *OrderRepo) itemsByOrderIDs(ctx context.Context, ids []int64) (map[int64][]domain.OrderItem, error) {
	query := `
		SELECT
			id, order_id, product_id, variant_id, quantity,
			unit_price, total_price, product_name, variant_name
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id;
	`

	rows, err := o.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	grouped := make(map[int64][]domain.OrderItem, len(ids))
	for rows.Next() {
		var model converter.OrderItemModel
		if err := rows.Scan(
			&model.ID, &model.OrderID, &model.ProductID, &model.VariantID,
			&model.Quantity, &model.UnitPrice, &model.TotalPrice,
			&model.ProductName, &model.VariantName,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		item := o.itemConv.ToEntity(&model)
		grouped[model.OrderID] = append(grouped[model.OrderID], *item)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return grouped, nil
}
