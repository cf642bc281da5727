package converter

import (
	"time"

	"github.com/zelezara-doo/shop-backend/internal/usecase"
)

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// SubcategoryModel представляет запись таблицы subcategories в PostgreSQL.
type SubcategoryModel struct {
	ID          int64     `db:"id"`
	CategoryID  int64     `db:"category_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID            int64      `db:"id"`
	Name          string     `db:"name"`
	Description   string     `db:"description"`
	Price         int64      `db:"price"`
	CategoryID    int64      `db:"category_id"`
	SubcategoryID *int64     `db:"subcategory_id"`
	OnSale        bool       `db:"on_sale"`
	SalePrice     *int64     `db:"sale_price"`
	Featured      bool       `db:"featured"`
	InStock       bool       `db:"in_stock"`
	StockQuantity int        `db:"stock_quantity"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at"`
}

// VariantModel представляет запись таблицы product_variants в PostgreSQL.
type VariantModel struct {
	ID              int64     `db:"id"`
	ProductID       int64     `db:"product_id"`
	Name            string    `db:"name"`
	PriceAdjustment int64     `db:"price_adjustment"`
	SKU             string    `db:"sku"`
	InStock         bool      `db:"in_stock"`
	StockQuantity   int       `db:"stock_quantity"`
	CreatedAt       time.Time `db:"created_at"`
}

// ProductImageModel представляет запись таблицы product_images в PostgreSQL.
type ProductImageModel struct {
	ID        int64     `db:"id"`
	ProductID int64     `db:"product_id"`
	ObjectKey string    `db:"object_key"`
	AltText   string    `db:"alt_text"`
	IsPrimary bool      `db:"is_primary"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID              int64      `db:"id"`
	CustomerName    string     `db:"customer_name"`
	CustomerPhone   string     `db:"customer_phone"`
	CustomerEmail   string     `db:"customer_email"`
	DeliveryAddress string     `db:"delivery_address"`
	Status          string     `db:"status"`
	Notes           string     `db:"notes"`
	AdminNotes      string     `db:"admin_notes"`
	TotalAmount     int64      `db:"total_amount"`
	SMSSent         bool       `db:"sms_sent"`
	EmailSent       bool       `db:"email_sent"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at"`
}

// OrderItemModel представляет запись таблицы order_items в PostgreSQL.
type OrderItemModel struct {
	ID          int64  `db:"id"`
	OrderID     int64  `db:"order_id"`
	ProductID   int64  `db:"product_id"`
	VariantID   *int64 `db:"variant_id"`
	Quantity    int    `db:"quantity"`
	UnitPrice   int64  `db:"unit_price"`
	TotalPrice  int64  `db:"total_price"`
	ProductName string `db:"product_name"`
	VariantName string `db:"variant_name"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64                   `db:"id"`
	EventID     string                  `db:"event_id"`
	EventType   usecase.OutboxEventType `db:"event_type"`
	OrderID     int64                   `db:"order_id"`
	Payload     []byte                  `db:"payload"`
	Status      usecase.OutboxStatus    `db:"status"`
	CreatedAt   time.Time               `db:"created_at"`
	ProcessedAt *time.Time              `db:"processed_at"`
}
