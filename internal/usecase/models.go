package usecase

import (
	"time"

	"github.com/zelezara-doo/shop-backend/internal/domain"
)

// ORDER USECASE

// CreateOrderReq — запрос на создание заказа.
type CreateOrderReq struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryAddress string
	Notes           string
	Items           []OrderItemReq
}

// OrderItemReq — одна запрошенная позиция корзины.
type OrderItemReq struct {
	ProductID int64
	VariantID *int64
	Quantity  int
}

// ResolvedLine — результат расчёта цены одной позиции: цена за единицу
// и имена для снимка в OrderItem.
type ResolvedLine struct {
	UnitPrice   int64
	ProductName string
	VariantName string
}

// CATALOG USECASE

type CreateCategoryReq struct {
	Name        string
	Description string
}

type CreateSubcategoryReq struct {
	CategoryID  int64
	Name        string
	Description string
}

type CreateProductReq struct {
	Name          string
	Description   string
	Price         int64
	CategoryID    int64
	SubcategoryID *int64
	OnSale        bool
	SalePrice     *int64
	Featured      bool
	StockQuantity int
}

type CreateVariantReq struct {
	ProductID       int64
	Name            string
	PriceAdjustment int64
	SKU             string
	StockQuantity   int
}

// CreatedVariant — результат создания варианта: сам вариант и его цена,
// рассчитанная от действующей цены товара на момент создания.
type CreatedVariant struct {
	Variant    domain.ProductVariant
	FinalPrice int64
}

type AddProductImagesReq struct {
	ProductID int64
	AltText   string
	Images    []UploadImage
}

// UploadImage представляет изображение, загруженное через multipart/form-data.
type UploadImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// INFRASTRUCTURE

// UploadImagesReq — запрос на загрузку изображений товара в S3.
type UploadImagesReq struct {
	Name   string
	Images []UploadImage
}

// UploadImagesRes — результат загрузки изображений (ключи в MinIO).
type UploadImagesRes struct {
	ImagesKeys []string
}

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const OrderCreatedEventType OutboxEventType = "order.created"

// OutboxEvent — интеграционное событие, записываемое в одной транзакции
// с заказом и асинхронно доставляемое в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderCreatedEvent — JSON-представление события о новом заказе.
type OrderCreatedEvent struct {
	EventID       string                  `json:"event_id"`
	OrderID       int64                   `json:"order_id"`
	CustomerName  string                  `json:"customer_name"`
	CustomerPhone string                  `json:"customer_phone"`
	CustomerEmail string                  `json:"customer_email,omitempty"`
	TotalAmount   int64                   `json:"total_amount"`
	Notes         string                  `json:"notes,omitempty"`
	Items         []OrderCreatedEventItem `json:"items"`
	CreatedAt     int64                   `json:"created_at"`
}

type OrderCreatedEventItem struct {
	ProductID   int64  `json:"product_id"`
	VariantID   *int64 `json:"variant_id,omitempty"`
	ProductName string `json:"product_name"`
	VariantName string `json:"variant_name,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	TotalPrice  int64  `json:"total_price"`
}

// MAPPERS

func NewResolvedLine(unitPrice int64, productName, variantName string) *ResolvedLine {
	return &ResolvedLine{
		UnitPrice:   unitPrice,
		ProductName: productName,
		VariantName: variantName,
	}
}

func NewCreatedVariant(variant *domain.ProductVariant, finalPrice int64) *CreatedVariant {
	return &CreatedVariant{
		Variant:    *variant,
		FinalPrice: finalPrice,
	}
}

func NewUploadImage(data []byte, mimeType string, size int64, name string) *UploadImage {
	return &UploadImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImagesReq(name string, images []UploadImage) *UploadImagesReq {
	return &UploadImagesReq{
		Name:   name,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
}

func NewOrderCreatedEvent(eventID string, order *domain.Order) *OrderCreatedEvent {
	items := make([]OrderCreatedEventItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderCreatedEventItem{
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			ProductName: item.ProductName,
			VariantName: item.VariantName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return &OrderCreatedEvent{
		EventID:       eventID,
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		CustomerEmail: order.CustomerEmail,
		TotalAmount:   order.TotalAmount,
		Notes:         order.Notes,
		Items:         items,
		CreatedAt:     time.Now().UnixNano(),
	}
}
