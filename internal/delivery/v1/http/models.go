package http

import (
	"time"

	"github.com/zelezara-doo/shop-backend/internal/domain"
)

// REQUESTS

type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerEmail   string             `json:"customer_email"`
	DeliveryAddress string             `json:"delivery_address"`
	Notes           string             `json:"notes"`
	Items           []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	ProductID int64  `json:"product_id"`
	VariantID *int64 `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateSubcategoryRequest struct {
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateProductRequest принимает цены строками ("1350.00"), чтобы не терять
// точность на плавающей точке.
type CreateProductRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         string  `json:"price"`
	CategoryID    int64   `json:"category_id"`
	SubcategoryID *int64  `json:"subcategory_id,omitempty"`
	OnSale        bool    `json:"on_sale"`
	SalePrice     *string `json:"sale_price,omitempty"`
	Featured      bool    `json:"featured"`
	StockQuantity int     `json:"stock_quantity"`
}

type CreateVariantRequest struct {
	Name            string `json:"name"`
	PriceAdjustment string `json:"price_adjustment"`
	SKU             string `json:"sku"`
	StockQuantity   int    `json:"stock_quantity"`
}

// RESPONSES

type OrderResponse struct {
	ID              int64               `json:"id"`
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerEmail   string              `json:"customer_email,omitempty"`
	DeliveryAddress string              `json:"delivery_address,omitempty"`
	Status          string              `json:"status"`
	Notes           string              `json:"notes,omitempty"`
	AdminNotes      string              `json:"admin_notes,omitempty"`
	TotalAmount     string              `json:"total_amount"`
	SMSSent         bool                `json:"sms_sent"`
	EmailSent       bool                `json:"email_sent"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       *time.Time          `json:"updated_at,omitempty"`
	Items           []OrderItemResponse `json:"items"`
}

type OrderItemResponse struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	VariantID   *int64 `json:"variant_id,omitempty"`
	ProductName string `json:"product_name"`
	VariantName string `json:"variant_name,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TotalPrice  string `json:"total_price"`
}

type UpdateStatusResponse struct {
	Status    string `json:"status"`
	NewStatus string `json:"new_status"`
}

type CategoryResponse struct {
	ID            int64                 `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description,omitempty"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

type SubcategoryResponse struct {
	ID          int64  `json:"id"`
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ProductResponse struct {
	ID            int64                  `json:"id"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description,omitempty"`
	Price         string                 `json:"price"`
	CurrentPrice  string                 `json:"current_price"`
	CategoryID    int64                  `json:"category_id"`
	SubcategoryID *int64                 `json:"subcategory_id,omitempty"`
	OnSale        bool                   `json:"on_sale"`
	SalePrice     *string                `json:"sale_price,omitempty"`
	Featured      bool                   `json:"featured"`
	InStock       bool                   `json:"in_stock"`
	StockQuantity int                    `json:"stock_quantity"`
	Variants      []VariantResponse      `json:"variants"`
	Images        []ProductImageResponse `json:"images"`
}

type VariantResponse struct {
	ID              int64  `json:"id"`
	ProductID       int64  `json:"product_id"`
	Name            string `json:"name"`
	PriceAdjustment string `json:"price_adjustment"`
	FinalPrice      string `json:"final_price"`
	SKU             string `json:"sku,omitempty"`
	InStock         bool   `json:"in_stock"`
	StockQuantity   int    `json:"stock_quantity"`
}

type ProductImageResponse struct {
	ID        int64  `json:"id"`
	ObjectKey string `json:"object_key"`
	AltText   string `json:"alt_text,omitempty"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

// MAPPERS

func NewOrderResponse(order *domain.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			ProductName: item.ProductName,
			VariantName: item.VariantName,
			Quantity:    item.Quantity,
			UnitPrice:   formatPrice(item.UnitPrice),
			TotalPrice:  formatPrice(item.TotalPrice),
		})
	}

	return &OrderResponse{
		ID:              order.ID,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerEmail:   order.CustomerEmail,
		DeliveryAddress: order.DeliveryAddress,
		Status:          string(order.Status),
		Notes:           order.Notes,
		AdminNotes:      order.AdminNotes,
		TotalAmount:     formatPrice(order.TotalAmount),
		SMSSent:         order.SMSSent,
		EmailSent:       order.EmailSent,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
		Items:           items,
	}
}

func NewArrOrderResponse(orders []domain.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, *NewOrderResponse(&orders[i]))
	}

	return result
}

func NewCategoryResponse(category *domain.Category) *CategoryResponse {
	subcategories := make([]SubcategoryResponse, 0, len(category.Subcategories))
	for _, sub := range category.Subcategories {
		subcategories = append(subcategories, *NewSubcategoryResponse(&sub))
	}

	return &CategoryResponse{
		ID:            category.ID,
		Name:          category.Name,
		Description:   category.Description,
		Subcategories: subcategories,
	}
}

func NewSubcategoryResponse(subcategory *domain.Subcategory) *SubcategoryResponse {
	return &SubcategoryResponse{
		ID:          subcategory.ID,
		CategoryID:  subcategory.CategoryID,
		Name:        subcategory.Name,
		Description: subcategory.Description,
	}
}

func NewProductResponse(product *domain.Product) *ProductResponse {
	currentPrice := product.CurrentPrice()

	variants := make([]VariantResponse, 0, len(product.Variants))
	for _, variant := range product.Variants {
		variants = append(variants, VariantResponse{
			ID:              variant.ID,
			ProductID:       variant.ProductID,
			Name:            variant.Name,
			PriceAdjustment: formatPrice(variant.PriceAdjustment),
			FinalPrice:      formatPrice(variant.FinalPrice(currentPrice)),
			SKU:             variant.SKU,
			InStock:         variant.InStock,
			StockQuantity:   variant.StockQuantity,
		})
	}

	images := make([]ProductImageResponse, 0, len(product.Images))
	for _, image := range product.Images {
		images = append(images, ProductImageResponse{
			ID:        image.ID,
			ObjectKey: image.ObjectKey,
			AltText:   image.AltText,
			IsPrimary: image.IsPrimary,
			SortOrder: image.SortOrder,
		})
	}

	var salePrice *string
	if product.SalePrice != nil {
		formatted := formatPrice(*product.SalePrice)
		salePrice = &formatted
	}

	return &ProductResponse{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         formatPrice(product.Price),
		CurrentPrice:  formatPrice(currentPrice),
		CategoryID:    product.CategoryID,
		SubcategoryID: product.SubcategoryID,
		OnSale:        product.OnSale,
		SalePrice:     salePrice,
		Featured:      product.Featured,
		InStock:       product.InStock,
		StockQuantity: product.StockQuantity,
		Variants:      variants,
		Images:        images,
	}
}
