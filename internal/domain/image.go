package domain

import "time"

// ProductImage описывает метаданные изображения товара, хранящегося в S3.
type ProductImage struct {
	ID        int64
	ProductID int64
	ObjectKey string
	AltText   string
	IsPrimary bool
	SortOrder int
	CreatedAt time.Time
}

func NewProductImage(productID int64, objectKey, altText string, isPrimary bool, sortOrder int) *ProductImage {
	return &ProductImage{
		ProductID: productID,
		ObjectKey: objectKey,
		AltText:   altText,
		IsPrimary: isPrimary,
		SortOrder: sortOrder,
	}
}

// Image описывает загружаемый в S3 объект изображения
type Image struct {
	ID        string // uuid
	Bucket    string
	ObjectKey string
	Bytes     []byte
	// Передайте значение -1 в Size, если размер потока неизвестен
	// (внимание: при передаче значения -1 будет выделен большой объем памяти).
	Size     *int64
	MimeType *string // Example: "image/jpeg"
}

func NewImage(id string, bucket string, objectKey string, data []byte, size *int64, mimeType *string) *Image {
	return &Image{
		ID:        id,
		Bucket:    bucket,
		ObjectKey: objectKey,
		Bytes:     data,
		Size:      size,
		MimeType:  mimeType,
	}
}
