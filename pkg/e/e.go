package e

import "fmt"

var (
	// Внутренние ошибки инфраструктуры
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrStatusBadRequest     = fmt.Errorf("bad request")

	// 400 Bad Request — заказ
	ErrOrderEmpty            = fmt.Errorf("order must contain at least one item")
	ErrMissingProductID      = fmt.Errorf("missing product_id")
	ErrQuantityTooSmall      = fmt.Errorf("quantity must be at least 1")
	ErrCustomerNameRequired  = fmt.Errorf("customer_name is required")
	ErrCustomerPhoneRequired = fmt.Errorf("customer_phone is required")
	ErrInvalidStatus         = fmt.Errorf("invalid status")
	ErrVariantMismatch       = fmt.Errorf("variant does not belong to product")

	// 400 Bad Request — каталог
	ErrCategoryNameRequired    = fmt.Errorf("category name is required")
	ErrSubcategoryNameRequired = fmt.Errorf("subcategory name is required")
	ErrProductNameRequired     = fmt.Errorf("product name is required")
	ErrVariantNameRequired     = fmt.Errorf("variant name is required")
	ErrInvalidPrice            = fmt.Errorf("invalid price")
	ErrPricePrecision          = fmt.Errorf("price must have at most 2 decimal places")
	ErrNoImages                = fmt.Errorf("no images provided")
	ErrTooManyImages           = fmt.Errorf("too many images")
	ErrFileTooLarge            = fmt.Errorf("file too large")
	ErrUnsupportedMediaType    = fmt.Errorf("unsupported media type")
	ErrExpectedMultipart       = fmt.Errorf("expected multipart/form-data")

	// 404 Not Found
	ErrProductNotFound     = fmt.Errorf("product not found")
	ErrVariantNotFound     = fmt.Errorf("variant not found")
	ErrOrderNotFound       = fmt.Errorf("order not found")
	ErrCategoryNotFound    = fmt.Errorf("category not found")
	ErrSubcategoryNotFound = fmt.Errorf("subcategory not found")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
