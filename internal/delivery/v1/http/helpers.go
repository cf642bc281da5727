package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
	"github.com/zelezara-doo/shop-backend/internal/usecase"
	"github.com/zelezara-doo/shop-backend/pkg/e"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrOrderEmpty):
		return http.StatusBadRequest, e.ErrOrderEmpty.Error()
	case errors.Is(err, e.ErrMissingProductID):
		return http.StatusBadRequest, e.ErrMissingProductID.Error()
	case errors.Is(err, e.ErrQuantityTooSmall):
		return http.StatusBadRequest, e.ErrQuantityTooSmall.Error()
	case errors.Is(err, e.ErrCustomerNameRequired):
		return http.StatusBadRequest, e.ErrCustomerNameRequired.Error()
	case errors.Is(err, e.ErrCustomerPhoneRequired):
		return http.StatusBadRequest, e.ErrCustomerPhoneRequired.Error()
	case errors.Is(err, e.ErrInvalidStatus):
		return http.StatusBadRequest, e.ErrInvalidStatus.Error()
	case errors.Is(err, e.ErrVariantMismatch):
		return http.StatusBadRequest, e.ErrVariantMismatch.Error()
	case errors.Is(err, e.ErrCategoryNameRequired):
		return http.StatusBadRequest, e.ErrCategoryNameRequired.Error()
	case errors.Is(err, e.ErrSubcategoryNameRequired):
		return http.StatusBadRequest, e.ErrSubcategoryNameRequired.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrVariantNameRequired):
		return http.StatusBadRequest, e.ErrVariantNameRequired.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrTooManyImages):
		return http.StatusBadRequest, e.ErrTooManyImages.Error()
	case errors.Is(err, e.ErrNoImages):
		return http.StatusBadRequest, e.ErrNoImages.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusBadRequest, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusBadRequest, e.ErrUnsupportedMediaType.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrVariantNotFound):
		return http.StatusNotFound, e.ErrVariantNotFound.Error()
	case errors.Is(err, e.ErrOrderNotFound):
		return http.StatusNotFound, e.ErrOrderNotFound.Error()
	case errors.Is(err, e.ErrCategoryNotFound):
		return http.StatusNotFound, e.ErrCategoryNotFound.Error()
	case errors.Is(err, e.ErrSubcategoryNotFound):
		return http.StatusNotFound, e.ErrSubcategoryNotFound.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePriceToCents конвертирует строку вида "1350.00" или "1350" в минорные
// единицы валюты. Отклоняет отрицательные значения, более двух знаков после
// запятой и суммы свыше разумного лимита.
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000).Mul(decimal.NewFromInt(100))
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0)

	return cents.IntPart(), nil
}

// parseAdjustmentToCents — то же, что parsePriceToCents, но со знаком:
// корректировка варианта может быть отрицательной.
func parseAdjustmentToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// formatPrice печатает минорные единицы как строку "1350.00".
func formatPrice(amount int64) string {
	return decimal.NewFromInt(amount).Div(decimal.NewFromInt(100)).StringFixed(2)
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
	}

	return id, nil
}

func decodeJSONBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(fmt.Sprintf("decode body: %v", err), e.ErrStatusBadRequest)
	}

	return nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

func parseImages(files []*multipart.FileHeader) ([]usecase.UploadImage, error) {
	const (
		maxImageCount = 10
		maxFileSize   = 15 << 20
	)

	if len(files) == 0 {
		return nil, e.ErrNoImages
	}
	if len(files) > maxImageCount {
		return nil, e.ErrTooManyImages
	}

	images := make([]usecase.UploadImage, 0, len(files))
	for _, fh := range files {
		data, mimeType, err := readFile(fh, maxFileSize)
		if err != nil {
			return nil, err
		}
		images = append(images, *usecase.NewUploadImage(data, mimeType, int64(len(data)), fh.Filename))
	}
	return images, nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
