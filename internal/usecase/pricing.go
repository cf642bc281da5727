package usecase

import (
	"context"
	"time"

	"github.com/zelezara-doo/shop-backend/internal/domain"
	"github.com/zelezara-doo/shop-backend/pkg/e"
	"github.com/zelezara-doo/shop-backend/pkg/logger"
)

// PricingResolver вычисляет цену за единицу для одной позиции заказа.
// Только чтение каталога, никаких побочных эффектов.
type PricingResolver struct {
	productRepo ProductRepository
	variantRepo VariantRepository
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewPricingResolver(
	productRepo ProductRepository,
	variantRepo VariantRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *PricingResolver {
	return &PricingResolver{
		productRepo: productRepo,
		variantRepo: variantRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// ResolveLine возвращает цену за единицу и имена для снимка.
// Акционная цена замещает базовую до прибавления корректировки варианта:
// скидка и корректировка складываются, а не перемножаются.
func (r *PricingResolver) ResolveLine(ctx context.Context, productID int64, variantID *int64) (*ResolvedLine, error) {
	const op = "PricingResolver.ResolveLine"

	product, err := r.getPricing(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	basePrice := product.CurrentPrice()

	if variantID == nil {
		return NewResolvedLine(basePrice, product.Name, ""), nil
	}

	variant, err := r.variantRepo.GetByID(ctx, *variantID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if variant.ProductID != productID {
		return nil, e.Wrap(op, e.ErrVariantMismatch)
	}

	return NewResolvedLine(variant.FinalPrice(basePrice), product.Name, variant.Name), nil
}

// getPricing ищет ценовую проекцию товара в кэше, при промахе читает БД
// и фоново прогревает кэш.
func (r *PricingResolver) getPricing(ctx context.Context, productID int64) (*domain.Product, error) {
	const op = "PricingResolver.getPricing"

	cached, err := r.cacheRepo.GetPricing(ctx, []int64{productID})
	if err == nil {
		if product, ok := cached[productID]; ok {
			return &product, nil
		}
	}

	product, err := r.productRepo.GetPricing(ctx, productID)
	if err != nil {
		return nil, err
	}

	// Фоновое добавление ценовой проекции в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := r.cacheRepo.SetPricing(bgCtx, []domain.Product{*product}); err != nil {
			r.logger.Warnf("Failed to cache pricing in background: %v", e.Wrap(op, err))
		}
	}()

	return product, nil
}
