package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zelezara-doo/shop-backend/internal/domain"
	"github.com/zelezara-doo/shop-backend/pkg/e"
)

// ФЕЙКИ

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

type fakeTxManager struct {
	err error
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

func (f *fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return f.Do(ctx, fn)
}

type fakeOrderRepo struct {
	nextID       int64
	created      []*domain.Order
	items        []domain.OrderItem
	totals       map[int64]int64
	statuses     map[int64]domain.OrderStatus
	emailSentIDs []int64

	updateStatusErr error
	markEmailErr    error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		totals:   make(map[int64]int64),
		statuses: make(map[int64]domain.OrderStatus),
	}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	f.nextID++
	created := *order
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.created = append(f.created, &created)
	return &created, nil
}

func (f *fakeOrderRepo) InsertItem(_ context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	inserted := *item
	inserted.ID = int64(len(f.items) + 1)
	f.items = append(f.items, inserted)
	return &inserted, nil
}

func (f *fakeOrderRepo) SetTotal(_ context.Context, orderID int64, total int64) error {
	f.totals[orderID] = total
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	for _, order := range f.created {
		if order.ID == id {
			return order, nil
		}
	}
	return nil, e.ErrOrderNotFound
}

func (f *fakeOrderRepo) List(_ context.Context) ([]domain.Order, error) {
	orders := make([]domain.Order, 0, len(f.created))
	for _, order := range f.created {
		orders = append(orders, *order)
	}
	return orders, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status domain.OrderStatus) error {
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	f.statuses[id] = status
	return nil
}

func (f *fakeOrderRepo) MarkEmailSent(_ context.Context, id int64) error {
	if f.markEmailErr != nil {
		return f.markEmailErr
	}
	f.emailSentIDs = append(f.emailSentIDs, id)
	return nil
}

type fakeOutboxRepo struct {
	created []*OutboxEvent
}

func (f *fakeOutboxRepo) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	f.created = append(f.created, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(context.Context, int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(context.Context, int64) error {
	return nil
}

type fakeProductRepo struct {
	nextID       int64
	products     map[int64]domain.Product
	pricingCalls int
}

func (f *fakeProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	f.nextID++
	created := *product
	created.ID = f.nextID
	f.products[created.ID] = created
	return &created, nil
}

func (f *fakeProductRepo) GetPricing(_ context.Context, id int64) (*domain.Product, error) {
	f.pricingCalls++
	product, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	return &product, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return f.GetPricing(ctx, id)
}

func (f *fakeProductRepo) List(context.Context, *int64) ([]domain.Product, error) {
	return nil, nil
}

type fakeVariantRepo struct {
	variants map[int64]domain.ProductVariant
}

func (f *fakeVariantRepo) Create(_ context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error) {
	return variant, nil
}

func (f *fakeVariantRepo) GetByID(_ context.Context, id int64) (*domain.ProductVariant, error) {
	variant, ok := f.variants[id]
	if !ok {
		return nil, e.ErrVariantNotFound
	}
	return &variant, nil
}

type fakeCacheRepo struct {
	mu       sync.Mutex
	store    map[int64]domain.Product
	setCalls int
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{store: make(map[int64]domain.Product)}
}

func (f *fakeCacheRepo) GetPricing(_ context.Context, ids []int64) (map[int64]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	found := make(map[int64]domain.Product)
	for _, id := range ids {
		if product, ok := f.store[id]; ok {
			found[id] = product
		}
	}
	return found, nil
}

func (f *fakeCacheRepo) SetPricing(_ context.Context, products []domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, product := range products {
		f.store[product.ID] = product
	}
	f.setCalls++
	return nil
}

func (f *fakeCacheRepo) DeletePricing(_ context.Context, ids []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, id := range ids {
		delete(f.store, id)
	}
	return nil
}

func (f *fakeCacheRepo) setCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setCalls
}

type fakeEmailSender struct {
	err   error
	calls int
}

func (f *fakeEmailSender) SendOrderNotification(context.Context, *domain.Order) error {
	f.calls++
	return f.err
}

// СБОРКА

type orderUCFixture struct {
	uc        *OrderUseCase
	orderRepo *fakeOrderRepo
	outbox    *fakeOutboxRepo
	products  *fakeProductRepo
	variants  *fakeVariantRepo
	cache     *fakeCacheRepo
	email     *fakeEmailSender
	tx        *fakeTxManager
}

func newOrderUCFixture() *orderUCFixture {
	f := &orderUCFixture{
		orderRepo: newFakeOrderRepo(),
		outbox:    &fakeOutboxRepo{},
		products:  &fakeProductRepo{products: make(map[int64]domain.Product)},
		variants:  &fakeVariantRepo{variants: make(map[int64]domain.ProductVariant)},
		cache:     newFakeCacheRepo(),
		email:     &fakeEmailSender{},
		tx:        &fakeTxManager{},
	}

	resolver := NewPricingResolver(f.products, f.variants, f.cache, nopLogger{})
	f.uc = NewOrderUC(f.orderRepo, f.outbox, resolver, f.tx, f.email, nopLogger{})

	return f
}

func int64Ptr(v int64) *int64 { return &v }

// ТЕСТЫ

func TestCreateOrderComputesTotalAndSnapshots(t *testing.T) {
	f := newOrderUCFixture()

	salePrice := int64(80_000)
	f.products.products[1] = domain.Product{
		ID: 1, Name: "Kvadratna cev", Price: 100_000, OnSale: true, SalePrice: &salePrice,
	}
	f.products.products[2] = domain.Product{ID: 2, Name: "Lim 2mm", Price: 50_000}
	f.variants.variants[7] = domain.ProductVariant{
		ID: 7, ProductID: 1, Name: "20x20x2mm", PriceAdjustment: 20_000,
	}

	order, err := f.uc.CreateOrder(context.Background(), &CreateOrderReq{
		CustomerName:  "Petar Petrovic",
		CustomerPhone: "+381601234567",
		Items: []OrderItemReq{
			{ProductID: 1, VariantID: int64Ptr(7), Quantity: 2},
			{ProductID: 2, Quantity: 3},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	// Акционная цена замещает базовую до корректировки: 80000 + 20000
	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(100_000), order.Items[0].UnitPrice)
	assert.Equal(t, int64(200_000), order.Items[0].TotalPrice)
	assert.Equal(t, "Kvadratna cev", order.Items[0].ProductName)
	assert.Equal(t, "20x20x2mm", order.Items[0].VariantName)

	assert.Equal(t, int64(50_000), order.Items[1].UnitPrice)
	assert.Equal(t, int64(150_000), order.Items[1].TotalPrice)
	assert.Empty(t, order.Items[1].VariantName)

	assert.Equal(t, int64(350_000), order.TotalAmount)
	assert.Equal(t, int64(350_000), f.orderRepo.totals[order.ID])
	assert.Equal(t, domain.StatusPending, order.Status)
}

func TestOrderSnapshotSurvivesProductChanges(t *testing.T) {
	f := newOrderUCFixture()
	f.products.products[1] = domain.Product{ID: 1, Name: "Firiket", Price: 35_000}

	order, err := f.uc.CreateOrder(context.Background(), &CreateOrderReq{
		CustomerName:  "Petar Petrovic",
		CustomerPhone: "+381601234567",
		Items:         []OrderItemReq{{ProductID: 1, Quantity: 2}},
	})
	require.NoError(t, err)

	// Товар переименован и подорожал уже после оформления заказа
	f.products.products[1] = domain.Product{ID: 1, Name: "Firiket Premium", Price: 99_000}

	reread, err := f.uc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)

	require.Len(t, reread.Items, 1)
	assert.Equal(t, "Firiket", reread.Items[0].ProductName)
	assert.Equal(t, int64(35_000), reread.Items[0].UnitPrice)
	assert.Equal(t, int64(70_000), reread.TotalAmount)
}

func TestCreateOrderEnqueuesOutboxEvent(t *testing.T) {
	f := newOrderUCFixture()
	f.products.products[1] = domain.Product{ID: 1, Name: "Lim 2mm", Price: 50_000}

	order, err := f.uc.CreateOrder(context.Background(), &CreateOrderReq{
		CustomerName:  "Petar Petrovic",
		CustomerPhone: "+381601234567",
		Items:         []OrderItemReq{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	require.Len(t, f.outbox.created, 1)
	event := f.outbox.created[0]
	assert.Equal(t, OrderCreatedEventType, event.EventType)
	assert.Equal(t, order.ID, event.OrderID)
	assert.Equal(t, Pending, event.Status)
	assert.NotEmpty(t, event.EventID)
	assert.NotEmpty(t, event.Payload)
}

func TestCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *CreateOrderReq
		wantErr error
	}{
		{
			name:    "пустая корзина",
			req:     &CreateOrderReq{CustomerName: "Petar", CustomerPhone: "+381601234567"},
			wantErr: e.ErrOrderEmpty,
		},
		{
			name: "имя из пробелов",
			req: &CreateOrderReq{
				CustomerName: "   ", CustomerPhone: "+381601234567",
				Items: []OrderItemReq{{ProductID: 1, Quantity: 1}},
			},
			wantErr: e.ErrCustomerNameRequired,
		},
		{
			name: "нет телефона",
			req: &CreateOrderReq{
				CustomerName: "Petar",
				Items:        []OrderItemReq{{ProductID: 1, Quantity: 1}},
			},
			wantErr: e.ErrCustomerPhoneRequired,
		},
		{
			name: "позиция без товара",
			req: &CreateOrderReq{
				CustomerName: "Petar", CustomerPhone: "+381601234567",
				Items: []OrderItemReq{{Quantity: 1}},
			},
			wantErr: e.ErrMissingProductID,
		},
		{
			name: "нулевое количество",
			req: &CreateOrderReq{
				CustomerName: "Petar", CustomerPhone: "+381601234567",
				Items: []OrderItemReq{{ProductID: 1, Quantity: 0}},
			},
			wantErr: e.ErrQuantityTooSmall,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderUCFixture()

			order, err := f.uc.CreateOrder(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, order)

			// Валидация отклоняет запрос до любой записи
			assert.Empty(t, f.orderRepo.created)
			assert.Empty(t, f.outbox.created)
			assert.Zero(t, f.email.calls)
		})
	}
}

func TestCreateOrderUnknownProductFailsWholeOrder(t *testing.T) {
	f := newOrderUCFixture()
	f.products.products[1] = domain.Product{ID: 1, Name: "Lim 2mm", Price: 50_000}

	order, err := f.uc.CreateOrder(context.Background(), &CreateOrderReq{
		CustomerName:  "Petar Petrovic",
		CustomerPhone: "+381601234567",
		Items: []OrderItemReq{
			{ProductID: 1, Quantity: 1},
			{ProductID: 999, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, e.ErrProductNotFound)
	assert.Nil(t, order)
	assert.Zero(t, f.email.calls)
}

func TestCreateOrderVariantMismatchFailsWholeOrder(t *testing.T) {
	f := newOrderUCFixture()
	f.products.products[1] = domain.Product{ID: 1, Name: "Lim 2mm", Price: 50_000}
	f.variants.variants[7] = domain.ProductVariant{ID: 7, ProductID: 2, Name: "3mm"}

	order, err := f.uc.CreateOrder(context.Background(), &CreateOrderReq{
		CustomerName:  "Petar Petrovic",
		CustomerPhone: "+381601234567",
		Items:         []OrderItemReq{{ProductID: 1, VariantID: int64Ptr(7), Quantity: 1}},
	})
	require.ErrorIs(t, err, e.ErrVariantMismatch)
	assert.Nil(t, order)
}

func TestCreateOrderTransactionError(t *testing.T) {
	f := newOrderUCFixture()
	f.products.products[1] = domain.Product{ID: 1, Name: "Lim 2mm", Price: 50_000}
	f.tx.err = errors.New("deadlock detected")

	order, err := f.uc.CreateOrder(context.Background(), &CreateOrderReq{
		CustomerName:  "Petar Petrovic",
		CustomerPhone: "+381601234567",
		Items:         []OrderItemReq{{ProductID: 1, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.Zero(t, f.email.calls)
}

func TestCreateOrderEmailSuccessMarksFlag(t *testing.T) {
	f := newOrderUCFixture()
	f.products.products[1] = domain.Product{ID: 1, Name: "Lim 2mm", Price: 50_000}

	order, err := f.uc.CreateOrder(context.Background(), &CreateOrderReq{
		CustomerName:  "Petar Petrovic",
		CustomerPhone: "+381601234567",
		Items:         []OrderItemReq{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, f.email.calls)
	assert.True(t, order.EmailSent)
	assert.Equal(t, []int64{order.ID}, f.orderRepo.emailSentIDs)
}

func TestCreateOrderEmailFailureDoesNotFailOrder(t *testing.T) {
	f := newOrderUCFixture()
	f.products.products[1] = domain.Product{ID: 1, Name: "Lim 2mm", Price: 50_000}
	f.email.err = errors.New("smtp: connection refused")

	order, err := f.uc.CreateOrder(context.Background(), &CreateOrderReq{
		CustomerName:  "Petar Petrovic",
		CustomerPhone: "+381601234567",
		Items:         []OrderItemReq{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.False(t, order.EmailSent)
	assert.Empty(t, f.orderRepo.emailSentIDs)
	assert.Equal(t, int64(50_000), order.TotalAmount)
}

func TestUpdateStatus(t *testing.T) {
	f := newOrderUCFixture()

	status, err := f.uc.UpdateStatus(context.Background(), 1, "shipped")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, status)
	assert.Equal(t, domain.StatusShipped, f.orderRepo.statuses[1])
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	f := newOrderUCFixture()

	_, err := f.uc.UpdateStatus(context.Background(), 1, "delivered-to-moon")
	require.ErrorIs(t, err, e.ErrInvalidStatus)
	assert.Empty(t, f.orderRepo.statuses)
}

func TestUpdateStatusOrderNotFound(t *testing.T) {
	f := newOrderUCFixture()
	f.orderRepo.updateStatusErr = e.ErrOrderNotFound

	_, err := f.uc.UpdateStatus(context.Background(), 42, "confirmed")
	require.ErrorIs(t, err, e.ErrOrderNotFound)
}
