package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/zelezara-doo/shop-backend/internal/domain"
	"github.com/zelezara-doo/shop-backend/pkg/e"
	"github.com/zelezara-doo/shop-backend/pkg/logger"
)

// OrderUseCase реализует создание заказов и управление их статусами.
type OrderUseCase struct {
	orderRepo  OrderRepository
	outboxRepo OutboxRepository
	resolver   *PricingResolver
	txManager  trm.Manager
	email      EmailSender
	logger     logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	outboxRepo OutboxRepository,
	resolver *PricingResolver,
	txManager trm.Manager,
	email EmailSender,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:  orderRepo,
		outboxRepo: outboxRepo,
		resolver:   resolver,
		txManager:  txManager,
		email:      email,
		logger:     logger,
	}
}

// CreateOrder атомарно превращает корзину в заказ с позициями и итогом.
// Заказ, позиции, итог и outbox-событие пишутся в одной транзакции:
// если хотя бы одна позиция не разрешается, не остаётся ни одной строки.
func (o *OrderUseCase) CreateOrder(ctx context.Context, req *CreateOrderReq) (*domain.Order, error) {
	const op = "OrderUseCase.CreateOrder"

	// Валидация до любой записи
	if err := validateOrderReq(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	var created *domain.Order
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := o.orderRepo.Create(ctx, domain.NewOrder(
			strings.TrimSpace(req.CustomerName),
			strings.TrimSpace(req.CustomerPhone),
			req.CustomerEmail,
			req.DeliveryAddress,
			req.Notes,
		))
		if err != nil {
			return err
		}

		// Позиции обрабатываются в порядке, заданном клиентом
		var total int64
		items := make([]domain.OrderItem, 0, len(req.Items))
		for _, itemReq := range req.Items {
			line, err := o.resolver.ResolveLine(ctx, itemReq.ProductID, itemReq.VariantID)
			if err != nil {
				return err
			}

			item, err := o.orderRepo.InsertItem(ctx, domain.NewOrderItem(
				order.ID,
				itemReq.ProductID,
				itemReq.VariantID,
				itemReq.Quantity,
				line.UnitPrice,
				line.ProductName,
				line.VariantName,
			))
			if err != nil {
				return err
			}

			total += item.TotalPrice
			items = append(items, *item)
		}

		if err := o.orderRepo.SetTotal(ctx, order.ID, total); err != nil {
			return err
		}

		order.TotalAmount = total
		order.Items = items

		if err := o.enqueueCreatedEvent(ctx, order); err != nil {
			return err
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Уведомление после коммита: отказ канала не трогает заказ
	o.dispatchEmail(ctx, created)

	return created, nil
}

// GetOrder возвращает заказ с позициями.
func (o *OrderUseCase) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := o.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// ListOrders возвращает все заказы с позициями.
func (o *OrderUseCase) ListOrders(ctx context.Context) ([]domain.Order, error) {
	const op = "OrderUseCase.ListOrders"

	orders, err := o.orderRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// UpdateStatus переводит заказ в указанный статус. Значение вне закрытого
// набора отвергается; внутри набора перезапись безусловна.
func (o *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, status string) (domain.OrderStatus, error) {
	const op = "OrderUseCase.UpdateStatus"

	newStatus := domain.OrderStatus(status)
	if !newStatus.Valid() {
		return "", e.Wrap(op, e.ErrInvalidStatus)
	}

	if err := o.orderRepo.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return "", e.Wrap(op, err)
	}

	return newStatus, nil
}

// enqueueCreatedEvent записывает событие о новом заказе в outbox в рамках
// текущей транзакции.
func (o *OrderUseCase) enqueueCreatedEvent(ctx context.Context, order *domain.Order) error {
	eventID := uuid.NewString()

	payload, err := json.Marshal(NewOrderCreatedEvent(eventID, order))
	if err != nil {
		return err
	}

	_, err = o.outboxRepo.Create(ctx, NewOutboxEvent(eventID, OrderCreatedEventType, order.ID, payload))
	return err
}

// dispatchEmail отправляет письмо владельцу магазина после коммита заказа.
// Ошибки логируются и проглатываются: флаг email_sent просто остаётся false.
func (o *OrderUseCase) dispatchEmail(ctx context.Context, order *domain.Order) {
	const op = "OrderUseCase.dispatchEmail"

	if err := o.email.SendOrderNotification(ctx, order); err != nil {
		o.logger.Warnf("Order notification failed, order_id: %d: %v", order.ID, e.Wrap(op, err))
		return
	}

	if err := o.orderRepo.MarkEmailSent(ctx, order.ID); err != nil {
		o.logger.Warnf("Failed to mark email sent, order_id: %d: %v", order.ID, e.Wrap(op, err))
		return
	}

	order.EmailSent = true
}

// validateOrderReq проверяет корректность корзины до каких-либо записей.
func validateOrderReq(req *CreateOrderReq) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return e.ErrCustomerNameRequired
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return e.ErrCustomerPhoneRequired
	}

	if len(req.Items) == 0 {
		return e.ErrOrderEmpty
	}

	for _, item := range req.Items {
		if item.ProductID <= 0 {
			return e.ErrMissingProductID
		}
		if item.Quantity < 1 {
			return e.ErrQuantityTooSmall
		}
	}

	return nil
}
