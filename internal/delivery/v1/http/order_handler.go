package http

import (
	"errors"
	"net/http"

	"github.com/zelezara-doo/shop-backend/internal/usecase"
	"github.com/zelezara-doo/shop-backend/pkg/e"
	"github.com/zelezara-doo/shop-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// createOrder
//
//	@Summary		Создание заказа
//	@Description	Превращает корзину в заказ: позиции, цены и итог фиксируются атомарно
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		CreateOrderRequest	true	"Корзина и контакты покупателя"
//	@Success		201		{object}	OrderResponse		"Созданный заказ"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации"
//	@Router			/orders [post]
func (o *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := decodeJSONBody(r, &req); err != nil {
		o.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	items := make([]usecase.OrderItemReq, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemReq{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	order, err := o.orderUsecase.CreateOrder(r.Context(), &usecase.CreateOrderReq{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		Items:           items,
	})
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewOrderResponse(order))
}

// getOrder
//
//	@Summary		Заказ по ID
//	@Description	Возвращает заказ вместе с позициями
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		int				true	"ID заказа"
//	@Success		200	{object}	OrderResponse	"Заказ"
//	@Failure		404	{object}	ErrorResponse	"Заказ не найден"
//	@Security		AdminToken
//	@Router			/orders/{id} [get]
func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	order, err := o.orderUsecase.GetOrder(r.Context(), id)
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewOrderResponse(order))
}

// listOrders
//
//	@Summary		Список заказов
//	@Description	Возвращает все заказы с позициями, новые первыми
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}	OrderResponse	"Заказы"
//	@Security		AdminToken
//	@Router			/orders [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := o.orderUsecase.ListOrders(r.Context())
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewArrOrderResponse(orders))
}

// updateStatus
//
//	@Summary		Смена статуса заказа
//	@Description	Переводит заказ в любой статус из закрытого набора
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"ID заказа"
//	@Param			status	body		UpdateStatusRequest		true	"Новый статус"
//	@Success		200		{object}	UpdateStatusResponse	"Статус обновлён"
//	@Failure		400		{object}	map[string]string		"Недопустимый статус"
//	@Security		AdminToken
//	@Router			/orders/{id}/update-status [post]
func (o *OrderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req UpdateStatusRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	newStatus, err := o.orderUsecase.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		// Контракт фронта: значение вне набора отдаётся отдельной формой
		if errors.Is(err, e.ErrInvalidStatus) {
			WriteSuccess(w, http.StatusBadRequest, map[string]string{"error": "Invalid status"})
			return
		}
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, UpdateStatusResponse{
		Status:    "success",
		NewStatus: string(newStatus),
	})
}
