package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/SergeyBogomolovv/order-model/internal/entities"
	"github.com/SergeyBogomolovv/order-model/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderDesk interface {
	ComputeTotal(ctx context.Context, order *entities.Order) float32
	UpdateStatus(ctx context.Context, order *entities.Order, status entities.OrderStatus) error
	ReduceStock(ctx context.Context, product *entities.Product, quantity int) error
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderDesk
}

func NewHTTPHandler(logger *slog.Logger, svc OrderDesk) *HTTPHandler {
	validate := validator.New()
	// в ошибках валидации используем имена полей из json
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validate,
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/orders/total", h.ComputeTotal)
	r.Post("/orders/status", h.UpdateStatus)
	r.Post("/products/reduce-stock", h.ReduceStock)
	r.Post("/customers/summary", h.CustomerSummary)
}

// ComputeTotal считает стоимость переданного заказа.
// @Summary      Посчитать стоимость заказа
// @Tags         orders
// @Param        order  body      Order  true  "Заказ"
// @Success      200    {object}  OrderQuote
// @Failure      400    {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /orders/total [post]
func (h *HTTPHandler) ComputeTotal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req Order
	if !h.decode(w, r, &req) {
		return
	}

	order, err := OrderJSONToEntity(req)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	total := h.svc.ComputeTotal(ctx, order)
	orderTotalsComputed.Inc()

	utils.WriteJSON(w, OrderEntityToQuote(order, total), http.StatusOK)
}

// UpdateStatus переводит заказ в новый статус.
// @Summary      Сменить статус заказа
// @Tags         orders
// @Param        request  body      UpdateStatusRequest  true  "Заказ и новый статус"
// @Success      200      {object}  OrderQuote
// @Failure      400      {object}  utils.ErrorResponse "Неизвестный статус"
// @Router       /orders/status [post]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := OrderJSONToEntity(req.Order)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	status, err := entities.ParseOrderStatus(req.Status)
	if err == nil {
		err = h.svc.UpdateStatus(ctx, order, status)
	}
	orderStatusUpdates.WithLabelValues(resultLabel(err)).Inc()
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToQuote(order, h.svc.ComputeTotal(ctx, order)), http.StatusOK)
}

// ReduceStock списывает товар со склада.
// @Summary      Списать остаток товара
// @Tags         products
// @Param        request  body      ReduceStockRequest  true  "Товар и количество"
// @Success      200      {object}  Product
// @Failure      400      {object}  utils.ErrorResponse "Некорректное количество"
// @Failure      409      {object}  utils.ErrorResponse "Недостаточно товара"
// @Router       /products/reduce-stock [post]
func (h *HTTPHandler) ReduceStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ReduceStockRequest
	if !h.decode(w, r, &req) {
		return
	}

	product, err := ProductJSONToEntity(req.Product)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	err = h.svc.ReduceStock(ctx, product, req.Quantity)
	stockReductions.WithLabelValues(resultLabel(err)).Inc()
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// CustomerSummary считает стоимость всех заказов покупателя.
// @Summary      Сводка по покупателю
// @Tags         customers
// @Param        customer  body      Customer  true  "Покупатель с заказами"
// @Success      200       {object}  CustomerSummary
// @Failure      400       {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /customers/summary [post]
func (h *HTTPHandler) CustomerSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req Customer
	if !h.decode(w, r, &req) {
		return
	}

	customer, err := CustomerJSONToEntity(req)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	quotes := make([]OrderQuote, 0, len(customer.Orders))
	for _, o := range customer.Orders {
		quotes = append(quotes, OrderEntityToQuote(o, h.svc.ComputeTotal(ctx, o)))
	}
	customerSummaries.Inc()

	utils.WriteJSON(w, CustomerSummary{
		Name:   customer.Name,
		Email:  customer.Email,
		Orders: quotes,
		Total:  customer.Total(),
	}, http.StatusOK)
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func (h *HTTPHandler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInsufficientStock):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	default:
		h.logger.ErrorContext(ctx, "failed to handle request", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
