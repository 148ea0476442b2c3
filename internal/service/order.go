package service

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/order-model/internal/entities"
)

type orderService struct {
	logger *slog.Logger
}

func NewOrderService(logger *slog.Logger) *orderService {
	return &orderService{
		logger: logger.With(slog.String("service", "order")),
	}
}

func (s *orderService) ComputeTotal(ctx context.Context, order *entities.Order) float32 {
	total := order.ComputeTotal()
	s.logger.DebugContext(ctx, "order total computed",
		slog.String("order_id", order.ID.String()),
		slog.Int("products", len(order.Products)),
		slog.String("subtotal", order.Subtotal().String()),
	)
	return total
}

// Ошибки домена возвращаются как есть, логирование остается вызывающему
func (s *orderService) UpdateStatus(ctx context.Context, order *entities.Order, status entities.OrderStatus) error {
	prev := order.Status
	if err := order.UpdateStatus(status); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "order status updated",
		slog.String("order_id", order.ID.String()),
		slog.String("from", prev.String()),
		slog.String("to", status.String()),
	)
	return nil
}

func (s *orderService) ReduceStock(ctx context.Context, product *entities.Product, quantity int) error {
	if err := product.ReduceStock(quantity); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "stock reduced",
		slog.String("product", product.Name),
		slog.Int("quantity", quantity),
		slog.Int("stock", product.Stock),
	)
	return nil
}
