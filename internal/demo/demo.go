// Package demo walks through the order model end to end: one product, one
// order paid in cash, the printed total and a stock reduction.
package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/SergeyBogomolovv/order-model/internal/entities"
	"github.com/shopspring/decimal"
)

type OrderDesk interface {
	ComputeTotal(ctx context.Context, order *entities.Order) float32
	ReduceStock(ctx context.Context, product *entities.Product, quantity int) error
}

type Result struct {
	Order   *entities.Order
	Product *entities.Product
	Total   float32
}

func Run(ctx context.Context, w io.Writer, desk OrderDesk) (Result, error) {
	product, err := entities.NewProduct(
		"Laptop",
		"i7 16GB RAM",
		decimal.RequireFromString("999.99"),
		decimal.RequireFromString("1.16"), // налог 16%
		10,
	)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create product: %w", err)
	}

	order, err := entities.NewOrder()
	if err != nil {
		return Result{}, fmt.Errorf("failed to create order: %w", err)
	}
	order.AddProduct(product)
	order.AddPayment(entities.NewCashPayment(decimal.NewFromInt(1200), "USD"))

	total := desk.ComputeTotal(ctx, order)
	if _, err := fmt.Fprintf(w, "Total cost: %v\n", total); err != nil {
		return Result{}, fmt.Errorf("failed to print total: %w", err)
	}

	if err := desk.ReduceStock(ctx, product, 1); err != nil {
		return Result{}, fmt.Errorf("failed to reduce stock: %w", err)
	}

	return Result{Order: order, Product: product, Total: total}, nil
}
